package fxprint

import (
	"sort"

	"go.uber.org/zap"

	"github.com/calebcase/fxprint/fixed"
	"github.com/calebcase/fxprint/pattern"
	"github.com/calebcase/fxprint/rep"
	"github.com/calebcase/fxprint/typeinfo"
)

// Options configures the decoders built by a Registry.
type Options struct {
	// Field is the inner representation field. Defaults to rep.DefaultField.
	Field string

	// MaxDepth bounds the representation chain. Defaults to
	// rep.DefaultMaxDepth.
	MaxDepth int

	Format fixed.Format

	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

// Entry pairs a pattern with the decoder it selects.
type Entry struct {
	Pattern *pattern.Pattern
	New     Constructor
}

// Registry is an ordered, immutable table of entries.
type Registry struct {
	entries []Entry
	opts    Options
}

// NewRegistry returns a registry consulting entries in lexicographic order of
// their pattern source.
func NewRegistry(opts Options, entries ...Entry) (r *Registry, err error) {
	defer Error.WrapP(&err)

	if opts.Field == "" {
		opts.Field = rep.DefaultField
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = rep.DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	sorted := make([]Entry, 0, len(entries))
	seen := map[string]bool{}

	for i, e := range entries {
		if e.Pattern == nil {
			return nil, Error.New("entry %d: missing pattern", i)
		}
		if e.New == nil {
			return nil, Error.New("entry %d (%s): missing constructor", i, e.Pattern)
		}
		if seen[e.Pattern.Source()] {
			return nil, Error.New("entry %d: duplicate pattern %s", i, e.Pattern)
		}
		seen[e.Pattern.Source()] = true

		sorted = append(sorted, e)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Pattern.Source() < sorted[j].Pattern.Source()
	})

	return &Registry{
		entries: sorted,
		opts:    opts,
	}, nil
}

// Default returns the registry of the built in fixed point families.
func Default(opts Options) *Registry {
	r, err := NewRegistry(opts,
		Entry{Pattern: pattern.MustCompile(pattern.ElasticInteger), New: NewFixedPoint},
		Entry{Pattern: pattern.MustCompile(pattern.ScaledInteger), New: NewFixedPoint},
	)
	if err != nil {
		panic(err)
	}

	return r
}

// Entries returns the entries in lookup order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Lookup returns the decoder for values of type d. Types without a name never
// have a decoder.
func (r *Registry) Lookup(d typeinfo.Descriptor) (Decoder, bool) {
	name, ok := typeinfo.Name(d)
	if !ok {
		return nil, false
	}

	for _, e := range r.entries {
		if e.Pattern.Matches(name) {
			return e.New(e.Pattern, name, r.opts), true
		}
	}

	return nil, false
}

// Print renders h. It returns ok=false when the host should use its default
// rendering: the type is not registered or its representation chain does not
// end in an integer. A malformed exponent is returned as a pattern.ParseError.
func (r *Registry) Print(h typeinfo.Handle) (out Rendered, ok bool, err error) {
	if h == nil {
		return out, false, nil
	}

	dec, ok := r.Lookup(h.Type())
	if !ok {
		return out, false, nil
	}

	out, err = dec.Decode(h)
	switch {
	case err == nil:
		return out, true, nil
	case rep.UnwrapError.Has(err):
		r.opts.Logger.Debug("no custom rendering", zap.Error(err))

		return Rendered{}, false, nil
	default:
		r.opts.Logger.Warn("decode failed", zap.Error(err))

		return Rendered{}, false, err
	}
}
