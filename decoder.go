package fxprint

import (
	"github.com/calebcase/oops"
	"go.uber.org/zap"

	"github.com/calebcase/fxprint/fixed"
	"github.com/calebcase/fxprint/pattern"
	"github.com/calebcase/fxprint/rep"
	"github.com/calebcase/fxprint/typeinfo"
)

// Decoder renders a value whose type matched a registry entry.
type Decoder interface {
	// Decode returns the rendered value. Errors are pattern.ParseError or
	// rep.UnwrapError.
	Decode(h typeinfo.Handle) (r Rendered, err error)
}

// Constructor builds the decoder for a type name matched by p.
type Constructor func(p *pattern.Pattern, name string, opts Options) Decoder

// FixedPoint is the decoder for binary fixed point families.
type FixedPoint struct {
	pattern *pattern.Pattern
	name    string
	opts    Options
}

// NewFixedPoint is the Constructor for FixedPoint.
func NewFixedPoint(p *pattern.Pattern, name string, opts Options) Decoder {
	return &FixedPoint{
		pattern: p,
		name:    name,
		opts:    opts,
	}
}

// Decode implements Decoder.
func (d *FixedPoint) Decode(h typeinfo.Handle) (r Rendered, err error) {
	exponent, ok, err := d.pattern.Match(d.name)
	if err != nil {
		return r, err
	}
	if !ok {
		return r, pattern.ParseError.New("%q: no longer matches %s", d.name, d.pattern)
	}

	u := rep.Unwrapper{
		Field:    d.opts.Field,
		MaxDepth: d.opts.MaxDepth,
	}

	leaf, steps, err := u.Unwrap(h)
	if err != nil {
		return r, err
	}

	raw, err := leaf.Integer()
	if err != nil {
		return r, rep.UnwrapError.Wrap(oops.Trace(err))
	}

	r = Rendered{
		Text: fixed.Render(raw, exponent, d.opts.Format),
		Hint: HintString,
	}

	d.opts.logger().Debug("decoded",
		zap.String("type", d.name),
		zap.Int("exponent", exponent),
		zap.Int("steps", steps),
		zap.Stringer("raw", raw),
		zap.String("text", r.Text),
	)

	return r, nil
}
