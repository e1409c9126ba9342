// Package rep walks the chain of single field wrappers that separate a fixed
// point type from the integer it stores.
package rep

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/fxprint/typeinfo"
)

// UnwrapError is returned when a chain ends without reaching an integer.
var UnwrapError = errs.Class("unwrap")

// Defaults
const (
	DefaultField    = "_rep"
	DefaultMaxDepth = 64
)

// Unwrapper follows Field until it reaches a value with an integer type.
type Unwrapper struct {
	// Field is the name of the inner representation. Defaults to
	// DefaultField.
	Field string

	// MaxDepth bounds the number of fields followed. Defaults to
	// DefaultMaxDepth.
	MaxDepth int
}

// Unwrap returns the integer leaf of h and the number of fields followed to
// reach it. A handle that is already an integer is returned with zero steps.
func (u Unwrapper) Unwrap(h typeinfo.Handle) (leaf typeinfo.Handle, steps int, err error) {
	field := u.Field
	if field == "" {
		field = DefaultField
	}

	limit := u.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}

	for ; ; steps++ {
		if h == nil {
			return nil, steps, UnwrapError.New("nil value at depth %d", steps)
		}

		d := typeinfo.Resolve(h.Type())
		if d == nil {
			return nil, steps, UnwrapError.New("untyped value at depth %d", steps)
		}

		if d.Code() == typeinfo.CodeInt {
			return h, steps, nil
		}

		if steps >= limit {
			return nil, steps, UnwrapError.New("exceeded max depth %d", limit)
		}

		if !d.HasField(field) {
			name, _ := d.Tag()
			return nil, steps, UnwrapError.New("%s %q has no field %q at depth %d", d.Code(), name, field, steps)
		}

		h, err = h.Field(field)
		if err != nil {
			return nil, steps, UnwrapError.Wrap(oops.Trace(err))
		}
	}
}
