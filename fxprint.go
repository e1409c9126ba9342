// Package fxprint renders binary fixed point values (the CNL elastic_integer
// and scaled_integer families) as decimal strings for a debugging host.
//
// A host calls the installed printer for every value it displays. The
// Registry picks the first entry whose pattern matches the type name, the
// decoder follows the value's representation chain down to the stored
// integer, and the integer is divided by the power of two named in the type:
//
//  elastic_integer<23, power<-12, 2>> holding 4096 renders as "1"
//
// Values the registry does not recognize, or whose chain does not end in an
// integer, are left to the host's default rendering.
package fxprint

import (
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/fxprint/typeinfo"
)

// Error is the fxprint error class.
var Error = errs.Class("fxprint")

// Hint tells the host how to display a rendered value.
type Hint string

// Display Hints
const (
	// HintString values are displayed verbatim.
	HintString Hint = "string"
)

// Rendered is a final display value.
type Rendered struct {
	Text string
	Hint Hint
}

func (r Rendered) String() string {
	return r.Text
}

// PrinterFunc renders a value or returns ok=false to request the host's
// default rendering.
type PrinterFunc func(h typeinfo.Handle) (r Rendered, ok bool, err error)

// Host is the dispatch mechanism of a debugging host.
type Host interface {
	AddPrinter(name string, fn PrinterFunc)
}

// Name is the printer name used by Install.
const Name = "fxprint"

// Install adds the registry's printer to the host. It is called once at
// startup.
func Install(host Host, r *Registry) {
	r.opts.Logger.Debug("installing printer",
		zap.String("name", Name),
		zap.Int("entries", len(r.entries)),
	)

	host.AddPrinter(Name, r.Print)
}
