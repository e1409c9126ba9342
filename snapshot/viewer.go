package snapshot

import (
	"strings"

	"go.uber.org/zap"

	"github.com/calebcase/fxprint"
	"github.com/calebcase/fxprint/typeinfo"
)

type printer struct {
	name string
	fn   fxprint.PrinterFunc
}

// Viewer displays snapshot values. It consults its printers in the order they
// were added and falls back to a structural dump.
type Viewer struct {
	log      *zap.Logger
	printers []printer
}

var _ fxprint.Host = (*Viewer)(nil)

// NewViewer returns a viewer without printers.
func NewViewer(log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}

	return &Viewer{
		log: log,
	}
}

// AddPrinter implements fxprint.Host.
func (v *Viewer) AddPrinter(name string, fn fxprint.PrinterFunc) {
	v.printers = append(v.printers, printer{name: name, fn: fn})
}

// Printers returns the names of the installed printers.
func (v *Viewer) Printers() []string {
	names := make([]string, 0, len(v.printers))
	for _, p := range v.printers {
		names = append(names, p.name)
	}

	return names
}

// Display renders n. If a printer fails the structural dump is returned along
// with the error.
func (v *Viewer) Display(n *Node) (string, error) {
	if n == nil {
		return Dump(n), nil
	}

	for _, p := range v.printers {
		r, ok, err := p.fn(n)
		if err != nil {
			v.log.Warn("printer failed",
				zap.String("printer", p.name),
				zap.String("type", n.TypeName),
				zap.Error(err),
			)

			return Dump(n), err
		}
		if ok {
			return r.Text, nil
		}
	}

	return Dump(n), nil
}

// Dump renders n structurally:
//
//  {_rep = {_rep = 4096}}
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)

	return sb.String()
}

func dump(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		sb.WriteString("<null>")
		return
	}

	if depth > maxNesting {
		sb.WriteString("...")
		return
	}

	switch n.Code() {
	case typeinfo.CodeInt:
		b, err := n.Integer()
		if err != nil {
			sb.WriteString("<invalid>")
			return
		}
		sb.WriteString(b.String())
	case typeinfo.CodeRef:
		sb.WriteString("@")
		dump(sb, n.Base, depth+1)
	case typeinfo.CodePtr:
		sb.WriteString("*")
		dump(sb, n.Base, depth+1)
	case typeinfo.CodeTypedef:
		dump(sb, n.Base, depth+1)
	case typeinfo.CodeStruct:
		sb.WriteString("{")
		for i, name := range n.FieldNames() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(name)
			sb.WriteString(" = ")
			dump(sb, n.Fields[name], depth+1)
		}
		sb.WriteString("}")
	default:
		sb.WriteString("<unavailable>")
	}
}
