// Package snapshot is a debugging host backed by a YAML dump of the values of
// a stopped or core dumped program.
//
// A snapshot lists variables, each holding a tree of typed values:
//
//  program: controller
//  variables:
//    - name: setpoint
//      value:
//        type: "elastic_integer<23, power<-12, 2>>"
//        fields:
//          _rep:
//            type: int
//            int: "4096"
//
// Structural codes are inferred when omitted: values with fields are
// structs, values with int or memory are integers. Integers may be given as
// a literal (int) or as raw target memory (memory, hex encoded, with order
// and signed).
package snapshot

import (
	"encoding/binary"
	"encoding/hex"
	"os"
	"sort"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/fxprint/integer"
	"github.com/calebcase/fxprint/typeinfo"
)

// Error is the snapshot error class.
var Error = errs.Class("snapshot")

// Snapshot is a dump of program variables.
type Snapshot struct {
	Program   string     `yaml:"program,omitempty"`
	Variables []Variable `yaml:"variables"`
}

// Variable is a named value.
type Variable struct {
	Name  string `yaml:"name"`
	Value *Node  `yaml:"value"`
}

// Node is a typed value. It is both the value and its type descriptor.
type Node struct {
	TypeName string           `yaml:"type,omitempty"`
	Kind     string           `yaml:"code,omitempty"`
	Base     *Node            `yaml:"target,omitempty"`
	Fields   map[string]*Node `yaml:"fields,omitempty"`

	Int    string `yaml:"int,omitempty"`
	Memory string `yaml:"memory,omitempty"`
	Order  string `yaml:"order,omitempty"`
	Signed *bool  `yaml:"signed,omitempty"`
}

var (
	_ typeinfo.Handle     = (*Node)(nil)
	_ typeinfo.Descriptor = (*Node)(nil)
)

// Load reads a snapshot file.
func Load(path string) (s *Snapshot, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Error.Wrap(oops.Trace(err))
	}

	return Parse(data)
}

// Parse decodes and validates a snapshot.
func Parse(data []byte) (s *Snapshot, err error) {
	defer Error.WrapP(&err)

	s = &Snapshot{}

	err = yaml.Unmarshal(data, s)
	if err != nil {
		return nil, err
	}

	for i, v := range s.Variables {
		if v.Name == "" {
			return nil, Error.New("variable %d: missing name", i)
		}
		if v.Value == nil {
			return nil, Error.New("variable %q: missing value", v.Name)
		}

		err = v.Value.validate(v.Name, 0)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Lookup returns the variable with the given name.
func (s *Snapshot) Lookup(name string) (*Node, bool) {
	for _, v := range s.Variables {
		if v.Name == name {
			return v.Value, true
		}
	}

	return nil, false
}

// maxNesting bounds the depth of a parsed value tree.
const maxNesting = 256

func (n *Node) validate(path string, depth int) error {
	if depth > maxNesting {
		return Error.New("%s: nesting exceeds %d", path, maxNesting)
	}

	if n.Kind != "" {
		if _, ok := typeinfo.ParseCode(n.Kind); !ok {
			return Error.New("%s: unknown code %q", path, n.Kind)
		}
	}

	switch n.Code() {
	case typeinfo.CodeInt:
		if _, err := n.Integer(); err != nil {
			return Error.New("%s: %v", path, err)
		}
	case typeinfo.CodeRef, typeinfo.CodePtr, typeinfo.CodeTypedef:
		if n.Base == nil {
			return Error.New("%s: %s without target", path, n.Code())
		}
	}

	if n.Base != nil {
		if err := n.Base.validate(path+"*", depth+1); err != nil {
			return err
		}
	}

	for _, name := range n.FieldNames() {
		f := n.Fields[name]
		if f == nil {
			return Error.New("%s.%s: missing value", path, name)
		}

		if err := f.validate(path+"."+name, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// Tag implements typeinfo.Descriptor.
func (n *Node) Tag() (string, bool) {
	return n.TypeName, n.TypeName != ""
}

// Code implements typeinfo.Descriptor.
func (n *Node) Code() typeinfo.Code {
	if n.Kind != "" {
		c, _ := typeinfo.ParseCode(n.Kind)
		return c
	}

	switch {
	case n.Int != "" || n.Memory != "":
		return typeinfo.CodeInt
	case len(n.Fields) > 0:
		return typeinfo.CodeStruct
	case n.Base != nil:
		return typeinfo.CodeTypedef
	}

	return typeinfo.CodeUnknown
}

// Target implements typeinfo.Descriptor.
func (n *Node) Target() typeinfo.Descriptor {
	if n.Base == nil {
		return nil
	}

	return n.Base
}

// HasField implements typeinfo.Descriptor.
func (n *Node) HasField(name string) bool {
	_, ok := n.Fields[name]

	return ok
}

// FieldNames returns the field names in sorted order.
func (n *Node) FieldNames() []string {
	names := make([]string, 0, len(n.Fields))
	for name := range n.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Type implements typeinfo.Handle.
func (n *Node) Type() typeinfo.Descriptor {
	return n
}

// Field implements typeinfo.Handle. References and typedefs are followed to
// the value they name.
func (n *Node) Field(name string) (typeinfo.Handle, error) {
	v := n.deref()

	f, ok := v.Fields[name]
	if !ok || f == nil {
		return nil, Error.New("%q has no field %q", n.TypeName, name)
	}

	return f, nil
}

// Integer implements typeinfo.Handle.
func (n *Node) Integer() (b integer.Block, err error) {
	v := n.deref()

	switch {
	case v.Int != "":
		return integer.Parse(v.Int)
	case v.Memory != "":
		data, err := hex.DecodeString(v.Memory)
		if err != nil {
			return b, Error.Wrap(err)
		}

		var order binary.ByteOrder = binary.LittleEndian
		switch v.Order {
		case "", "little":
		case "big":
			order = binary.BigEndian
		default:
			return b, Error.New("unknown byte order %q", v.Order)
		}

		signed := v.Signed == nil || *v.Signed

		return integer.FromMemory(data, order, signed)
	}

	return b, Error.New("%q is not an integer", n.TypeName)
}

func (n *Node) deref() *Node {
	v := n
	for i := 0; i < maxNesting && v.Base != nil && v.Code() != typeinfo.CodeStruct && v.Code() != typeinfo.CodeInt; i++ {
		v = v.Base
	}

	return v
}

// Int returns an integer node.
func Int(typeName string, i int64) *Node {
	return &Node{
		TypeName: typeName,
		Kind:     typeinfo.CodeInt.String(),
		Int:      integer.FromInt64(i).String(),
	}
}

// Wrap returns a struct node holding inner in field.
func Wrap(typeName, field string, inner *Node) *Node {
	return &Node{
		TypeName: typeName,
		Kind:     typeinfo.CodeStruct.String(),
		Fields:   map[string]*Node{field: inner},
	}
}

// Ref returns a reference to target.
func Ref(target *Node) *Node {
	return &Node{
		Kind: typeinfo.CodeRef.String(),
		Base: target,
	}
}

// Typedef returns an alias of target.
func Typedef(typeName string, target *Node) *Node {
	return &Node{
		TypeName: typeName,
		Kind:     typeinfo.CodeTypedef.String(),
		Base:     target,
	}
}
