// Package typeinfo describes the type-introspection capability a debugging
// host provides for the values it displays.
//
// A Handle is borrowed from the host for the duration of a single render call
// and is never retained.
package typeinfo

import (
	"strings"

	"github.com/calebcase/fxprint/integer"
)

// Code is the structural code of a type.
type Code uint8

// Structural Codes
const (
	CodeUnknown Code = iota
	CodeInt
	CodeBool
	CodeFloat
	CodeStruct
	CodeRef
	CodePtr
	CodeTypedef
)

var codeNames = [...]string{
	CodeUnknown: "unknown",
	CodeInt:     "int",
	CodeBool:    "bool",
	CodeFloat:   "float",
	CodeStruct:  "struct",
	CodeRef:     "ref",
	CodePtr:     "ptr",
	CodeTypedef: "typedef",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}

	return "unknown"
}

// ParseCode returns the code with the given name.
func ParseCode(s string) (Code, bool) {
	for c, name := range codeNames {
		if name == s {
			return Code(c), true
		}
	}

	return CodeUnknown, false
}

// Descriptor describes the type of a value.
type Descriptor interface {
	// Tag returns the type name. Anonymous types have no tag.
	Tag() (name string, ok bool)
	Code() Code
	// Target returns the referenced type for CodeRef, CodePtr and
	// CodeTypedef. It is nil otherwise.
	Target() Descriptor
	HasField(name string) bool
}

// Handle is a reference to a value in the inspected program.
type Handle interface {
	Type() Descriptor
	// Field returns the named field of an aggregate value.
	Field(name string) (Handle, error)
	// Integer reads the stored value of a CodeInt value.
	Integer() (integer.Block, error)
}

// maxResolve bounds typedef chains.
const maxResolve = 64

// Resolve follows a reference to its target type and strips typedefs.
func Resolve(d Descriptor) Descriptor {
	if d == nil {
		return nil
	}

	if d.Code() == CodeRef && d.Target() != nil {
		d = d.Target()
	}

	for i := 0; i < maxResolve && d.Code() == CodeTypedef && d.Target() != nil; i++ {
		d = d.Target()
	}

	return d
}

// Unqualified strips leading and trailing cv-qualifiers from a type name.
func Unqualified(name string) string {
	name = strings.TrimSpace(name)

	for {
		trimmed := name
		for _, q := range []string{"const", "volatile"} {
			trimmed = strings.TrimPrefix(trimmed, q+" ")
			trimmed = strings.TrimSuffix(trimmed, " "+q)
		}
		trimmed = strings.TrimSpace(trimmed)

		if trimmed == name {
			return name
		}

		name = trimmed
	}
}

// Name returns the unqualified tag of the resolved type of d.
func Name(d Descriptor) (string, bool) {
	d = Resolve(d)
	if d == nil {
		return "", false
	}

	name, ok := d.Tag()
	if !ok {
		return "", false
	}

	name = Unqualified(name)
	if name == "" {
		return "", false
	}

	return name, true
}
