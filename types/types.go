// Package types captures everything we need to know about a C-minus AST
// node's type.
package types

import "fmt"

// Type is the closed set of value types. The zero value is
// TYPE_UNDETERMINED, which is what every expression node carries until the
// checker has typed it.
type Type int

const (
	TYPE_UNDETERMINED = iota
	TYPE_INT
	TYPE_VOID
	TYPE_INT_ARRAY
	TYPE_VOID_ARRAY
)

var typenames = [...]string{
	"undetermined",
	"int",
	"void",
	"int[]",
	"void[]",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typenames) {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typenames[t]
}

// IsArray reports whether t is one of the array types.
func (t Type) IsArray() bool {
	return t == TYPE_INT_ARRAY || t == TYPE_VOID_ARRAY
}

// IsVoidStorage reports whether a variable of type t would store void.
func (t Type) IsVoidStorage() bool {
	return t == TYPE_VOID || t == TYPE_VOID_ARRAY
}

// Array returns the array type with t as its element type.
func (t Type) Array() Type {
	switch t {
	case TYPE_INT:
		return TYPE_INT_ARRAY
	case TYPE_VOID:
		return TYPE_VOID_ARRAY
	default:
		panic(fmt.Sprintf("no array type for %s", t))
	}
}

// Elem returns the element type of an array type.
func (t Type) Elem() Type {
	switch t {
	case TYPE_INT_ARRAY:
		return TYPE_INT
	case TYPE_VOID_ARRAY:
		return TYPE_VOID
	default:
		panic(fmt.Sprintf("%s is not an array", t))
	}
}
