package ir

import "strings"

// Type is the closed set of CloudScribe data types
type Type interface {
	// Repr returns the type as it would be written in source
	Repr() string

	isType()
}

// PrimitiveType represents one of the builtin scalar types.  Its value must be
// one of the enumerated primitive kinds below; primitives are compared by
// value so two primitive types are the same type only if they are the same
// kind.
type PrimitiveType int

// Enumeration of primitive types
const (
	Int PrimitiveType = iota
	String
	Boolean
	Void
	Any
)

func (PrimitiveType) isType() {}

// Repr of a primitive type is just its corresponding type label
func (pt PrimitiveType) Repr() string {
	switch pt {
	case Int:
		return "int"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Void:
		return "void"
	default:
		return "any"
	}
}

// PrimitiveByName looks up a primitive type by its type label
func PrimitiveByName(name string) (PrimitiveType, bool) {
	switch name {
	case "int":
		return Int, true
	case "string":
		return String, true
	case "boolean":
		return Boolean, true
	case "void":
		return Void, true
	case "any":
		return Any, true
	}

	return 0, false
}

// ArrayType is the type of a homogeneous array, `[T]`
type ArrayType struct {
	ElemType Type
}

func (*ArrayType) isType() {}

func (at *ArrayType) Repr() string {
	return "[" + at.ElemType.Repr() + "]"
}

// OptionalType is a type whose values may be absent, `T?`
type OptionalType struct {
	BaseType Type
}

func (*OptionalType) isType() {}

func (ot *OptionalType) Repr() string {
	return ot.BaseType.Repr() + "?"
}

// FunctionType is the signature of a callable value, `(T, ...) -> R`
type FunctionType struct {
	ParamTypes []Type
	ReturnType Type
}

func (*FunctionType) isType() {}

func (ft *FunctionType) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	for i, pt := range ft.ParamTypes {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(pt.Repr())
	}

	sb.WriteString(") -> ")
	sb.WriteString(ft.ReturnType.Repr())
	return sb.String()
}
