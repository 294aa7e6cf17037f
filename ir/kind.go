package ir

// ExprKind identifies the variant of a type expression.
type ExprKind int

const (
	KindPrimitive ExprKind = iota // Built-in primitive type
	KindArray                     // Ordered collection (T[])
	KindNamed                     // Reference to a named type, possibly with type arguments
	KindUnion                     // Union of types (T1 | T2 | ...)
	KindLiteral                   // Literal type ("buy", 42, true)
	KindObject                    // Inline record type ({ a: T; b?: U })
	KindFunc                      // Function type ((x: T) => U)
)

// String returns the string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindNamed:
		return "Named"
	case KindUnion:
		return "Union"
	case KindLiteral:
		return "Literal"
	case KindObject:
		return "Object"
	case KindFunc:
		return "Func"
	default:
		return "Unknown"
	}
}

// PrimitiveKind identifies the category of a primitive type.
type PrimitiveKind int

const (
	PrimString PrimitiveKind = iota
	PrimNumber
	PrimBoolean
	PrimVoid
	PrimNull
	PrimUndefined
	PrimAny
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimString:
		return "string"
	case PrimNumber:
		return "number"
	case PrimBoolean:
		return "boolean"
	case PrimVoid:
		return "void"
	case PrimNull:
		return "null"
	case PrimUndefined:
		return "undefined"
	case PrimAny:
		return "any"
	default:
		return "unknown"
	}
}
