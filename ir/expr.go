// Package ir defines the intermediate representation for canonical interface
// declarations. Providers extract members into this vocabulary; the schema
// and client generators consume it without knowing which front end produced it.
package ir

// TypeExpr is the base interface for all type expressions.
// The vocabulary is closed: exactly the variants the canonical declaration
// uses. Expressions have finite depth at every use site, so consumers may
// recurse without cycle detection.
type TypeExpr interface {
	// Kind returns the expression kind for type switching.
	Kind() ExprKind

	// Ensure only types in this package can implement TypeExpr.
	sealed()
}

// PrimitiveExpr represents a built-in primitive type.
type PrimitiveExpr struct {
	Primitive PrimitiveKind
}

// Kind returns KindPrimitive.
func (e *PrimitiveExpr) Kind() ExprKind { return KindPrimitive }

func (*PrimitiveExpr) sealed() {}

// ArrayExpr represents an ordered collection (T[] or Array<T>).
type ArrayExpr struct {
	// Elem is the element type. May be nil when the element could not be
	// determined; translators emit an unconstrained array in that case.
	Elem TypeExpr
}

// Kind returns KindArray.
func (e *ArrayExpr) Kind() ExprKind { return KindArray }

func (*ArrayExpr) sealed() {}

// NamedExpr represents a reference to a named type, possibly generic.
// The canonical declaration only instantiates generics with one or two
// type arguments (Promise<T>, Record<K, V>).
type NamedExpr struct {
	// Name is the referenced type name (e.g. "UnifiedMarket", "Promise").
	Name string

	// Args are the type arguments in declaration order. Empty for plain
	// references.
	Args []TypeExpr
}

// Kind returns KindNamed.
func (e *NamedExpr) Kind() ExprKind { return KindNamed }

func (*NamedExpr) sealed() {}

// UnionExpr represents a union of types (T1 | T2 | ...).
type UnionExpr struct {
	// Members contains the union members in declaration order.
	Members []TypeExpr
}

// Kind returns KindUnion.
func (e *UnionExpr) Kind() ExprKind { return KindUnion }

func (*UnionExpr) sealed() {}

// LiteralExpr represents a literal type: a string, number, or boolean value.
type LiteralExpr struct {
	// Value holds string, float64, or bool.
	Value any
}

// Kind returns KindLiteral.
func (e *LiteralExpr) Kind() ExprKind { return KindLiteral }

func (*LiteralExpr) sealed() {}

// ObjectExpr represents an inline record type ({ a: T; b?: U }).
type ObjectExpr struct {
	// Fields contains the record fields in declaration order.
	// Field names are unique within the record.
	Fields []Field
}

// Kind returns KindObject.
func (e *ObjectExpr) Kind() ExprKind { return KindObject }

func (*ObjectExpr) sealed() {}

// FuncExpr represents a function type ((trade: Trade) => void).
// Callbacks cannot cross a serialized boundary, so the parameter and result
// types are not preserved; both generators treat the expression as opaque.
type FuncExpr struct{}

// Kind returns KindFunc.
func (e *FuncExpr) Kind() ExprKind { return KindFunc }

func (*FuncExpr) sealed() {}

// Convenience constructors.

// String returns a PrimitiveExpr for string.
func String() *PrimitiveExpr { return &PrimitiveExpr{Primitive: PrimString} }

// Number returns a PrimitiveExpr for number.
func Number() *PrimitiveExpr { return &PrimitiveExpr{Primitive: PrimNumber} }

// Boolean returns a PrimitiveExpr for boolean.
func Boolean() *PrimitiveExpr { return &PrimitiveExpr{Primitive: PrimBoolean} }

// Void returns a PrimitiveExpr for void.
func Void() *PrimitiveExpr { return &PrimitiveExpr{Primitive: PrimVoid} }

// Null returns a PrimitiveExpr for null.
func Null() *PrimitiveExpr { return &PrimitiveExpr{Primitive: PrimNull} }

// Undefined returns a PrimitiveExpr for undefined.
func Undefined() *PrimitiveExpr { return &PrimitiveExpr{Primitive: PrimUndefined} }

// Any returns a PrimitiveExpr for any.
func Any() *PrimitiveExpr { return &PrimitiveExpr{Primitive: PrimAny} }

// ArrayOf returns an ArrayExpr with the given element type.
func ArrayOf(elem TypeExpr) *ArrayExpr { return &ArrayExpr{Elem: elem} }

// Named returns a NamedExpr for a named type reference.
func Named(name string, args ...TypeExpr) *NamedExpr {
	return &NamedExpr{Name: name, Args: args}
}

// Union returns a UnionExpr over the given members.
func Union(members ...TypeExpr) *UnionExpr { return &UnionExpr{Members: members} }

// StringLit returns a LiteralExpr for a string literal type.
func StringLit(v string) *LiteralExpr { return &LiteralExpr{Value: v} }

// NumberLit returns a LiteralExpr for a numeric literal type.
func NumberLit(v float64) *LiteralExpr { return &LiteralExpr{Value: v} }

// BoolLit returns a LiteralExpr for a boolean literal type.
func BoolLit(v bool) *LiteralExpr { return &LiteralExpr{Value: v} }

// Object returns an ObjectExpr over the given fields.
func Object(fields ...Field) *ObjectExpr { return &ObjectExpr{Fields: fields} }

// Func returns a FuncExpr.
func Func() *FuncExpr { return &FuncExpr{} }
