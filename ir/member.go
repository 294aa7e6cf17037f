package ir

// Member is the extracted, generator-facing representation of one canonical
// method. Members are created once per extraction pass and are read-only
// input to both generators.
type Member struct {
	// Name is the method name as declared (e.g. "fetchOrderBook").
	Name string

	// Title is the display title derived from the name by splitting
	// camel-case words (e.g. "Fetch Order Book"). Acronym runs stay
	// together: "fetchOHLCV" becomes "Fetch OHLCV".
	Title string

	// Params contains the parameters in declaration order.
	Params []Parameter

	// Return is the declared return type with any Promise wrapper intact.
	// Nil means the member returns void.
	Return TypeExpr

	// Doc is the attached documentation text: the lines of the nearest
	// preceding structured comment before the first annotation tag, joined
	// with single spaces. Empty when no comment is attached.
	Doc string
}

// Parameter describes one declared method parameter.
type Parameter struct {
	// Name is the parameter name.
	Name string

	// Type is the declared parameter type.
	Type TypeExpr

	// Optional is true for `name?: T` parameters.
	Optional bool

	// Default holds the default value literal verbatim (e.g. "false",
	// `"volume"`), or empty when the parameter has no default.
	Default string
}

// Required reports whether the parameter must appear in a request.
// A parameter with a default value is never required.
func (p Parameter) Required() bool {
	return !p.Optional && p.Default == ""
}

// Field describes one field of an inline record type.
type Field struct {
	// Name is the field name, unique within its record.
	Name string

	// Type is the declared field type.
	Type TypeExpr

	// Optional is true for `name?: T` fields.
	Optional bool
}
