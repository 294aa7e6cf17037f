package openapi

import "github.com/pmxt-dev/pmxtgen/ir"

// Translate maps one type expression to a schema node. A nil result means
// the expression has no schema representation (void, null, undefined).
//
// Translation is pure and total: identical input yields identical output,
// and no input fails. Unknown named types deliberately degrade to an open
// object schema rather than erroring; the schema document is documentation,
// not a runtime-enforced contract.
func Translate(expr ir.TypeExpr, table map[string]string) *Schema {
	if expr == nil {
		return nil
	}

	switch e := expr.(type) {
	case *ir.PrimitiveExpr:
		return translatePrimitive(e)
	case *ir.ArrayExpr:
		items := Translate(e.Elem, table)
		if items == nil {
			items = &Schema{}
		}
		return &Schema{Type: "array", Items: items}
	case *ir.NamedExpr:
		return translateNamed(e, table)
	case *ir.UnionExpr:
		return translateUnion(e, table)
	case *ir.LiteralExpr:
		return translateLiteral(e)
	case *ir.ObjectExpr:
		return translateObject(e, table)
	case *ir.FuncExpr:
		// Callbacks cannot cross a serialized boundary.
		return &Schema{Type: "object"}
	}

	return &Schema{Type: "object"}
}

func translatePrimitive(e *ir.PrimitiveExpr) *Schema {
	switch e.Primitive {
	case ir.PrimString:
		return &Schema{Type: "string"}
	case ir.PrimNumber:
		return &Schema{Type: "number"}
	case ir.PrimBoolean:
		return &Schema{Type: "boolean"}
	case ir.PrimVoid, ir.PrimNull, ir.PrimUndefined:
		return nil
	case ir.PrimAny:
		// The empty schema accepts any value.
		return &Schema{}
	}
	return &Schema{Type: "object"}
}

func translateNamed(e *ir.NamedExpr, table map[string]string) *Schema {
	// Promises are transparent at the API boundary.
	if e.Name == "Promise" && len(e.Args) == 1 {
		return Translate(e.Args[0], table)
	}

	// Records are open maps; JSON object keys are always strings, so the
	// key argument has no representation.
	if e.Name == "Record" && len(e.Args) == 2 {
		value := Translate(e.Args[1], table)
		s := &Schema{Type: "object"}
		if value != nil {
			s.AdditionalProperties = value
		} else {
			s.AdditionalProperties = true
		}
		return s
	}

	if id, ok := table[e.Name]; ok {
		return &Schema{Ref: "#/components/schemas/" + id}
	}

	return &Schema{Type: "object", AdditionalProperties: true}
}

func translateUnion(e *ir.UnionExpr, table map[string]string) *Schema {
	// Null and undefined members express optionality, not a value shape.
	var usable []ir.TypeExpr
	for _, m := range e.Members {
		if p, ok := m.(*ir.PrimitiveExpr); ok {
			if p.Primitive == ir.PrimNull || p.Primitive == ir.PrimUndefined {
				continue
			}
		}
		usable = append(usable, m)
	}

	if len(usable) == 0 {
		return nil
	}

	// A union made entirely of string literals collapses to an enum.
	if values, ok := stringLiterals(usable); ok {
		return &Schema{Type: "string", Enum: values}
	}

	if len(usable) == 1 {
		return Translate(usable[0], table)
	}

	var variants []*Schema
	for _, m := range usable {
		if s := Translate(m, table); s != nil {
			variants = append(variants, s)
		}
	}
	if len(variants) == 0 {
		return nil
	}
	return &Schema{OneOf: variants}
}

// stringLiterals returns the literal values when every member is a string
// literal type.
func stringLiterals(members []ir.TypeExpr) ([]string, bool) {
	values := make([]string, 0, len(members))
	for _, m := range members {
		lit, ok := m.(*ir.LiteralExpr)
		if !ok {
			return nil, false
		}
		s, ok := lit.Value.(string)
		if !ok {
			return nil, false
		}
		values = append(values, s)
	}
	return values, true
}

func translateLiteral(e *ir.LiteralExpr) *Schema {
	switch v := e.Value.(type) {
	case string:
		return &Schema{Type: "string", Enum: []string{v}}
	case float64:
		// Numeric literal values are not preserved.
		return &Schema{Type: "number"}
	case bool:
		return &Schema{Type: "boolean"}
	}
	return &Schema{Type: "object"}
}

func translateObject(e *ir.ObjectExpr, table map[string]string) *Schema {
	s := &Schema{Type: "object", Properties: map[string]*Schema{}}
	for _, f := range e.Fields {
		fs := Translate(f.Type, table)
		if fs == nil {
			continue
		}
		s.Properties[f.Name] = fs
		if !f.Optional {
			s.Required = append(s.Required, f.Name)
		}
	}
	if len(s.Properties) == 0 {
		s.Properties = nil
	}
	return s
}
