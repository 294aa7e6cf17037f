package provider

import (
	"fmt"
	"strconv"

	"github.com/pmxt-dev/pmxtgen/ir"
)

// parser is a recursive-descent parser over the declaration token stream.
// It covers exactly the type vocabulary the canonical declaration uses:
// primitives, arrays, named references with up to two type arguments,
// unions, literals, inline records, and function types.
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }
func (p *parser) next() token { t := p.toks[p.pos]; p.pos++; return t }
func (p *parser) atEOF() bool { return p.toks[p.pos].Kind == tokEOF }
func (p *parser) isPunct(s string) bool {
	t := p.peek()
	return t.Kind == tokPunct && t.Text == s
}

func (p *parser) expectPunct(s string) error {
	if !p.isPunct(s) {
		t := p.peek()
		return fmt.Errorf("line %d: expected %q, found %q", t.Line, s, t.Text)
	}
	p.pos++
	return nil
}

// parseType parses a full type expression.
func (p *parser) parseType() (ir.TypeExpr, error) {
	// Leading | before the first union member is legal and meaningless.
	if p.isPunct("|") {
		p.pos++
	}

	first, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if !p.isPunct("|") {
		return first, nil
	}

	members := []ir.TypeExpr{first}
	for p.isPunct("|") {
		p.pos++
		m, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return ir.Union(members...), nil
}

// parsePostfix parses an atom followed by any number of [] suffixes.
func (p *parser) parsePostfix() (ir.TypeExpr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.isPunct("[") && p.toks[p.pos+1].Kind == tokPunct && p.toks[p.pos+1].Text == "]" {
		p.pos += 2
		expr = ir.ArrayOf(expr)
	}
	return expr, nil
}

func (p *parser) parseAtom() (ir.TypeExpr, error) {
	t := p.peek()

	switch t.Kind {
	case tokString:
		p.pos++
		return ir.StringLit(t.Value), nil

	case tokNumber:
		p.pos++
		v, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad numeric literal %q", t.Line, t.Text)
		}
		return ir.NumberLit(v), nil

	case tokIdent:
		return p.parseNamed()

	case tokPunct:
		switch t.Text {
		case "(":
			return p.parseParenthesized()
		case "{":
			return p.parseObject()
		}
	}

	return nil, fmt.Errorf("line %d: unexpected token %q in type expression", t.Line, t.Text)
}

// parseNamed parses an identifier: a primitive keyword, a boolean literal,
// or a (possibly qualified, possibly generic) named reference.
func (p *parser) parseNamed() (ir.TypeExpr, error) {
	t := p.next()
	name := t.Text

	switch name {
	case "string":
		return ir.String(), nil
	case "number":
		return ir.Number(), nil
	case "boolean":
		return ir.Boolean(), nil
	case "void":
		return ir.Void(), nil
	case "null":
		return ir.Null(), nil
	case "undefined":
		return ir.Undefined(), nil
	case "any", "unknown":
		return ir.Any(), nil
	case "true":
		return ir.BoolLit(true), nil
	case "false":
		return ir.BoolLit(false), nil
	}

	// Qualified names (ns.Type) keep only the final segment; the schema
	// table and component ids are unqualified.
	for p.isPunct(".") {
		p.pos++
		seg := p.next()
		if seg.Kind != tokIdent {
			return nil, fmt.Errorf("line %d: expected identifier after %q.", seg.Line, name)
		}
		name = seg.Text
	}

	var args []ir.TypeExpr
	if p.isPunct("<") {
		p.pos++
		for {
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.isPunct(",") {
				p.pos++
				continue
			}
			break
		}
		if err := p.expectPunct(">"); err != nil {
			return nil, err
		}
	}

	// Array<T> is just sugar for T[].
	if name == "Array" && len(args) == 1 {
		return ir.ArrayOf(args[0]), nil
	}
	if name == "Array" && len(args) == 0 {
		return ir.ArrayOf(nil), nil
	}

	return ir.Named(name, args...), nil
}

// parseParenthesized handles the two constructs that open with "(":
// a function type ((x: T) => U) or a parenthesized group ((A | B)).
func (p *parser) parseParenthesized() (ir.TypeExpr, error) {
	if p.isFunctionType() {
		return p.parseFunc()
	}

	p.pos++ // consume "("
	inner, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return inner, nil
}

// isFunctionType looks past the balanced parenthesis group for "=>".
func (p *parser) isFunctionType() bool {
	depth := 0
	for i := p.pos; p.toks[i].Kind != tokEOF; i++ {
		t := p.toks[i]
		if t.Kind != tokPunct {
			continue
		}
		switch t.Text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return p.toks[i+1].Kind == tokArrow
			}
		}
	}
	return false
}

// parseFunc consumes a function type. Parameter and result types are
// syntax-checked but not preserved; the expression is opaque downstream.
func (p *parser) parseFunc() (ir.TypeExpr, error) {
	depth := 0
	for {
		t := p.next()
		if t.Kind == tokEOF {
			return nil, fmt.Errorf("unterminated function type")
		}
		if t.Kind == tokPunct {
			if t.Text == "(" {
				depth++
			}
			if t.Text == ")" {
				depth--
				if depth == 0 {
					break
				}
			}
		}
	}
	if p.peek().Kind != tokArrow {
		return nil, fmt.Errorf("line %d: expected => in function type", p.peek().Line)
	}
	p.pos++
	if _, err := p.parseType(); err != nil {
		return nil, err
	}
	return ir.Func(), nil
}

// parseObject parses an inline record type: { a: T; b?: U }.
func (p *parser) parseObject() (ir.TypeExpr, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}

	var fields []ir.Field
	for !p.isPunct("}") {
		if p.atEOF() {
			return nil, fmt.Errorf("unterminated inline record type")
		}

		nameTok := p.next()
		var name string
		switch nameTok.Kind {
		case tokIdent:
			name = nameTok.Text
		case tokString:
			name = nameTok.Value
		default:
			return nil, fmt.Errorf("line %d: expected field name, found %q", nameTok.Line, nameTok.Text)
		}

		optional := false
		if p.isPunct("?") {
			p.pos++
			optional = true
		}
		if err := p.expectPunct(":"); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ir.Field{Name: name, Type: typ, Optional: optional})

		for p.isPunct(";") || p.isPunct(",") {
			p.pos++
		}
	}
	p.pos++ // consume "}"

	return ir.Object(fields...), nil
}
