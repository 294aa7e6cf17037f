package provider

import (
	"fmt"

	"github.com/pmxt-dev/pmxtgen/ir"
)

// Options configures extraction from a TypeScript declaration source.
type Options struct {
	// TypeName selects the interface or class to scan. Empty means the
	// first interface/class declaration in the source.
	TypeName string

	// Exclude contains member names to omit from extraction.
	Exclude map[string]bool
}

// modifiers that may precede a member or the declaration itself.
var memberModifiers = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
	"abstract":  true,
	"readonly":  true,
	"static":    true,
	"async":     true,
	"override":  true,
	"declare":   true,
}

// ExtractMembers scans the canonical declaration and returns one ir.Member
// per included method, in declaration order. A member is included iff it is
// not marked private, protected, or abstract and its name is not excluded.
// Members whose names cannot be statically resolved (computed names) and
// non-method members are skipped silently. Nested declarations are not
// descended into.
func ExtractMembers(src []byte, opts Options) ([]ir.Member, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks}
	if err := seekDeclarationBody(p, opts.TypeName); err != nil {
		return nil, err
	}

	var members []ir.Member
	pendingDoc := ""

	for {
		t := p.peek()
		switch {
		case t.Kind == tokEOF:
			return nil, fmt.Errorf("unterminated declaration body")

		case t.Kind == tokDoc:
			pendingDoc = t.Value
			p.pos++
			continue

		case t.Kind == tokPunct && t.Text == "}":
			return members, nil

		case t.Kind == tokPunct && t.Text == ";":
			p.pos++
			continue
		}

		m, included, err := extractMember(p, pendingDoc, opts.Exclude)
		pendingDoc = ""
		if err != nil {
			return nil, err
		}
		if included {
			members = append(members, m)
		}
	}
}

// seekDeclarationBody advances the parser past the interface/class keyword,
// name, and heritage clauses, stopping just inside the opening brace.
func seekDeclarationBody(p *parser, typeName string) error {
	for !p.atEOF() {
		t := p.next()
		if t.Kind != tokIdent || (t.Text != "interface" && t.Text != "class") {
			continue
		}
		nameTok := p.peek()
		if nameTok.Kind != tokIdent {
			continue
		}
		if typeName != "" && nameTok.Text != typeName {
			continue
		}
		p.pos++

		// Skip heritage clauses (extends/implements) up to the body.
		for !p.atEOF() && !p.isPunct("{") {
			p.pos++
		}
		if p.atEOF() {
			return fmt.Errorf("declaration %s has no body", nameTok.Text)
		}
		p.pos++ // consume "{"
		return nil
	}

	if typeName != "" {
		return fmt.Errorf("declaration %s not found", typeName)
	}
	return fmt.Errorf("no interface or class declaration found")
}

// extractMember consumes exactly one member and reports whether it passed
// the inclusion filter.
func extractMember(p *parser, doc string, exclude map[string]bool) (ir.Member, bool, error) {
	var isPrivate, isProtected, isAbstract bool

	// Modifier keywords are plain identifiers; only treat one as a modifier
	// when it is not itself the member name (i.e. not followed by member
	// punctuation).
	for {
		t := p.peek()
		if t.Kind != tokIdent || !memberModifiers[t.Text] {
			break
		}
		after := p.toks[p.pos+1]
		if after.Kind == tokPunct && (after.Text == "(" || after.Text == "?" || after.Text == ":" || after.Text == "=") {
			break
		}
		switch t.Text {
		case "private":
			isPrivate = true
		case "protected":
			isProtected = true
		case "abstract":
			isAbstract = true
		}
		p.pos++
	}

	nameTok := p.peek()

	// Computed or symbolic names cannot be statically resolved; skip the
	// whole member without error.
	if nameTok.Kind == tokPunct && nameTok.Text == "[" {
		skipMember(p)
		return ir.Member{}, false, nil
	}

	var name string
	switch nameTok.Kind {
	case tokIdent:
		name = nameTok.Text
	case tokString:
		// `"": () => void;` is legal TS, but an empty name cannot become
		// an operation id.
		if nameTok.Value == "" {
			p.pos++
			skipMember(p)
			return ir.Member{}, false, nil
		}
		name = nameTok.Value
	default:
		return ir.Member{}, false, fmt.Errorf("line %d: unexpected token %q in declaration body", nameTok.Line, nameTok.Text)
	}
	p.pos++

	// Accessors read as "get name() {...}"; they are not operations.
	if (name == "get" || name == "set") && p.peek().Kind == tokIdent {
		p.pos++
		skipMember(p)
		return ir.Member{}, false, nil
	}

	if p.isPunct("?") {
		p.pos++
	}

	if !p.isPunct("(") {
		// Property member. Not an operation.
		skipMember(p)
		return ir.Member{}, false, nil
	}

	params, err := parseParams(p)
	if err != nil {
		return ir.Member{}, false, err
	}

	var ret ir.TypeExpr
	if p.isPunct(":") {
		p.pos++
		ret, err = p.parseType()
		if err != nil {
			return ir.Member{}, false, err
		}
	}

	// Concrete members carry a body; declared members end with ";".
	if p.isPunct("{") {
		skipBraces(p)
	} else if p.isPunct(";") || p.isPunct(",") {
		p.pos++
	}

	if isPrivate || isProtected || isAbstract || name == "constructor" || exclude[name] {
		return ir.Member{}, false, nil
	}

	return ir.Member{
		Name:   name,
		Title:  titleFromName(name),
		Params: params,
		Return: ret,
		Doc:    docText(doc),
	}, true, nil
}

// parseParams consumes a parenthesized parameter list.
func parseParams(p *parser) ([]ir.Parameter, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}

	var params []ir.Parameter
	for !p.isPunct(")") {
		if p.atEOF() {
			return nil, fmt.Errorf("unterminated parameter list")
		}

		// Rest parameters fall outside the request-schema model; the
		// element vocabulary still has to parse.
		for p.isPunct(".") {
			p.pos++
		}

		nameTok := p.next()
		if nameTok.Kind != tokIdent {
			return nil, fmt.Errorf("line %d: expected parameter name, found %q", nameTok.Line, nameTok.Text)
		}

		param := ir.Parameter{Name: nameTok.Text, Type: ir.Any()}
		if p.isPunct("?") {
			p.pos++
			param.Optional = true
		}
		if p.isPunct(":") {
			p.pos++
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			param.Type = typ
		}
		if p.isPunct("=") {
			p.pos++
			param.Default = captureDefault(p)
		}
		params = append(params, param)

		if p.isPunct(",") {
			p.pos++
		}
	}
	p.pos++ // consume ")"
	return params, nil
}

// captureDefault collects the default-value literal verbatim, up to the
// comma or closing parenthesis that ends the parameter.
func captureDefault(p *parser) string {
	depth := 0
	out := ""
	for {
		t := p.peek()
		if t.Kind == tokEOF {
			return out
		}
		if t.Kind == tokPunct && depth == 0 && (t.Text == "," || t.Text == ")") {
			return out
		}
		if t.Kind == tokPunct {
			switch t.Text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
			}
		}
		out += t.Text
		p.pos++
	}
}

// skipMember consumes tokens through the end of the current member: the
// terminating semicolon at nesting depth zero, or a balanced body.
func skipMember(p *parser) {
	depth := 0
	for {
		t := p.peek()
		if t.Kind == tokEOF {
			return
		}
		if t.Kind == tokPunct {
			switch t.Text {
			case "(", "[":
				depth++
			case ")", "]":
				depth--
			case "{":
				skipBraces(p)
				if depth == 0 {
					return
				}
				continue
			case ";":
				if depth == 0 {
					p.pos++
					return
				}
			case "}":
				if depth == 0 {
					// End of the declaration body; leave it for the caller.
					return
				}
			}
		}
		p.pos++
	}
}

// skipBraces consumes a balanced { ... } group.
func skipBraces(p *parser) {
	depth := 0
	for {
		t := p.peek()
		if t.Kind == tokEOF {
			return
		}
		if t.Kind == tokPunct {
			switch t.Text {
			case "{":
				depth++
			case "}":
				depth--
				if depth == 0 {
					p.pos++
					return
				}
			}
		}
		p.pos++
	}
}
