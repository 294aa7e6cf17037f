// Package provider extracts member descriptors from the canonical interface
// declaration. The primary front end scans a TypeScript declaration file;
// a secondary front end loads a Go interface via go/packages. Both produce
// the same ir.Member stream, so the generators never know which one ran.
package provider

import (
	"fmt"
	"strings"
	"unicode"
)

// tokKind identifies a lexical token class.
type tokKind int

const (
	tokEOF tokKind = iota
	tokIdent
	tokString // quoted string literal; Value holds the unquoted text
	tokNumber
	tokPunct // single punctuation rune
	tokArrow // =>
	tokDoc   // /** ... */ block attached to the following member
)

// token is one lexical unit of the declaration source.
type token struct {
	Kind  tokKind
	Text  string // raw source text
	Value string // unquoted value for tokString, otherwise equal to Text
	Line  int
}

// lex tokenizes a declaration source. Line comments and non-doc block
// comments are dropped; doc comments become tokDoc tokens so the extractor
// can attach them to the member that follows.
func lex(src []byte) ([]token, error) {
	var toks []token
	s := string(src)
	line := 1
	i := 0

	for i < len(s) {
		c := s[i]

		switch {
		case c == '\n':
			line++
			i++
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i < len(s) && s[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			start, startLine := i, line
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return nil, fmt.Errorf("line %d: unterminated block comment", line)
			}
			i += 2 + end + 2
			text := s[start:i]
			line += strings.Count(text, "\n")
			if strings.HasPrefix(text, "/**") {
				toks = append(toks, token{Kind: tokDoc, Text: text, Value: text, Line: startLine})
			}
		case c == '\'' || c == '"' || c == '`':
			quote := c
			j := i + 1
			var val strings.Builder
			for j < len(s) && s[j] != quote {
				if s[j] == '\\' && j+1 < len(s) {
					val.WriteByte(s[j+1])
					j += 2
					continue
				}
				if s[j] == '\n' {
					line++
				}
				val.WriteByte(s[j])
				j++
			}
			if j >= len(s) {
				return nil, fmt.Errorf("line %d: unterminated string literal", line)
			}
			toks = append(toks, token{Kind: tokString, Text: s[i : j+1], Value: val.String(), Line: line})
			i = j + 1
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.' || s[j] == '_') {
				j++
			}
			text := strings.ReplaceAll(s[i:j], "_", "")
			toks = append(toks, token{Kind: tokNumber, Text: text, Value: text, Line: line})
			i = j
		case isIdentStart(rune(c)):
			j := i
			for j < len(s) && isIdentPart(rune(s[j])) {
				j++
			}
			toks = append(toks, token{Kind: tokIdent, Text: s[i:j], Value: s[i:j], Line: line})
			i = j
		case c == '=' && i+1 < len(s) && s[i+1] == '>':
			toks = append(toks, token{Kind: tokArrow, Text: "=>", Value: "=>", Line: line})
			i += 2
		default:
			toks = append(toks, token{Kind: tokPunct, Text: string(c), Value: string(c), Line: line})
			i++
		}
	}

	toks = append(toks, token{Kind: tokEOF, Line: line})
	return toks, nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}
