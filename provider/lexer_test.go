package provider

import (
	"strings"
	"testing"
)

func TestLexBasicTokens(t *testing.T) {
	toks, err := lex([]byte(`fetchTrades(outcomeId: string, limit?: number): Promise<Trade[]>;`))
	if err != nil {
		t.Fatalf("lex() error = %v", err)
	}

	var idents []string
	for _, tok := range toks {
		if tok.Kind == tokIdent {
			idents = append(idents, tok.Text)
		}
	}
	want := "fetchTrades outcomeId string limit number Promise Trade"
	if got := strings.Join(idents, " "); got != want {
		t.Errorf("identifiers = %q, want %q", got, want)
	}

	if last := toks[len(toks)-1]; last.Kind != tokEOF {
		t.Errorf("last token kind = %v, want tokEOF", last.Kind)
	}
}

func TestLexComments(t *testing.T) {
	src := []byte(`
// dropped line comment
/* dropped block comment */
/** kept doc comment */
close(): Promise<void>;
`)
	toks, err := lex(src)
	if err != nil {
		t.Fatalf("lex() error = %v", err)
	}

	var docs int
	for _, tok := range toks {
		if tok.Kind == tokDoc {
			docs++
			if !strings.Contains(tok.Value, "kept doc comment") {
				t.Errorf("doc token = %q, want the /** */ block", tok.Value)
			}
		}
	}
	if docs != 1 {
		t.Errorf("doc token count = %d, want 1", docs)
	}
}

func TestLexStrings(t *testing.T) {
	toks, err := lex([]byte(`side: "buy" | 'sell'`))
	if err != nil {
		t.Fatalf("lex() error = %v", err)
	}

	var values []string
	for _, tok := range toks {
		if tok.Kind == tokString {
			values = append(values, tok.Value)
		}
	}
	if len(values) != 2 || values[0] != "buy" || values[1] != "sell" {
		t.Errorf("string values = %v, want [buy sell]", values)
	}
}

func TestLexArrow(t *testing.T) {
	toks, err := lex([]byte(`callback?: (trade: Trade) => void`))
	if err != nil {
		t.Fatalf("lex() error = %v", err)
	}

	found := false
	for _, tok := range toks {
		if tok.Kind == tokArrow {
			found = true
		}
	}
	if !found {
		t.Error("no tokArrow produced for =>")
	}
}

func TestLexErrors(t *testing.T) {
	if _, err := lex([]byte(`/* unterminated`)); err == nil {
		t.Error("lex() should fail on unterminated block comment")
	}
	if _, err := lex([]byte(`side: "unterminated`)); err == nil {
		t.Error("lex() should fail on unterminated string literal")
	}
}

func TestLexLineNumbers(t *testing.T) {
	toks, err := lex([]byte("a\nb\nc"))
	if err != nil {
		t.Fatalf("lex() error = %v", err)
	}
	if toks[2].Line != 3 {
		t.Errorf("token %q line = %d, want 3", toks[2].Text, toks[2].Line)
	}
}
