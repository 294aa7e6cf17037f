package openapi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/pmxt-dev/pmxtgen/ir"
)

func encodeTestDocument() *Document {
	members := []ir.Member{
		{Name: "fetchMarkets", Title: "Fetch Markets", Return: ir.Named("Promise", ir.ArrayOf(ir.Named("UnifiedMarket")))},
		{Name: "close", Title: "Close", Return: ir.Named("Promise", ir.Void())},
		{Name: "fetchBalance", Title: "Fetch Balance", Return: ir.Named("Promise", ir.ArrayOf(ir.Named("Balance")))},
	}
	return BuildDocument(members, testDocConfig())
}

func TestEncodeJSON(t *testing.T) {
	out, err := EncodeJSON(encodeTestDocument())
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}

	if !bytes.HasSuffix(out, []byte("\n")) {
		t.Error("output must end with a newline")
	}
	if !json.Valid(out) {
		t.Fatal("output is not valid JSON")
	}

	// Map keys come out sorted, so path order is alphabetical regardless of
	// declaration order.
	text := string(out)
	iClose := strings.Index(text, "/api/{exchange}/close")
	iBalance := strings.Index(text, "/api/{exchange}/fetchBalance")
	iMarkets := strings.Index(text, "/api/{exchange}/fetchMarkets")
	if iClose < 0 || iBalance < 0 || iMarkets < 0 {
		t.Fatal("expected operation paths missing from output")
	}
	if !(iClose < iBalance && iBalance < iMarkets) {
		t.Errorf("paths not sorted: close=%d balance=%d markets=%d", iClose, iBalance, iMarkets)
	}
}

// Rebuilding from unchanged input must reproduce the artifact byte for byte.
func TestEncodeJSONIdempotent(t *testing.T) {
	a, err := EncodeJSON(encodeTestDocument())
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	b, err := EncodeJSON(encodeTestDocument())
	if err != nil {
		t.Fatalf("EncodeJSON() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated encoding differs")
	}
}

func TestEncodeYAML(t *testing.T) {
	out, err := EncodeYAML(encodeTestDocument())
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "openapi: 3.0.3") {
		t.Error("missing openapi version line")
	}
	if !strings.Contains(text, "/api/{exchange}/fetchMarkets") {
		t.Error("missing operation path")
	}

	again, err := EncodeYAML(encodeTestDocument())
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}
	if !bytes.Equal(out, again) {
		t.Error("repeated encoding differs")
	}
}

// The YAML tree carries the same field names as the JSON artifact: both are
// produced through the json struct tags.
func TestEncodeYAMLMatchesJSONFieldNames(t *testing.T) {
	out, err := EncodeYAML(encodeTestDocument())
	if err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}
	for _, field := range []string{"operationId:", "requestBody:", "paths:"} {
		if !strings.Contains(string(out), field) {
			t.Errorf("missing %q in YAML output", field)
		}
	}
}
