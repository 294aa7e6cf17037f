package pmxtgen

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/pmxt-dev/pmxtgen/apidef"
	"github.com/pmxt-dev/pmxtgen/sink"
)

func TestGenerate(t *testing.T) {
	mem := sink.NewMemorySink()
	result, err := Generate(context.Background(), &Config{Sink: mem})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(result.Files) != 2 {
		t.Fatalf("files = %v, want schema + client", result.Files)
	}
	schema := mem.Get("openapi.json")
	client := mem.Get("methods.gen.ts")
	if schema == nil || client == nil {
		t.Fatal("missing artifact in sink")
	}

	if !json.Valid(schema) {
		t.Error("schema artifact is not valid JSON")
	}
	if !bytes.HasPrefix(client, []byte("// Code generated by pmxtgen. DO NOT EDIT.")) {
		t.Error("client artifact missing generated-code header")
	}
}

// Both artifacts derive from one extraction pass: every member is an
// operation, and every member is either rendered or skip-listed.
func TestGenerateArtifactsStayInSync(t *testing.T) {
	mem := sink.NewMemorySink()
	result, err := Generate(context.Background(), &Config{Sink: mem})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var doc struct {
		Paths map[string]struct {
			Post *struct {
				OperationID string `json:"operationId"`
			} `json:"post"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(mem.Get("openapi.json"), &doc); err != nil {
		t.Fatalf("failed to decode schema artifact: %v", err)
	}

	operations := make(map[string]bool)
	for path, item := range doc.Paths {
		if path == apidef.HealthPath {
			continue
		}
		if item.Post == nil {
			t.Errorf("path %s has no POST operation", path)
			continue
		}
		operations[item.Post.OperationID] = true
	}

	if len(operations) != len(result.Members) {
		t.Errorf("operation count = %d, member count = %d", len(operations), len(result.Members))
	}
	for _, name := range result.Members {
		if !operations[name] {
			t.Errorf("member %q has no schema operation", name)
		}
	}

	rendered := make(map[string]bool, len(result.Rendered))
	for _, name := range result.Rendered {
		rendered[name] = true
	}
	for _, name := range result.Members {
		if !rendered[name] && !apidef.ClientSkip[name] {
			t.Errorf("member %q neither rendered nor skip-listed", name)
		}
		if rendered[name] && apidef.ClientSkip[name] {
			t.Errorf("member %q rendered despite skip list", name)
		}
	}

	client := string(mem.Get("methods.gen.ts"))
	for _, name := range result.Rendered {
		if !strings.Contains(client, "async "+name+"(") {
			t.Errorf("client artifact missing wrapper for %q", name)
		}
	}
	for name := range apidef.ClientSkip {
		if strings.Contains(client, "async "+name+"(") {
			t.Errorf("client artifact renders skip-listed %q", name)
		}
	}
}

// Rerunning over unchanged input reproduces both artifacts byte for byte.
func TestGenerateIdempotent(t *testing.T) {
	ctx := context.Background()

	first := sink.NewMemorySink()
	if _, err := Generate(ctx, &Config{Sink: first, SchemaFormat: "both"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second := sink.NewMemorySink()
	if _, err := Generate(ctx, &Config{Sink: second, SchemaFormat: "both"}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for path, content := range first.Files() {
		if !bytes.Equal(content, second.Get(path)) {
			t.Errorf("artifact %s differs between runs", path)
		}
	}
}

func TestGenerateFormats(t *testing.T) {
	tests := []struct {
		format string
		files  int
	}{
		{"json", 2},
		{"yaml", 2},
		{"both", 3},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			mem := sink.NewMemorySink()
			result, err := Generate(context.Background(), &Config{Sink: mem, SchemaFormat: tt.format})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if len(result.Files) != tt.files {
				t.Errorf("files = %v, want %d artifacts", result.Files, tt.files)
			}
		})
	}
}

func TestGenerateHealthEntry(t *testing.T) {
	mem := sink.NewMemorySink()
	if _, err := Generate(context.Background(), &Config{Sink: mem}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var doc struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(mem.Get("openapi.json"), &doc); err != nil {
		t.Fatalf("failed to decode schema artifact: %v", err)
	}
	if _, ok := doc.Paths[apidef.HealthPath]; !ok {
		t.Errorf("schema document missing %s entry", apidef.HealthPath)
	}
}

// The Go front end feeds the same pipeline: a surface declared as a Go
// interface produces the same pair of artifacts.
func TestGenerateGoProvider(t *testing.T) {
	mem := sink.NewMemorySink()
	result, err := Generate(context.Background(), &Config{
		Sink:        mem,
		Provider:    "go",
		GoPackage:   "./testdata/goexchange",
		GoInterface: "Exchange",
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := []string{"fetchMarkets", "fetchOrderBook", "fetchTrades", "loadMarkets", "close"}
	if strings.Join(result.Members, ",") != strings.Join(want, ",") {
		t.Fatalf("members = %v, want %v", result.Members, want)
	}
	if len(result.Rendered) != len(want) {
		t.Errorf("rendered = %v, want every member wrapped", result.Rendered)
	}

	var doc struct {
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(mem.Get("openapi.json"), &doc); err != nil {
		t.Fatalf("failed to decode schema artifact: %v", err)
	}
	if _, ok := doc.Paths["/api/{exchange}/fetchMarkets"]; !ok {
		t.Error("schema document missing fetchMarkets operation")
	}

	client := string(mem.Get("methods.gen.ts"))
	if !strings.Contains(client, "async loadMarkets(") {
		t.Error("client artifact missing loadMarkets wrapper")
	}
}

func TestGenerateGoProviderConfig(t *testing.T) {
	mem := sink.NewMemorySink()
	if _, err := Generate(context.Background(), &Config{Sink: mem, Provider: "go"}); err == nil {
		t.Error("Generate() with go provider and no package should return error")
	}
	if _, err := Generate(context.Background(), &Config{Sink: mem, Provider: "rust"}); err == nil {
		t.Error("Generate() with unknown provider should return error")
	}
}

func TestGenerateConfigValidation(t *testing.T) {
	if _, err := Generate(context.Background(), &Config{}); err == nil {
		t.Error("Generate() without OutDir or Sink should return error")
	}
	if _, err := Generate(context.Background(), &Config{SchemaFormat: "xml", Sink: sink.NewMemorySink()}); err == nil {
		t.Error("Generate() with unknown format should return error")
	}
}

func TestGenerateMissingDeclarationFile(t *testing.T) {
	_, err := Generate(context.Background(), &Config{
		Sink:        sink.NewMemorySink(),
		Declaration: "testdata/does-not-exist.d.ts",
	})
	if err == nil {
		t.Error("Generate() with missing declaration file should return error")
	}
}

func TestCheck(t *testing.T) {
	result, err := Check(context.Background(), &Config{})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(result.Members) == 0 || len(result.Rendered) == 0 {
		t.Errorf("Check() result = %+v, want populated member sets", result)
	}
	if len(result.Files) != 0 {
		t.Errorf("Check() wrote files: %v", result.Files)
	}
}

func TestCheckUnknownType(t *testing.T) {
	if _, err := Check(context.Background(), &Config{TypeName: "MissingExchange"}); err == nil {
		t.Error("Check() with unknown declaration should return error")
	}
}
