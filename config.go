// Package pmxtgen generates the PMXT API artifacts from the canonical
// exchange declaration: the OpenAPI schema document and the typed client
// wrapper source. Both derive from one declaration, so the server surface
// and the client surface cannot drift apart.
package pmxtgen

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pmxt-dev/pmxtgen/apidef"
	"github.com/pmxt-dev/pmxtgen/sink"
)

// Config holds the configuration for artifact generation.
type Config struct {
	// OutDir is the directory where generated files are written. Required
	// unless Sink is set.
	OutDir string `validate:"required_without=Sink"`

	// Sink overrides the output destination. When nil, a filesystem sink
	// rooted at OutDir is used.
	Sink sink.OutputSink `validate:"-"`

	// Provider selects the extraction front end.
	// "ts" (default) - the TypeScript declaration provider
	// "go" - the Go interface provider (go/packages)
	Provider string `validate:"omitempty,oneof=ts go"`

	// Declaration is an optional path to a declaration file. When empty,
	// the embedded canonical declaration is used. Only meaningful for the
	// "ts" provider.
	Declaration string

	// TypeName is the declaration to extract members from.
	// Default: apidef.TypeName. Only meaningful for the "ts" provider.
	TypeName string

	// GoPackage and GoInterface locate the canonical surface when Provider
	// is "go": the package path (or directory) to load and the interface
	// name holding the members.
	GoPackage   string `validate:"required_if=Provider go"`
	GoInterface string `validate:"required_if=Provider go"`

	// SchemaFormat selects the schema artifact encoding.
	// "json" (default), "yaml", or "both".
	SchemaFormat string `validate:"omitempty,oneof=json yaml both"`

	// SchemaPath, SchemaYAMLPath, and ClientPath are the artifact paths,
	// relative to the sink root.
	// Defaults: "openapi.json", "openapi.yaml", "methods.gen.ts".
	SchemaPath     string
	SchemaYAMLPath string
	ClientPath     string

	// Title, Description, and Version override the document metadata.
	Title       string
	Description string
	Version     string
}

var validate = validator.New()

// Validate checks the configuration. Struct tags carry the rules; this is
// the single gate before generation starts.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg *Config) *Config {
	result := *cfg

	if result.Provider == "" {
		result.Provider = "ts"
	}
	if result.TypeName == "" {
		result.TypeName = apidef.TypeName
	}
	if result.SchemaFormat == "" {
		result.SchemaFormat = "json"
	}
	if result.SchemaPath == "" {
		result.SchemaPath = "openapi.json"
	}
	if result.SchemaYAMLPath == "" {
		result.SchemaYAMLPath = "openapi.yaml"
	}
	if result.ClientPath == "" {
		result.ClientPath = "methods.gen.ts"
	}
	if result.Title == "" {
		result.Title = apidef.DocTitle
	}
	if result.Description == "" {
		result.Description = apidef.DocDescription
	}
	if result.Version == "" {
		result.Version = apidef.DocVersion
	}

	return &result
}
