package pmxtgen

import (
	"context"
	"fmt"
	"os"

	"github.com/pmxt-dev/pmxtgen/apidef"
	"github.com/pmxt-dev/pmxtgen/ir"
	"github.com/pmxt-dev/pmxtgen/openapi"
	"github.com/pmxt-dev/pmxtgen/provider"
	"github.com/pmxt-dev/pmxtgen/sink"
	"github.com/pmxt-dev/pmxtgen/tsclient"
)

// Result reports what a run produced.
type Result struct {
	// Members are the extracted member names, in declaration order. Each
	// is one operation in the schema document.
	Members []string

	// Rendered are the members with generated client wrappers, in
	// declaration order. Skip-listed members appear in Members but not
	// here.
	Rendered []string

	// Files are the artifact paths written, relative to the sink root.
	// Empty for check-only runs.
	Files []string
}

// Generate runs the full pipeline: extract members from the declaration,
// build both artifacts in memory, then write them through the sink. Nothing
// is written until every artifact has been assembled, so a failing run
// leaves existing artifacts untouched.
func Generate(ctx context.Context, cfg *Config) (*Result, error) {
	cfg = applyConfigDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	files, result, err := build(ctx, cfg)
	if err != nil {
		return nil, err
	}

	out := cfg.Sink
	if out == nil {
		out = sink.NewFilesystemSink(cfg.OutDir)
	}

	// One batch write: the sink replaces either every artifact or none,
	// so the pair cannot end up half-regenerated.
	if err := out.WriteFiles(ctx, files); err != nil {
		return nil, fmt.Errorf("failed to write artifacts: %w", err)
	}
	for _, f := range files {
		result.Files = append(result.Files, f.Path)
	}

	return result, nil
}

// Check runs extraction and assembly without writing anything. It surfaces
// the same failures as Generate: parse errors, unknown declarations, and
// members missing a client policy.
func Check(ctx context.Context, cfg *Config) (*Result, error) {
	cfg = applyConfigDefaults(cfg)

	_, result, err := build(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// build assembles every artifact in memory and reports the member sets.
func build(ctx context.Context, cfg *Config) ([]sink.File, *Result, error) {
	members, err := extract(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if len(members) == 0 {
		return nil, nil, fmt.Errorf("declaration has no generatable members")
	}

	doc := openapi.BuildDocument(members, openapi.DocumentConfig{
		Title:        cfg.Title,
		Description:  cfg.Description,
		Version:      cfg.Version,
		NamedSchemas: apidef.NamedSchemas,
		Components:   apidef.Components(),
		HealthPath:   apidef.HealthPath,
		Health:       apidef.HealthItem(),
	})

	var files []sink.File

	if cfg.SchemaFormat == "json" || cfg.SchemaFormat == "both" {
		out, err := openapi.EncodeJSON(doc)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, sink.File{Path: cfg.SchemaPath, Content: out})
	}
	if cfg.SchemaFormat == "yaml" || cfg.SchemaFormat == "both" {
		out, err := openapi.EncodeYAML(doc)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, sink.File{Path: cfg.SchemaYAMLPath, Content: out})
	}

	client, rendered, err := tsclient.Render(members, tsclient.RenderOptions{
		Policies: apidef.Policies,
		Skip:     apidef.ClientSkip,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to render client: %w", err)
	}
	files = append(files, sink.File{Path: cfg.ClientPath, Content: client})

	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}

	return files, &Result{Members: names, Rendered: rendered}, nil
}

// extract runs the configured front end. Both providers produce the same
// member stream, so everything downstream is provider-agnostic.
func extract(ctx context.Context, cfg *Config) ([]ir.Member, error) {
	switch cfg.Provider {
	case "ts":
		src := apidef.DeclarationSource
		if cfg.Declaration != "" {
			var err error
			src, err = os.ReadFile(cfg.Declaration)
			if err != nil {
				return nil, fmt.Errorf("failed to read declaration: %w", err)
			}
		}
		members, err := provider.ExtractMembers(src, provider.Options{
			TypeName: cfg.TypeName,
			Exclude:  apidef.Exclusions,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to extract members: %w", err)
		}
		return members, nil

	case "go":
		members, err := provider.ExtractGoInterface(ctx, provider.GoOptions{
			Package:   cfg.GoPackage,
			Interface: cfg.GoInterface,
			Exclude:   apidef.Exclusions,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to extract members: %w", err)
		}
		return members, nil

	default:
		return nil, fmt.Errorf("unknown provider: %q (expected \"ts\" or \"go\")", cfg.Provider)
	}
}
