package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/pmxt-dev/pmxtgen"
)

type CLI struct {
	Version VersionCmd `cmd:"" help:"Print version information."`
	Gen     GenCmd     `cmd:"" help:"Generate the OpenAPI document and typed client wrappers."`
	Check   CheckCmd   `cmd:"" help:"Validate the declaration and policy tables without writing files."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

type GenCmd struct {
	Out         string `arg:"" help:"Output directory for generated artifacts."`
	Provider    string `help:"Extraction front end: ts or go." default:"ts" enum:"ts,go"`
	Declaration string `help:"Declaration file to extract from (default: embedded, provider=ts)." short:"d" type:"existingfile"`
	GoPackage   string `help:"Go package path to analyze (provider=go)."`
	GoInterface string `help:"Go interface holding the canonical surface (provider=go)."`
	Format      string `help:"Schema format: json, yaml, or both." default:"json" enum:"json,yaml,both" short:"f"`
	Quiet       bool   `help:"Suppress per-member summary output." short:"q"`
}

func (c *GenCmd) Run() error {
	result, err := pmxtgen.Generate(context.Background(), &pmxtgen.Config{
		OutDir:       c.Out,
		Provider:     c.Provider,
		Declaration:  c.Declaration,
		GoPackage:    c.GoPackage,
		GoInterface:  c.GoInterface,
		SchemaFormat: c.Format,
	})
	if err != nil {
		return err
	}

	if !c.Quiet {
		printSummary(result)
	}
	fmt.Printf("wrote %d files to %s\n", len(result.Files), c.Out)
	return nil
}

type CheckCmd struct {
	Provider    string `help:"Extraction front end: ts or go." default:"ts" enum:"ts,go"`
	Declaration string `help:"Declaration file to extract from (default: embedded, provider=ts)." short:"d" type:"existingfile"`
	GoPackage   string `help:"Go package path to analyze (provider=go)."`
	GoInterface string `help:"Go interface holding the canonical surface (provider=go)."`
}

func (c *CheckCmd) Run() error {
	result, err := pmxtgen.Check(context.Background(), &pmxtgen.Config{
		Provider:    c.Provider,
		Declaration: c.Declaration,
		GoPackage:   c.GoPackage,
		GoInterface: c.GoInterface,
	})
	if err != nil {
		return err
	}

	fmt.Printf("ok: %d operations, %d client wrappers\n", len(result.Members), len(result.Rendered))
	return nil
}

// printSummary lists every member with markers for how it was handled:
// schema-only members carry no wrapper.
func printSummary(result *pmxtgen.Result) {
	rendered := make(map[string]bool, len(result.Rendered))
	for _, name := range result.Rendered {
		rendered[name] = true
	}
	for _, name := range result.Members {
		if rendered[name] {
			fmt.Printf("  %s\n", name)
		} else {
			fmt.Printf("  %s (schema only)\n", name)
		}
	}
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("pmxtgen"),
		kong.Description("PMXT artifact generator: one declaration in, schema document and typed client out."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
