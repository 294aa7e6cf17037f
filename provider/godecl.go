package provider

import (
	"context"
	"fmt"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/pmxt-dev/pmxtgen/ir"
)

// GoOptions configures extraction from a Go interface declaration.
type GoOptions struct {
	// Package is the Go package path (or directory) to analyze.
	Package string

	// Interface is the interface type name holding the canonical surface.
	Interface string

	// Exclude contains member names to omit from extraction.
	Exclude map[string]bool
}

// ExtractGoInterface loads a Go package and extracts the named interface's
// methods as ir.Members. It applies the same inclusion rules as the
// TypeScript front end: unexported methods are filtered out (Go's analogue
// of private members), excluded names are dropped, and declaration order
// is preserved.
//
// Signature conventions: a leading context.Context parameter is transport
// plumbing and is skipped; a trailing error result is likewise dropped, so
// func(ctx, id string) (Order, error) extracts as id -> Order.
func ExtractGoInterface(ctx context.Context, opts GoOptions) ([]ir.Member, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("no package specified")
	}
	if opts.Interface == "" {
		return nil, fmt.Errorf("no interface name specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedSyntax |
			packages.NeedTypes |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, opts.Package)
	if err != nil {
		return nil, fmt.Errorf("failed to load package: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	ifaceType := findInterface(pkgs, opts.Interface)
	if ifaceType == nil {
		return nil, fmt.Errorf("interface %s not found in %s", opts.Interface, opts.Package)
	}

	var members []ir.Member
	for _, field := range ifaceType.Methods.List {
		// Embedded interfaces have no names; nested surfaces are not
		// descended into.
		if len(field.Names) == 0 {
			continue
		}
		name := field.Names[0].Name
		if !ast.IsExported(name) {
			continue
		}

		fn, ok := field.Type.(*ast.FuncType)
		if !ok {
			continue
		}

		// Exclusion tables are keyed by the wire name, so check after
		// lowering; the same table then serves both front ends.
		lower := strings.ToLower(name[:1]) + name[1:]
		if opts.Exclude[lower] {
			continue
		}
		members = append(members, ir.Member{
			Name:   lower,
			Title:  titleFromName(lower),
			Params: goParams(fn),
			Return: goResult(fn),
			Doc:    goDocText(field.Doc),
		})
	}
	return members, nil
}

// findInterface locates the ast.InterfaceType for the named declaration.
func findInterface(pkgs []*packages.Package, name string) *ast.InterfaceType {
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			for _, decl := range file.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok {
					continue
				}
				for _, spec := range gd.Specs {
					ts, ok := spec.(*ast.TypeSpec)
					if !ok || ts.Name.Name != name {
						continue
					}
					if iface, ok := ts.Type.(*ast.InterfaceType); ok {
						return iface
					}
				}
			}
		}
	}
	return nil
}

// goParams maps the method's parameter list into the shared vocabulary.
func goParams(fn *ast.FuncType) []ir.Parameter {
	if fn.Params == nil {
		return nil
	}

	var params []ir.Parameter
	for i, field := range fn.Params.List {
		typ, optional := goTypeExpr(field.Type)
		if i == 0 && isContextParam(field.Type) {
			continue
		}
		if len(field.Names) == 0 {
			params = append(params, ir.Parameter{Name: fmt.Sprintf("arg%d", i), Type: typ, Optional: optional})
			continue
		}
		for _, n := range field.Names {
			params = append(params, ir.Parameter{Name: n.Name, Type: typ, Optional: optional})
		}
	}
	return params
}

// goResult maps the method's result list: the first non-error result is the
// return type, and none means void.
func goResult(fn *ast.FuncType) ir.TypeExpr {
	if fn.Results == nil {
		return nil
	}
	for _, field := range fn.Results.List {
		if id, ok := field.Type.(*ast.Ident); ok && id.Name == "error" {
			continue
		}
		typ, _ := goTypeExpr(field.Type)
		return typ
	}
	return nil
}

// goTypeExpr maps a Go AST type expression into the shared vocabulary.
// Pointer parameters mark optionality.
func goTypeExpr(expr ast.Expr) (ir.TypeExpr, bool) {
	switch t := expr.(type) {
	case *ast.Ident:
		switch t.Name {
		case "string":
			return ir.String(), false
		case "bool":
			return ir.Boolean(), false
		case "int", "int8", "int16", "int32", "int64",
			"uint", "uint8", "uint16", "uint32", "uint64",
			"float32", "float64":
			return ir.Number(), false
		case "any":
			return ir.Any(), false
		}
		return ir.Named(t.Name), false
	case *ast.SelectorExpr:
		return ir.Named(t.Sel.Name), false
	case *ast.StarExpr:
		inner, _ := goTypeExpr(t.X)
		return inner, true
	case *ast.ArrayType:
		elem, _ := goTypeExpr(t.Elt)
		return ir.ArrayOf(elem), false
	case *ast.MapType:
		key, _ := goTypeExpr(t.Key)
		value, _ := goTypeExpr(t.Value)
		return ir.Named("Record", key, value), false
	case *ast.InterfaceType:
		return ir.Any(), false
	case *ast.FuncType:
		return ir.Func(), false
	}
	return ir.Any(), false
}

func isContextParam(expr ast.Expr) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "context" && sel.Sel.Name == "Context"
}

// goDocText joins a Go doc comment the same way the TypeScript front end
// joins JSDoc text.
func goDocText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.Join(strings.Fields(cg.Text()), " ")
}
