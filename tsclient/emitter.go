package tsclient

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pmxt-dev/pmxtgen/ir"
)

// RenderOptions configures client rendering.
type RenderOptions struct {
	// Policies is the per-member response-handling table.
	Policies map[string]Policy

	// Skip lists members whose wrappers are maintained by hand.
	Skip map[string]bool

	// ModelsImport and CoreImport are the import specifiers for the model
	// types/converters and the request core. Defaults: "./models", "./core".
	ModelsImport string
	CoreImport   string
}

// Render emits the generated client source and returns it together with the
// rendered member names, in declaration order. Every member outside the
// skip-list must have a policy; coverage is checked up front so the error
// surfaces before any output exists.
func Render(members []ir.Member, opts RenderOptions) ([]byte, []string, error) {
	if err := CheckCoverage(members, opts.Policies, opts.Skip); err != nil {
		return nil, nil, err
	}

	modelsImport := opts.ModelsImport
	if modelsImport == "" {
		modelsImport = "./models"
	}
	coreImport := opts.CoreImport
	if coreImport == "" {
		coreImport = "./core"
	}

	var rendered []ir.Member
	for _, m := range members {
		if !opts.Skip[m.Name] {
			rendered = append(rendered, m)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by pmxtgen. DO NOT EDIT.\n\n")
	writeImports(&buf, rendered, opts.Policies, modelsImport, coreImport)

	buf.WriteString("export class GeneratedMethods extends ClientCore {\n")
	names := make([]string, 0, len(rendered))
	for i, m := range rendered {
		if i > 0 {
			buf.WriteString("\n")
		}
		emitMethod(&buf, m, opts.Policies[m.Name])
		names = append(names, m.Name)
	}
	buf.WriteString("}\n")

	return buf.Bytes(), names, nil
}

// writeImports collects the model types and converter routines the rendered
// wrappers reference.
func writeImports(buf *bytes.Buffer, members []ir.Member, policies map[string]Policy, modelsImport, coreImport string) {
	types := map[string]bool{}
	converters := map[string]bool{}

	for _, m := range members {
		for _, p := range m.Params {
			collectNamed(p.Type, types)
		}
		collectNamed(m.Return, types)

		pol := policies[m.Name]
		// Global routines like Boolean need no import.
		if strings.HasPrefix(pol.Converter, "convert") {
			converters[pol.Converter] = true
		}
	}

	fmt.Fprintf(buf, "import { ClientCore, type RawRecord, type RawPage } from %q;\n", coreImport)
	if len(converters) > 0 {
		fmt.Fprintf(buf, "import { %s } from %q;\n", strings.Join(sortedKeys(converters), ", "), modelsImport)
	}
	if len(types) > 0 {
		fmt.Fprintf(buf, "import type { %s } from %q;\n", strings.Join(sortedKeys(types), ", "), modelsImport)
	}
	buf.WriteString("\n")
}

// collectNamed walks an expression for named references that resolve to
// model types.
func collectNamed(expr ir.TypeExpr, out map[string]bool) {
	switch e := expr.(type) {
	case *ir.NamedExpr:
		switch e.Name {
		case "Promise", "Record", "Array":
		default:
			out[e.Name] = true
		}
		for _, a := range e.Args {
			collectNamed(a, out)
		}
	case *ir.ArrayExpr:
		collectNamed(e.Elem, out)
	case *ir.UnionExpr:
		for _, m := range e.Members {
			collectNamed(m, out)
		}
	case *ir.ObjectExpr:
		for _, f := range e.Fields {
			collectNamed(f.Type, out)
		}
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// emitMethod renders one wrapper.
func emitMethod(buf *bytes.Buffer, m ir.Member, pol Policy) {
	if m.Doc != "" {
		fmt.Fprintf(buf, "  /** %s */\n", m.Doc)
	}

	retLabel := "void"
	if pol.Pattern != PatternVoid {
		retLabel = pol.ReturnType
	}

	params := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		params = append(params, renderParam(p))
	}
	fmt.Fprintf(buf, "  async %s(%s): Promise<%s> {\n", m.Name, strings.Join(params, ", "), retLabel)

	// Arguments always travel in declared order; an absent optional
	// argument is omitted rather than sent as an explicit empty value.
	buf.WriteString("    const args: unknown[] = [];\n")
	for _, p := range m.Params {
		if p.Optional && p.Default == "" {
			fmt.Fprintf(buf, "    if (%s !== undefined) {\n      args.push(%s);\n    }\n", p.Name, p.Name)
		} else {
			fmt.Fprintf(buf, "    args.push(%s);\n", p.Name)
		}
	}

	emitResponseHandling(buf, m.Name, pol)
	buf.WriteString("  }\n")
}

func emitResponseHandling(buf *bytes.Buffer, name string, pol Policy) {
	switch pol.Pattern {
	case PatternVoid:
		fmt.Fprintf(buf, "    await this.request(%q, args);\n", name)

	case PatternSingle:
		fmt.Fprintf(buf, "    const payload = await this.request(%q, args);\n", name)
		fmt.Fprintf(buf, "    return %s(payload as RawRecord);\n", pol.Converter)

	case PatternArray:
		fmt.Fprintf(buf, "    const payload = await this.request(%q, args);\n", name)
		fmt.Fprintf(buf, "    return (payload as RawRecord[]).map((raw) => %s(raw));\n", pol.Converter)

	case PatternRecord:
		fmt.Fprintf(buf, "    const payload = (await this.request(%q, args)) as Record<string, RawRecord>;\n", name)
		fmt.Fprintf(buf, "    const out: %s = {};\n", pol.ReturnType)
		buf.WriteString("    for (const [key, value] of Object.entries(payload)) {\n")
		fmt.Fprintf(buf, "      out[key] = %s(value);\n", pol.Converter)
		buf.WriteString("    }\n")
		buf.WriteString("    return out;\n")

	case PatternPaginated:
		fmt.Fprintf(buf, "    const payload = (await this.request(%q, args)) as RawPage;\n", name)
		buf.WriteString("    return {\n")
		fmt.Fprintf(buf, "      data: (payload.data ?? []).map((raw) => %s(raw)),\n", pol.Converter)
		buf.WriteString("      total: payload.total,\n")
		buf.WriteString("      nextCursor: payload.nextCursor,\n")
		buf.WriteString("    };\n")
	}
}

// renderParam renders one parameter declaration. Optional parameters render
// as optional positional parameters; default values are reproduced verbatim.
func renderParam(p ir.Parameter) string {
	out := p.Name
	if p.Optional && p.Default == "" {
		out += "?"
	}
	out += ": " + RenderType(p.Type)
	if p.Default != "" {
		out += " = " + p.Default
	}
	return out
}

// RenderType renders a type expression as TypeScript source.
func RenderType(expr ir.TypeExpr) string {
	if expr == nil {
		return "void"
	}

	switch e := expr.(type) {
	case *ir.PrimitiveExpr:
		return e.Primitive.String()

	case *ir.ArrayExpr:
		elem := RenderType(e.Elem)
		if e.Elem == nil {
			elem = "unknown"
		}
		if _, ok := e.Elem.(*ir.UnionExpr); ok {
			return "(" + elem + ")[]"
		}
		return elem + "[]"

	case *ir.NamedExpr:
		if len(e.Args) == 0 {
			return e.Name
		}
		args := make([]string, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, RenderType(a))
		}
		return e.Name + "<" + strings.Join(args, ", ") + ">"

	case *ir.UnionExpr:
		parts := make([]string, 0, len(e.Members))
		for _, m := range e.Members {
			parts = append(parts, RenderType(m))
		}
		return strings.Join(parts, " | ")

	case *ir.LiteralExpr:
		switch v := e.Value.(type) {
		case string:
			return strconv.Quote(v)
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64)
		case bool:
			return strconv.FormatBool(v)
		}
		return "unknown"

	case *ir.ObjectExpr:
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			opt := ""
			if f.Optional {
				opt = "?"
			}
			parts = append(parts, f.Name+opt+": "+RenderType(f.Type))
		}
		return "{ " + strings.Join(parts, "; ") + " }"

	case *ir.FuncExpr:
		return "(...args: unknown[]) => unknown"
	}

	return "unknown"
}
