package openapi

import (
	"github.com/goccy/go-json"

	"github.com/pmxt-dev/pmxtgen/ir"
)

// DocumentConfig carries the caller-supplied static configuration: document
// metadata, the named-schema table, the hand-written component schemas, and
// the fixed health-check entry. None of it is derived from the declaration.
type DocumentConfig struct {
	Title       string
	Description string
	Version     string

	// NamedSchemas maps declaration type names to component schema ids.
	NamedSchemas map[string]string

	// Components contains the hand-written component schemas, keyed by id.
	Components map[string]*Schema

	// HealthPath and Health are the static health-check entry.
	HealthPath string
	Health     *PathItem
}

// BuildDocument assembles the complete schema document: one POST operation
// per member plus the static health-check entry and component table.
func BuildDocument(members []ir.Member, cfg DocumentConfig) *Document {
	doc := &Document{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       cfg.Title,
			Description: cfg.Description,
			Version:     cfg.Version,
		},
		Paths: make(map[string]*PathItem, len(members)+1),
	}

	for _, m := range members {
		doc.Paths["/api/{exchange}/"+m.Name] = &PathItem{Post: buildOperation(m, cfg)}
	}

	if cfg.HealthPath != "" && cfg.Health != nil {
		doc.Paths[cfg.HealthPath] = cfg.Health
	}

	if len(cfg.Components) > 0 {
		doc.Components = &Components{Schemas: cfg.Components}
	}

	return doc
}

func buildOperation(m ir.Member, cfg DocumentConfig) *Operation {
	body := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"args": ArgsSchema(m.Params, cfg.NamedSchemas),
		},
		Required: []string{"args"},
	}
	if _, ok := cfg.Components["Credentials"]; ok {
		body.Properties["credentials"] = &Schema{Ref: "#/components/schemas/Credentials"}
	}

	return &Operation{
		Summary:     m.Title,
		OperationID: m.Name,
		Description: m.Doc,
		Parameters: []Parameter{{
			Name:        "exchange",
			In:          "path",
			Description: "Exchange id (e.g. polymarket, kalshi)",
			Required:    true,
			Schema:      &Schema{Type: "string"},
		}},
		RequestBody: &RequestBody{
			Required: true,
			Content:  map[string]*MediaType{"application/json": {Schema: body}},
		},
		Responses: map[string]*Response{
			"200": {
				Description: "Successful response",
				Content:     map[string]*MediaType{"application/json": {Schema: ResponseSchema(m.Return, cfg.NamedSchemas)}},
			},
		},
	}
}

// ArgsSchema builds the request args schema from the parameter list.
//
// Arguments travel as a positional array, so the schema constrains length,
// not position: zero parameters pin the array empty, one parameter types
// the single slot, and for several parameters the item schema is the
// disjunction of the distinct parameter types with minItems/maxItems
// carrying the required/total counts. Equal translations collapse to one
// variant; a strict validator rejects an item matching two oneOf branches,
// so (outcomeId: string, since?: number, limit?: number) must yield
// [string, number], not [string, number, number].
func ArgsSchema(params []ir.Parameter, table map[string]string) *Schema {
	required := 0
	for _, p := range params {
		if p.Required() {
			required++
		}
	}

	switch len(params) {
	case 0:
		return &Schema{MaxItems: intPtr(0)}

	case 1:
		items := Translate(params[0].Type, table)
		if items == nil {
			items = &Schema{}
		}
		s := &Schema{Type: "array", Items: items, MaxItems: intPtr(1)}
		if required == 1 {
			s.MinItems = intPtr(1)
		}
		return s

	default:
		var variants []*Schema
		seen := make(map[string]bool, len(params))
		for _, p := range params {
			s := Translate(p.Type, table)
			if s == nil {
				continue
			}
			key, err := json.Marshal(s)
			if err != nil || seen[string(key)] {
				continue
			}
			seen[string(key)] = true
			variants = append(variants, s)
		}
		items := &Schema{OneOf: variants}
		if len(variants) == 1 {
			items = variants[0]
		}
		return &Schema{
			Type:     "array",
			Items:    items,
			MinItems: intPtr(required),
			MaxItems: intPtr(len(params)),
		}
	}
}

// ResponseSchema wraps the translated return type in the base response
// envelope. A void return yields the bare envelope with no data property.
func ResponseSchema(ret ir.TypeExpr, table map[string]string) *Schema {
	envelope := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"success": {Type: "boolean"},
			"error":   {Type: "string"},
		},
		Required: []string{"success"},
	}
	if data := Translate(ret, table); data != nil {
		envelope.Properties["data"] = data
	}
	return envelope
}
