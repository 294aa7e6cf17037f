// Package openapi builds the machine-readable API schema document from
// extracted members. The node shapes follow OpenAPI 3.0; map-valued fields
// rely on the JSON codec's sorted key output for byte-identical reruns.
package openapi

// Schema is one node of the generated schema tree.
type Schema struct {
	Ref         string             `json:"$ref,omitempty"`
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	OneOf       []*Schema          `json:"oneOf,omitempty"`

	// AdditionalProperties holds either a *Schema constraining map values
	// or the literal true for a fully open object.
	AdditionalProperties any `json:"additionalProperties,omitempty"`

	// MinItems and MaxItems are pointers so an explicit zero serializes.
	MinItems *int `json:"minItems,omitempty"`
	MaxItems *int `json:"maxItems,omitempty"`
}

// Document is the complete schema document.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       Info                 `json:"info"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// Info is the document's info block.
type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// PathItem holds the operations available on one path.
type PathItem struct {
	Get  *Operation `json:"get,omitempty"`
	Post *Operation `json:"post,omitempty"`
}

// Operation describes a single API operation.
type Operation struct {
	Summary     string               `json:"summary"`
	OperationID string               `json:"operationId"`
	Description string               `json:"description,omitempty"`
	Parameters  []Parameter          `json:"parameters,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses"`
}

// Parameter describes a path or query parameter.
type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Description string  `json:"description,omitempty"`
	Required    bool    `json:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty"`
}

// RequestBody describes an operation's request body.
type RequestBody struct {
	Required bool                  `json:"required,omitempty"`
	Content  map[string]*MediaType `json:"content"`
}

// MediaType wraps the schema for one content type.
type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Response describes one response status.
type Response struct {
	Description string                `json:"description"`
	Content     map[string]*MediaType `json:"content,omitempty"`
}

// Components holds the reusable component schemas.
type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty"`
}

func intPtr(v int) *int { return &v }
