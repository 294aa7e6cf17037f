package openapi

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// EncodeJSON renders the document as indented JSON with a trailing newline.
// Map keys are emitted sorted, so unchanged input reproduces the artifact
// byte for byte.
func EncodeJSON(doc *Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return append(out, '\n'), nil
}

// EncodeYAML renders the document as YAML. The document is round-tripped
// through its JSON form so the YAML tree carries the same field names and
// the same sorted key order as the JSON artifact.
func EncodeYAML(doc *Document) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to rebuild document tree: %w", err)
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document as YAML: %w", err)
	}
	return out, nil
}
