// Package tsclient renders the typed TypeScript client wrappers for the
// canonical members. Output is a standalone generated file composed by the
// hand-written client; nothing is rewritten in place.
package tsclient

import (
	"fmt"

	"github.com/pmxt-dev/pmxtgen/ir"
)

// Pattern selects how a wrapper converts the raw response payload.
type Pattern string

const (
	// PatternVoid discards the payload.
	PatternVoid Pattern = "void"

	// PatternSingle applies the converter to the whole payload.
	PatternSingle Pattern = "single"

	// PatternArray applies the converter to each element.
	PatternArray Pattern = "array"

	// PatternRecord converts each value of the payload object, keeping keys.
	PatternRecord Pattern = "record"

	// PatternPaginated converts the data page and passes total/nextCursor
	// through.
	PatternPaginated Pattern = "paginated"
)

// Policy is the hand-maintained response-handling entry for one member.
type Policy struct {
	// ReturnType is the wrapper's return type label, without the Promise
	// wrapper (e.g. "UnifiedMarket[]"). Ignored for PatternVoid.
	ReturnType string

	// Pattern selects the payload conversion shape.
	Pattern Pattern

	// Converter names the conversion routine applied to the payload.
	// Empty for PatternVoid.
	Converter string
}

// CheckCoverage verifies that every member outside the skip-list has a
// policy entry. An unmapped member is a hard failure: rendering it with a
// guessed pattern would silently produce wrong runtime behavior, so the
// whole run aborts before any file is written.
func CheckCoverage(members []ir.Member, policies map[string]Policy, skip map[string]bool) error {
	for _, m := range members {
		if skip[m.Name] {
			continue
		}
		if _, ok := policies[m.Name]; !ok {
			return fmt.Errorf("no client policy for member %q: add a policy entry or put it on the skip list", m.Name)
		}
	}
	return nil
}
