package apidef

import (
	"strings"
	"testing"

	"github.com/pmxt-dev/pmxtgen/openapi"
	"github.com/pmxt-dev/pmxtgen/provider"
	"github.com/pmxt-dev/pmxtgen/tsclient"
)

func extractCanonical(t *testing.T) map[string]bool {
	t.Helper()
	members, err := provider.ExtractMembers(DeclarationSource, provider.Options{
		TypeName: TypeName,
		Exclude:  Exclusions,
	})
	if err != nil {
		t.Fatalf("ExtractMembers() error = %v", err)
	}
	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[m.Name] = true
	}
	return set
}

func TestDeclarationExtracts(t *testing.T) {
	members, err := provider.ExtractMembers(DeclarationSource, provider.Options{
		TypeName: TypeName,
		Exclude:  Exclusions,
	})
	if err != nil {
		t.Fatalf("ExtractMembers() error = %v", err)
	}

	if len(members) != 27 {
		var names []string
		for _, m := range members {
			names = append(names, m.Name)
		}
		t.Fatalf("member count = %d, want 27: %s", len(members), strings.Join(names, ", "))
	}

	for _, m := range members {
		if m.Name == "getExecutionPrice" {
			t.Error("excluded member extracted")
		}
		if m.Name == "id" || m.Name == "name" || m.Name == "credentials" || m.Name == "request" {
			t.Errorf("non-operation member %q extracted", m.Name)
		}
	}
}

// Every member outside the skip list must have a client policy; this is the
// same gate the generator runs before writing anything.
func TestPolicyCoverage(t *testing.T) {
	members, err := provider.ExtractMembers(DeclarationSource, provider.Options{
		TypeName: TypeName,
		Exclude:  Exclusions,
	})
	if err != nil {
		t.Fatalf("ExtractMembers() error = %v", err)
	}

	if err := tsclient.CheckCoverage(members, Policies, ClientSkip); err != nil {
		t.Errorf("CheckCoverage() error = %v", err)
	}
}

// The tables must not carry entries for members the declaration no longer
// has; a stale entry hides a rename.
func TestTablesMatchDeclaration(t *testing.T) {
	extracted := extractCanonical(t)

	for name := range Policies {
		if !extracted[name] {
			t.Errorf("policy entry %q has no declaration member", name)
		}
	}
	for name := range ClientSkip {
		if !extracted[name] {
			t.Errorf("skip entry %q has no declaration member", name)
		}
		if _, ok := Policies[name]; ok {
			t.Errorf("member %q is both skipped and mapped", name)
		}
	}
}

func TestNamedSchemasResolve(t *testing.T) {
	components := Components()
	for name, id := range NamedSchemas {
		if components[id] == nil {
			t.Errorf("NamedSchemas[%q] = %q has no component schema", name, id)
		}
	}
}

func TestComponentRefsResolve(t *testing.T) {
	components := Components()

	var walk func(s *openapi.Schema)
	walk = func(s *openapi.Schema) {
		if s == nil {
			return
		}
		if s.Ref != "" {
			id := strings.TrimPrefix(s.Ref, "#/components/schemas/")
			if components[id] == nil {
				t.Errorf("dangling ref %q", s.Ref)
			}
		}
		for _, p := range s.Properties {
			walk(p)
		}
		walk(s.Items)
		for _, v := range s.OneOf {
			walk(v)
		}
		if ap, ok := s.AdditionalProperties.(*openapi.Schema); ok {
			walk(ap)
		}
	}

	for _, s := range components {
		walk(s)
	}
}

func TestCredentialsComponentExists(t *testing.T) {
	// The request body builder keys on this id.
	if Components()["Credentials"] == nil {
		t.Error("Credentials component missing")
	}
}

func TestPolicyConvertersAreWellFormed(t *testing.T) {
	for name, pol := range Policies {
		if pol.Pattern == tsclient.PatternVoid {
			if pol.Converter != "" {
				t.Errorf("policy %q: void pattern must not name a converter", name)
			}
			continue
		}
		if pol.Converter == "" {
			t.Errorf("policy %q: missing converter", name)
		}
		if pol.ReturnType == "" {
			t.Errorf("policy %q: missing return type", name)
		}
	}
}
