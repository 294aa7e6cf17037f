package ir

import "testing"

func TestParameterRequired(t *testing.T) {
	tests := []struct {
		name  string
		param Parameter
		want  bool
	}{
		{name: "plain", param: Parameter{Name: "outcomeId", Type: String()}, want: true},
		{name: "optional", param: Parameter{Name: "limit", Type: Number(), Optional: true}, want: false},
		{name: "defaulted", param: Parameter{Name: "reload", Type: Boolean(), Default: "false"}, want: false},
		{name: "optional and defaulted", param: Parameter{Name: "sort", Type: String(), Optional: true, Default: `"volume"`}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.param.Required(); got != tt.want {
				t.Errorf("Required() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExprKinds(t *testing.T) {
	tests := []struct {
		expr TypeExpr
		want ExprKind
	}{
		{String(), KindPrimitive},
		{ArrayOf(Number()), KindArray},
		{Named("UnifiedMarket"), KindNamed},
		{Union(StringLit("buy"), StringLit("sell")), KindUnion},
		{BoolLit(true), KindLiteral},
		{Object(Field{Name: "limit", Type: Number(), Optional: true}), KindObject},
		{Func(), KindFunc},
	}

	for _, tt := range tests {
		if got := tt.expr.Kind(); got != tt.want {
			t.Errorf("Kind() = %v, want %v", got, tt.want)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if got := KindUnion.String(); got != "Union" {
		t.Errorf("KindUnion.String() = %q, want %q", got, "Union")
	}
	if got := PrimUndefined.String(); got != "undefined" {
		t.Errorf("PrimUndefined.String() = %q, want %q", got, "undefined")
	}
	if got := ExprKind(99).String(); got != "Unknown" {
		t.Errorf("ExprKind(99).String() = %q, want %q", got, "Unknown")
	}
}
