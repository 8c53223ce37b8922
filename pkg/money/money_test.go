package money

import (
	"encoding/json"
	"testing"
)

func TestParse_Ambiguous(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "brazilian with symbol", input: "R$ 1.234,56", want: 1234.56},
		{name: "us format", input: "1,234.56", want: 1234.56},
		{name: "brazilian large", input: "10.000,50", want: 10000.50},
		{name: "us large", input: "10,000.50", want: 10000.50},
		{name: "dollar prefix", input: "US$ 2,500.00", want: 2500},
		{name: "integer string", input: "1500", want: 1500},
		{name: "comma decimal only", input: "0,75", want: 0.75},
		{name: "non-breaking space", input: "R$\u00a01.234,56", want: 1234.56},
		{name: "negative", input: "-1.000,00", want: -1000},
		{name: "float input", input: 42.5, want: 42.5},
		{name: "int input", input: 7, want: 7},
		{name: "json number", input: json.Number("1.5"), want: 1.5},
		{name: "empty", input: "", want: 0},
		{name: "nil", input: nil, want: 0},
		{name: "letters", input: "abc", want: 0},
		{name: "symbol only", input: "R$", want: 0},
		{name: "bool", input: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmbiguous(tt.input)
			if got != tt.want {
				t.Errorf("ParseAmbiguous(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Simple(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "brazilian with symbol", input: "R$ 1.234,56", want: 1234.56},
		{name: "thousands only", input: "R$ 50.000", want: 50000},
		{name: "decimal comma", input: "99,90", want: 99.90},
		{name: "negative", input: "-R$ 10,00", want: -10},
		{name: "empty", input: "", want: 0},
		{name: "nil", input: nil, want: 0},
		{name: "letters", input: "abc", want: 0},
		{name: "json number keeps decimal point", input: json.Number("1234.5"), want: 1234.5},
		{name: "json integer", input: json.Number("50000"), want: 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSimple(tt.input)
			if got != tt.want {
				t.Errorf("ParseSimple(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_PolicyDisagreement(t *testing.T) {
	// The simple policy assumes dots are thousands separators, so US input
	// is misread. Callers that cannot guarantee Brazilian input use Ambiguous.
	if got := ParseSimple("1,234.56"); got != 1.23456 {
		t.Errorf("ParseSimple(US input) = %v, want 1.23456", got)
	}
	if got := ParseAmbiguous("1,234.56"); got != 1234.56 {
		t.Errorf("ParseAmbiguous(US input) = %v, want 1234.56", got)
	}
}

func TestParse_RepeatedSeparatorEdgeCase(t *testing.T) {
	// With no decimal part, a repeated comma is taken as the decimal
	// separator and only the leading number survives.
	result := ParseResult("1,234,567", Ambiguous)
	if result.Value != 1.234 {
		t.Errorf("Value = %v, want 1.234", result.Value)
	}
	if result.Valid {
		t.Error("expected Valid = false for a partially parsed value")
	}
}

func TestParseResult_Validity(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantValue float64
		wantValid bool
	}{
		{name: "clean number", input: "R$ 1.234,56", wantValue: 1234.56, wantValid: true},
		{name: "trailing text", input: "12abc", wantValue: 12, wantValid: false},
		{name: "empty", input: "", wantValue: 0, wantValid: false},
		{name: "unparseable", input: "abc", wantValue: 0, wantValid: false},
		{name: "numeric", input: 3.5, wantValue: 3.5, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResult(tt.input, Ambiguous)
			if got.Value != tt.wantValue || got.Valid != tt.wantValid {
				t.Errorf("ParseResult(%v) = %+v, want {%v %v}", tt.input, got, tt.wantValue, tt.wantValid)
			}
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		input any
		want  float64
	}{
		{"12,5%", 12.5},
		{"18%", 18},
		{" 7.25 % ", 7.25},
		{"", 0},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := ParsePercent(tt.input); got != tt.want {
			t.Errorf("ParsePercent(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPolicyFromString(t *testing.T) {
	if p, ok := PolicyFromString("Ambiguous"); !ok || p != Ambiguous {
		t.Errorf("PolicyFromString(Ambiguous) = %v, %v", p, ok)
	}
	if p, ok := PolicyFromString(" simple "); !ok || p != Simple {
		t.Errorf("PolicyFromString(simple) = %v, %v", p, ok)
	}
	if _, ok := PolicyFromString("us"); ok {
		t.Error("PolicyFromString accepted an unknown policy")
	}
	if Ambiguous.String() != "ambiguous" || Simple.String() != "simple" {
		t.Error("unexpected policy names")
	}
}
