// Package money turns human-entered currency strings into float values.
//
// Two normalization policies coexist. Simple assumes Brazilian formatting
// ("R$ 1.234,56"). Ambiguous decides the decimal separator by position, so
// it accepts both "10.000,50" and "10,000.50". Parsing never fails: empty or
// unparseable input yields 0. ParseResult additionally reports whether the
// whole input was understood, for callers that want to be strict.
package money

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type Policy int

const (
	Simple Policy = iota
	Ambiguous
)

const (
	PolicyNameSimple    = "simple"
	PolicyNameAmbiguous = "ambiguous"
)

func (p Policy) String() string {
	switch p {
	case Simple:
		return PolicyNameSimple
	case Ambiguous:
		return PolicyNameAmbiguous
	default:
		return "unknown"
	}
}

// PolicyFromString resolves a configured policy name.
func PolicyFromString(name string) (Policy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyNameSimple:
		return Simple, true
	case PolicyNameAmbiguous:
		return Ambiguous, true
	default:
		return Simple, false
	}
}

// Result carries the best-effort value and whether the input was a clean number.
type Result struct {
	Value float64
	Valid bool
}

var (
	reCurrencySymbol = regexp.MustCompile(`R\$|US\$|\$|€|£`)
	reLeadingNumber  = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)
)

func Parse(raw any, policy Policy) float64 {
	return ParseResult(raw, policy).Value
}

func ParseSimple(raw any) float64 {
	return Parse(raw, Simple)
}

func ParseAmbiguous(raw any) float64 {
	return Parse(raw, Ambiguous)
}

// ParsePercent reads a rate such as "12,5%" using the ambiguous policy.
func ParsePercent(raw any) float64 {
	return PercentResult(raw).Value
}

func PercentResult(raw any) Result {
	if s, ok := raw.(string); ok {
		raw = strings.TrimSuffix(strings.TrimSpace(s), "%")
	}
	return ParseResult(raw, Ambiguous)
}

func ParseResult(raw any, policy Policy) Result {
	switch v := raw.(type) {
	case nil:
		return Result{}
	case float64:
		return Result{Value: v, Valid: true}
	case float32:
		return Result{Value: float64(v), Valid: true}
	case int:
		return Result{Value: float64(v), Valid: true}
	case int32:
		return Result{Value: float64(v), Valid: true}
	case int64:
		return Result{Value: float64(v), Valid: true}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return Result{Value: f, Valid: true}
		}
		return parseString(v.String(), policy)
	case string:
		return parseString(v, policy)
	default:
		return Result{}
	}
}

func parseString(s string, policy Policy) Result {
	s = stripSymbols(s)
	if s == "" {
		return Result{}
	}

	switch policy {
	case Ambiguous:
		s = normalizeAmbiguous(s)
	default:
		s = normalizeSimple(s)
	}

	return parseLeadingFloat(s)
}

func stripSymbols(s string) string {
	s = reCurrencySymbol.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// normalizeSimple drops thousands dots and turns the first comma into the
// decimal point.
func normalizeSimple(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.Replace(s, ",", ".", 1)
}

// normalizeAmbiguous treats whichever separator occurs last as the decimal
// separator and drops every occurrence of the other one.
func normalizeAmbiguous(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma == -1 && lastDot == -1:
		return s
	case lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		return strings.ReplaceAll(s, ",", ".")
	default:
		return strings.ReplaceAll(s, ",", "")
	}
}

func parseLeadingFloat(s string) Result {
	prefix := reLeadingNumber.FindString(s)
	if prefix == "" {
		return Result{}
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return Result{}
	}
	return Result{Value: v, Valid: prefix == s}
}
