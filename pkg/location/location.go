// Package location splits free-text addresses into a city and a two-letter
// state code.
//
// The state code is heuristic. No list of valid states is consulted, so a
// trailing segment that is not a state abbreviation still yields a code.
// Two strategies exist because property and investor forms capture
// addresses differently.
package location

import (
	"regexp"
	"strings"
)

type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
	// Parsed is false when no state could be derived and City holds the
	// original text.
	Parsed bool `json:"-"`
}

type Decomposer interface {
	Decompose(address string) Location
}

// DecomposerFunc adapts a plain function to Decomposer.
type DecomposerFunc func(address string) Location

func (f DecomposerFunc) Decompose(address string) Location {
	return f(address)
}

var (
	Generic  Decomposer = DecomposerFunc(decomposeGeneric)
	Investor Decomposer = DecomposerFunc(decomposeInvestor)
)

const (
	StrategyGeneric  = "generic"
	StrategyInvestor = "investor"
)

// ByName resolves a configured strategy name.
func ByName(name string) (Decomposer, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyGeneric:
		return Generic, true
	case StrategyInvestor:
		return Investor, true
	default:
		return nil, false
	}
}

// Parse decomposes address with the generic strategy.
func Parse(address string) Location {
	return Generic.Decompose(address)
}

var (
	reDelimiter = regexp.MustCompile(`[,\-/]`)
	// A two-letter token after the last delimiter, e.g. "Uberlandia - MG".
	reTrailingState = regexp.MustCompile(`^(.*)[,\-/]\s*([A-Za-z]{2})\s*$`)
)

// decomposeGeneric takes the first segment as city and the first two
// characters of the last segment as state.
func decomposeGeneric(address string) Location {
	parts := reDelimiter.Split(address, -1)
	if len(parts) < 2 {
		return Location{City: address}
	}

	last := []rune(strings.TrimSpace(parts[len(parts)-1]))
	if len(last) > 2 {
		last = last[:2]
	}

	return Location{
		City:   strings.TrimSpace(parts[0]),
		State:  strings.ToUpper(string(last)),
		Parsed: true,
	}
}

// decomposeInvestor only accepts a state that is exactly two characters.
// The city is the segment right before the state.
func decomposeInvestor(address string) Location {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return Location{}
	}

	if m := reTrailingState.FindStringSubmatch(trimmed); m != nil {
		return Location{
			City:   lastSegment(m[1]),
			State:  strings.ToUpper(m[2]),
			Parsed: true,
		}
	}

	parts := reDelimiter.Split(trimmed, -1)
	if len(parts) >= 2 {
		state := strings.TrimSpace(parts[len(parts)-1])
		if len([]rune(state)) == 2 {
			return Location{
				City:   lastSegment(strings.Join(parts[:len(parts)-1], ",")),
				State:  strings.ToUpper(state),
				Parsed: true,
			}
		}
	}

	return Location{City: trimmed}
}

func lastSegment(s string) string {
	parts := reDelimiter.Split(s, -1)
	for i := len(parts) - 1; i >= 0; i-- {
		if seg := strings.TrimSpace(parts[i]); seg != "" {
			return seg
		}
	}
	return strings.TrimSpace(s)
}
