// Package filter implements the option matching engine used by the selector
// widget's combobox mode. Matching is pure: equal inputs always produce
// equal outputs, and no function here touches widget state.
package filter

import (
	"errors"
	"fmt"
	"strings"
)

// Method selects how a pattern is matched against option labels.
// The string values are the tokens accepted from hosts (for example via a
// --filter flag or a config file), so they are part of the public surface.
type Method string

const (
	// Contains matches labels containing the pattern as a substring.
	Contains Method = "contains"
	// Fuzzy matches labels containing every pattern character in order,
	// not necessarily contiguously. This is the default method.
	Fuzzy Method = "fuzzy"
	// StartsWith matches labels beginning with the pattern.
	StartsWith Method = "startsWith"
	// StartsWithPerTerm splits the pattern into whitespace-delimited terms
	// and matches labels where every term is a prefix of some word.
	StartsWithPerTerm Method = "startsWithPerTerm"
)

// ErrUnknownMethod reports a method token outside the supported set.
var ErrUnknownMethod = errors.New("unknown filter method")

// All matching is case-insensitive against the label. This is the one
// documented policy; no method deviates from it.

// Default returns the method used when none is configured and the fallback
// for invalid method tokens.
func Default() Method {
	return Fuzzy
}

// Methods returns the supported method tokens in stable order.
func Methods() []Method {
	return []Method{Contains, Fuzzy, StartsWith, StartsWithPerTerm}
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case Contains, Fuzzy, StartsWith, StartsWithPerTerm:
		return true
	}
	return false
}

// Parse maps a method token to its Method. Unknown tokens yield the default
// method together with an error wrapping ErrUnknownMethod; callers are
// expected to log the error and continue with the returned method rather
// than fail, so a bad config value never breaks the widget.
func Parse(s string) (Method, error) {
	m := Method(s)
	if m.Valid() {
		return m, nil
	}
	return Default(), fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Match reports whether label matches pattern under method m. An empty
// pattern matches everything. Invalid methods behave like the default.
func Match(m Method, label, pattern string) bool {
	if pattern == "" {
		return true
	}

	label = strings.ToLower(label)
	pattern = strings.ToLower(pattern)

	switch m {
	case Contains:
		return strings.Contains(label, pattern)
	case StartsWith:
		return strings.HasPrefix(label, pattern)
	case StartsWithPerTerm:
		return matchPerTerm(label, pattern)
	default:
		return matchFuzzy(label, pattern)
	}
}

// Positions returns the positions of the labels matching pattern under
// method m, in input order. With an empty pattern every position is
// returned, so filtering is the identity.
func Positions(m Method, labels []string, pattern string) []int {
	positions := make([]int, 0, len(labels))
	for i, label := range labels {
		if Match(m, label, pattern) {
			positions = append(positions, i)
		}
	}
	return positions
}

// matchFuzzy reports whether every rune of pattern appears in label in
// order. Both inputs are already lowercased.
func matchFuzzy(label, pattern string) bool {
	next := []rune(label)
	for _, pr := range pattern {
		found := false
		for len(next) > 0 {
			lr := next[0]
			next = next[1:]
			if lr == pr {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// matchPerTerm reports whether every whitespace-delimited term of pattern
// is a prefix of some whitespace-delimited word of label. Terms may match
// words in any order. Both inputs are already lowercased.
func matchPerTerm(label, pattern string) bool {
	words := strings.Fields(label)
	for _, term := range strings.Fields(pattern) {
		matched := false
		for _, word := range words {
			if strings.HasPrefix(word, term) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
