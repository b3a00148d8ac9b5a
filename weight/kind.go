package weight

import (
	"fmt"
	"strings"
)

// Kind names one of the six supported weight representations, as selected
// by the CLI's -t flag.
type Kind string

// Supported weight kinds.
const (
	KindF32 Kind = "f32"
	KindF64 Kind = "f64"
	KindI8  Kind = "i8"
	KindI16 Kind = "i16"
	KindI32 Kind = "i32"
	KindI64 Kind = "i64"
)

// errUnknownKind is returned (wrapped) by ParseKind when no supported
// kind's name contains the given token as a substring.
var errUnknownKind = fmt.Errorf("weight: unrecognized weight type")

// ParseKind resolves a user-supplied -t value against the six supported
// kinds. Matching is prefix/substring tolerant: the lowercased input must
// appear as a substring of a kind's canonical name, or be an exact match.
// Ties (e.g. "f", a substring of both f32 and f64) resolve to the first
// match in declaration order below. An empty string matches no kind and is
// reported as an error.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	all := []Kind{KindF32, KindF64, KindI8, KindI16, KindI32, KindI64}
	// Exact match wins outright.
	for _, k := range all {
		if string(k) == s {
			return k, nil
		}
	}
	// Otherwise accept the first kind whose name contains s as a substring.
	for _, k := range all {
		if s != "" && strings.Contains(string(k), s) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%s %q: %w", "weight.ParseKind", s, errUnknownKind)
}
