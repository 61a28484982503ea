package version

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// AnyVersion is the conventional "no constraint" requirement. A range
// expression equal to it (or an empty string) matches every version.
const AnyVersion = "0"

// comparisonOps lists the accepted comparison operators. Two-character
// operators come first so prefix matching never splits them.
var comparisonOps = []string{"==", ">=", "<=", "!=", "=", ">", "<"}

// IsVersion reports whether s is a valid semantic version (X.Y.Z with
// optional pre-release and build metadata).
func IsVersion(s string) bool {
	_, err := semver.StrictNewVersion(strings.TrimSpace(s))
	return err == nil
}

// IsComparison reports whether s is a single range element: a version with
// an optional leading operator, or the literal "0".
func IsComparison(s string) bool {
	s = strings.TrimSpace(s)
	if s == AnyVersion {
		return true
	}
	for _, op := range comparisonOps {
		if rest, ok := strings.CutPrefix(s, op); ok {
			return IsVersion(rest)
		}
	}
	return IsVersion(s)
}

// IsRange reports whether s is a valid range expression: a comma-separated
// list of comparisons.
func IsRange(s string) bool {
	_, err := ParseRange(s)
	return err == nil
}

// Range is a parsed version-range expression. The zero value is the
// unbounded range that every version satisfies.
//
// Range values are immutable; Intersect returns a new Range.
type Range struct {
	elems []string
	c     *semver.Constraints
}

// ParseRange parses a range expression. Empty input and the literal "0"
// yield the unbounded Range. Elements equal to "0" inside a list impose no
// constraint and are dropped.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == AnyVersion {
		return Range{}, nil
	}

	parts := strings.Split(s, ",")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == AnyVersion {
			continue
		}
		if !IsComparison(part) {
			return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, part)
		}
		// The underlying constraint engine spells equality as "=".
		if rest, ok := strings.CutPrefix(part, "=="); ok {
			part = "=" + strings.TrimSpace(rest)
		}
		kept = append(kept, part)
	}
	if len(kept) == 0 {
		return Range{}, nil
	}

	c, err := semver.NewConstraint(strings.Join(kept, ", "))
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, s)
	}
	return Range{elems: kept, c: c}, nil
}

// MustParseRange is ParseRange that panics on malformed input. Intended for
// fixed expressions known at compile time.
func MustParseRange(s string) Range {
	r, err := ParseRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// IsAny reports whether the range imposes no constraint.
func (r Range) IsAny() bool {
	return r.c == nil
}

// String returns the canonical expression for the range. The unbounded
// range stringifies as "0" so it round-trips through document form.
func (r Range) String() string {
	if r.IsAny() {
		return AnyVersion
	}
	return strings.Join(r.elems, ", ")
}

// Intersect combines two ranges conjunctively: the result is satisfied only
// by versions that satisfy both inputs. The combined expression is
// deduplicated and sorted, so intersection is commutative and associative
// at the string level as well as semantically.
func (r Range) Intersect(other Range) Range {
	switch {
	case r.IsAny():
		return other
	case other.IsAny():
		return r
	}

	elems := slices.Clone(r.elems)
	for _, e := range other.elems {
		if !slices.Contains(elems, e) {
			elems = append(elems, e)
		}
	}
	slices.Sort(elems)

	c, err := semver.NewConstraint(strings.Join(elems, ", "))
	if err != nil {
		// Both sides parsed on their own, so the joined expression parses too.
		return r
	}
	return Range{elems: elems, c: c}
}

// Matches reports whether version v satisfies the range. It returns an
// error only when v itself is not a valid version.
func (r Range) Matches(v string) (bool, error) {
	sv, err := semver.StrictNewVersion(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidVersion, v)
	}
	if r.IsAny() {
		return true, nil
	}
	return r.c.Check(sv), nil
}
