package metaspec

import (
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/pgxkit/distmeta/pkg/version"
)

// Leaf predicates for the 1.0.0 schema. Each one reports its own failure
// through the validator's error sink; the messages are part of the
// package's compatibility surface and must not be reworded casually.

var (
	// phases and relations mirror the prerequisite grammar; the same lists
	// live in pkg/prereqs, which owns the model-side enforcement.
	phaseNames    = []string{"configure", "build", "test", "runtime", "develop"}
	relationNames = []string{"requires", "recommends", "suggests"}

	moduleRe = regexp.MustCompile(`^[A-Za-z0-9_]+(::[A-Za-z0-9_]+)*$`)
)

// hasCustomPrefix reports whether a key opts into the user-extension
// namespace: an "x_" or "X_" prefix.
func hasCustomPrefix(s string) bool {
	return len(s) >= 2 && (s[0] == 'x' || s[0] == 'X') && s[1] == '_'
}

// display renders a value for an error message, standing in "<undef>" for
// anything that has no string form.
func display(value any) string {
	if s, ok := stringify(value); ok {
		return s
	}
	return "<undef>"
}

// stringVal requires a non-null scalar with a non-empty string form. The
// literal "0" is a legal string even though it reads as false-y in the
// source document formats.
func stringVal(v *Validator, key string, value any) bool {
	if s, ok := stringify(value); ok && s != "" {
		return true
	}
	v.errorf("value is an undefined string")
	return false
}

// file only checks presence for now; resolving paths against the
// distribution archive is the consumer's job.
func file(v *Validator, key string, value any) bool {
	if value != nil {
		return true
	}
	v.errorf("No file defined for '%s'", key)
	return false
}

// urlVal requires a hierarchical URL: a scheme and a non-empty authority.
// Scheme-only forms such as mailto: are rejected on purpose; the resources
// schema routes those through dedicated keys.
func urlVal(v *Validator, key string, value any) bool {
	s, ok := stringify(value)
	if !ok || s == "" {
		v.errorf("'%s' for '%s' is not a valid URL", display(value), key)
		return false
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		v.errorf("'%s' for '%s' does not have a URL scheme", s, key)
		return false
	}
	if u.Host == "" {
		v.errorf("'%s' for '%s' does not have a URL authority", s, key)
		return false
	}
	return true
}

// versionVal requires a single valid semantic version.
func versionVal(v *Validator, key string, value any) bool {
	if s, ok := stringify(value); ok && version.IsVersion(s) {
		return true
	}
	v.errorf("'%s' for '%s' is not a valid version", display(value), key)
	return false
}

// exversion accepts a version-range expression: a comma-separated list
// whose elements are the literal "0" or a version comparison. Every bad
// element produces its own message.
func exversion(v *Validator, key string, value any) bool {
	s, ok := stringify(value)
	if !ok {
		v.errorf("'<undef>' for '%s' is not a valid version", key)
		return false
	}

	pass := true
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == version.AnyVersion || version.IsComparison(part) {
			continue
		}
		v.errorf("'%s' for '%s' is not a valid version", part, key)
		pass = false
	}
	return pass
}

// boolean accepts exactly "0", "1", "true", or "false".
func boolean(v *Validator, key string, value any) bool {
	if s, ok := stringify(value); ok {
		switch s {
		case "0", "1", "true", "false":
			return true
		}
	}
	v.errorf("'%s' for '%s' is not a boolean value", display(value), key)
	return false
}

// license checks membership in the fixed allow-list.
func license(v *Validator, key string, value any) bool {
	if s, ok := stringify(value); ok {
		if _, known := licenses[s]; known {
			return true
		}
	}
	v.errorf("License '%s' is invalid", display(value))
	return false
}

// releaseStatus enforces the one cross-field rule in the schema: a version
// carrying an underscore marks a trial release, which cannot be stable.
func releaseStatus(v *Validator, key string, value any) bool {
	s, ok := stringify(value)
	if !ok {
		v.errorf("'%s' is not defined", key)
		return false
	}

	docVersion := v.topVersion()
	if strings.Contains(docVersion, "_") {
		if s == "testing" || s == "unstable" {
			return true
		}
		v.errorf("'%s' for '%s' is invalid for version '%s'", s, key, docVersion)
		return false
	}

	switch s {
	case "stable", "testing", "unstable":
		return true
	}
	v.errorf("'%s' for '%s' is invalid for version '%s'", s, key, docVersion)
	return false
}

// topVersion fetches the document's top-level version field for the
// release-status cross-check.
func (v *Validator) topVersion() string {
	if m, ok := v.data.(map[string]any); ok {
		if s, ok := stringify(m["version"]); ok {
			return s
		}
	}
	return ""
}

// module validates identifier segments separated by "::".
func module(v *Validator, key string, value any) bool {
	if s, ok := stringify(value); ok && moduleRe.MatchString(s) {
		return true
	}
	v.errorf("'%s' is not a valid module name", display(value))
	return false
}

// phase validates prereqs map keys naming a lifecycle phase.
func phase(v *Validator, key string, value any) bool {
	s, ok := stringify(value)
	if !ok {
		s = key
	}
	if slices.Contains(phaseNames, s) || hasCustomPrefix(s) {
		return true
	}
	v.errorf("Key '%s' is not a legal phase", s)
	return false
}

// relation validates prereqs map keys naming a relationship strength.
func relation(v *Validator, key string, value any) bool {
	s, ok := stringify(value)
	if !ok {
		s = key
	}
	if slices.Contains(relationNames, s) || hasCustomPrefix(s) {
		return true
	}
	v.errorf("Key '%s' is not a legal prereq relationship", s)
	return false
}

// customKey restricts extension keys to the x_/X_ namespace.
func customKey(v *Validator, key string, value any) bool {
	if s, ok := stringify(value); ok && hasCustomPrefix(s) {
		return true
	}
	v.errorf("Custom key '%s' must begin with 'x_' or 'X_'", display(value))
	return false
}

// anything always passes; it guards values that are genuinely
// user-defined.
func anything(*Validator, string, any) bool {
	return true
}
