package metaspec

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// DefaultSpecVersion is assumed when a document carries no
// meta-spec.version field.
const DefaultSpecVersion = "1.0.0"

// Validator accumulates validation errors for a single document. It is a
// one-shot object: create it, ask IsValid or Errors, discard it. It must
// not be shared across goroutines.
type Validator struct {
	data        any
	specVersion string

	ran  bool
	path []string
	errs []string
}

// New creates a validator for doc, selecting the schema version from the
// document's meta-spec.version field and falling back to
// DefaultSpecVersion when it is absent.
func New(doc any) *Validator {
	return NewVersion(doc, specVersionOf(doc))
}

// NewVersion creates a validator that checks doc against an explicit
// schema version, ignoring whatever the document declares.
func NewVersion(doc any, specVersion string) *Validator {
	return &Validator{data: doc, specVersion: specVersion}
}

// Validate checks doc against the rule tree for specVersion and returns
// whether it passed along with the ordered error messages.
func Validate(doc any, specVersion string) (bool, []string) {
	v := NewVersion(doc, specVersion)
	return v.IsValid(), v.Errors()
}

// IsValid runs the validation walk (once) and reports whether the document
// conforms to the selected schema version.
func (v *Validator) IsValid() bool {
	v.run()
	return len(v.errs) == 0
}

// Errors returns the accumulated messages in the order they were detected.
// Repeated calls return equal slices.
func (v *Validator) Errors() []string {
	v.run()
	return slices.Clone(v.errs)
}

// SpecVersion returns the schema version the validator checks against.
func (v *Validator) SpecVersion() string {
	return v.specVersion
}

// KnownSpecVersions lists the schema versions this package can validate,
// sorted ascending.
func KnownSpecVersions() []string {
	return slices.Sorted(maps.Keys(knownSpecs))
}

func specVersionOf(doc any) string {
	if m, ok := doc.(map[string]any); ok {
		if ms, ok := m["meta-spec"].(map[string]any); ok {
			if s, ok := stringify(ms["version"]); ok && s != "" {
				return s
			}
		}
	}
	return DefaultSpecVersion
}

func (v *Validator) run() {
	if v.ran {
		return
	}
	v.ran = true

	spec, ok := knownSpecs[v.specVersion]
	if !ok {
		v.errorf("Unknown META specification")
		return
	}
	v.checkMap(spec, v.data)
}

// errorf records a message stamped with the current path and the schema
// version, matching the wire format callers pattern-match against.
func (v *Validator) errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	v.errs = append(v.errs, fmt.Sprintf("%s (%s) [Validation: %s]",
		msg, strings.Join(v.path, " -> "), v.specVersion))
}

func (v *Validator) specError() {
	v.errorf("Specification error: rule defines none of value, map, list, or lazylist")
}

func (v *Validator) pushPath(seg string) {
	v.path = append(v.path, seg)
}

func (v *Validator) popPath() {
	v.path = v.path[:len(v.path)-1]
}

// dispatch routes data to the checker matching the rule's kind. key is the
// map key or the literal "list" for list elements; leaf predicates use it
// in their messages.
func (v *Validator) dispatch(rule *node, key string, data any) {
	switch rule.Kind {
	case kindValue:
		if rule.Value == nil {
			v.specError()
			return
		}
		rule.Value(v, key, data)
	case kindMap:
		if rule.Entries == nil && rule.Wildcard == nil {
			v.specError()
			return
		}
		v.checkMap(rule, data)
	case kindList:
		if rule.Elem == nil {
			v.specError()
			return
		}
		v.checkList(rule, data)
	case kindLazyList:
		if rule.Elem == nil {
			v.specError()
			return
		}
		v.checkLazyList(rule, data)
	default:
		v.specError()
	}
}

// checkMap validates data against a map-shaped rule: mandatory keys must
// be present and non-null, explicitly listed keys dispatch to their own
// rules, unlisted keys fall through to the wildcard (which validates the
// key name first), and anything else is an unknown key.
//
// Keys are visited in sorted order so repeated runs yield identical error
// sequences.
func (v *Validator) checkMap(rule *node, data any) {
	m, ok := data.(map[string]any)
	if !ok {
		v.errorf("Expected a map structure")
		return
	}

	for _, key := range slices.Sorted(maps.Keys(rule.Entries)) {
		if !rule.Entries[key].Mandatory {
			continue
		}
		if val, present := m[key]; present && val != nil {
			continue
		}
		v.pushPath(key)
		v.errorf("Missing mandatory field, '%s'", key)
		v.popPath()
	}

	for _, key := range slices.Sorted(maps.Keys(m)) {
		v.pushPath(key)
		switch {
		case rule.Entries[key] != nil:
			v.dispatch(rule.Entries[key], key, m[key])
		case rule.Wildcard != nil:
			if rule.Wildcard.Name == nil || rule.Wildcard.Rule == nil {
				v.specError()
				break
			}
			rule.Wildcard.Name(v, key, key)
			v.dispatch(rule.Wildcard.Rule, key, m[key])
		default:
			v.errorf("Unknown key, '%s', found in map structure", key)
		}
		v.popPath()
	}
}

// checkList validates data against a list-shaped rule. Every element is
// checked against the element rule; an element rule that is itself a
// wildcard map treats each element as a map checked against it.
func (v *Validator) checkList(rule *node, data any) {
	listData, ok := data.([]any)
	if !ok {
		v.errorf("Expected a list structure")
		return
	}

	if rule.Mandatory && len(listData) == 0 {
		v.errorf("Missing entries from mandatory list")
	}

	for _, item := range listData {
		v.pushPath(pathSegment(item))
		if rule.Elem == nil {
			v.specError()
		} else {
			v.dispatch(rule.Elem, "list", item)
		}
		v.popPath()
	}
}

// checkLazyList accepts the single-value shorthand: a bare scalar is
// coerced to a one-element list before the list check. Null and containers
// pass through untouched, so a null still fails as "not a list"; the
// leniency is for shorthand values, not for absence.
func (v *Validator) checkLazyList(rule *node, data any) {
	switch data.(type) {
	case nil, map[string]any, []any:
	default:
		data = []any{data}
	}
	v.checkList(rule, data)
}

// pathSegment renders a list element for the error path. Nulls get a
// sentinel; everything else uses its natural string form.
func pathSegment(value any) string {
	if value == nil {
		return "<undef>"
	}
	if s, ok := stringify(value); ok {
		return s
	}
	return fmt.Sprint(value)
}

// stringify renders scalar document values as strings. Containers and
// nulls do not stringify.
func stringify(value any) (string, bool) {
	switch val := value.(type) {
	case string:
		return val, true
	case bool:
		if val {
			return "true", true
		}
		return "false", true
	case int:
		return fmt.Sprintf("%d", val), true
	case int64:
		return fmt.Sprintf("%d", val), true
	case uint64:
		return fmt.Sprintf("%d", val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return "", false
	}
}
