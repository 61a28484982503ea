package distmeta

import (
	"strings"

	"github.com/pgxkit/distmeta/pkg/metaspec"
	"github.com/pgxkit/distmeta/pkg/prereqs"
)

// Meta is a validated distribution metadata document. It is a read-only
// view: accessors return copies or derived values, never aliases into
// mutable internals (the one exception is the raw values returned by
// Custom, which callers must treat as read-only).
type Meta struct {
	data map[string]any
	pre  *prereqs.Prereqs
}

// Extension describes one entry of the provides map.
type Extension struct {
	File     string
	Version  string
	Abstract string
	Docfile  string
}

// New validates data against its declared schema version and wraps it. A
// failed validation returns a *ValidationError carrying every problem the
// walk found.
func New(data map[string]any) (*Meta, error) {
	v := metaspec.New(data)
	if !v.IsValid() {
		return nil, &ValidationError{SpecVersion: v.SpecVersion(), Errors: v.Errors()}
	}

	pre, err := parsePrereqs(data)
	if err != nil {
		return nil, err
	}
	return &Meta{data: data, pre: pre}, nil
}

// NewUnchecked wraps data without validating it. Intended for documents
// that already passed validation elsewhere; a malformed prereqs subtree
// degrades to an empty prerequisites model instead of failing.
func NewUnchecked(data map[string]any) *Meta {
	pre, err := parsePrereqs(data)
	if err != nil {
		pre = prereqs.NewEmpty()
	}
	return &Meta{data: data, pre: pre}
}

func parsePrereqs(data map[string]any) (*prereqs.Prereqs, error) {
	sub, ok := data["prereqs"].(map[string]any)
	if !ok {
		return prereqs.NewEmpty(), nil
	}
	return prereqs.New(sub)
}

// Name returns the distribution name.
func (m *Meta) Name() string { return m.getString("name") }

// Version returns the distribution version.
func (m *Meta) Version() string { return m.getString("version") }

// Abstract returns the one-line description.
func (m *Meta) Abstract() string { return m.getString("abstract") }

// Description returns the long description, if any.
func (m *Meta) Description() string { return m.getString("description") }

// ReleaseStatus returns stable, testing, or unstable.
func (m *Meta) ReleaseStatus() string { return m.getString("release_status") }

// GeneratedBy names the tool (or person) that produced the document.
func (m *Meta) GeneratedBy() string { return m.getString("generated_by") }

// Maintainers returns the maintainer list, normalizing the single-value
// shorthand to a one-element slice.
func (m *Meta) Maintainers() []string { return m.getStringList("maintainer") }

// Licenses returns the license identifiers, normalizing the single-value
// shorthand to a one-element slice.
func (m *Meta) Licenses() []string { return m.getStringList("license") }

// Tags returns the distribution tags, if any.
func (m *Meta) Tags() []string { return m.getStringList("tags") }

// SpecVersion returns the schema version the document declares, falling
// back to the default when absent.
func (m *Meta) SpecVersion() string {
	if ms, ok := m.data["meta-spec"].(map[string]any); ok {
		if s, ok := ms["version"].(string); ok && s != "" {
			return s
		}
	}
	return metaspec.DefaultSpecVersion
}

// SpecURL returns the meta-spec url field, if any.
func (m *Meta) SpecURL() string {
	if ms, ok := m.data["meta-spec"].(map[string]any); ok {
		if s, ok := ms["url"].(string); ok {
			return s
		}
	}
	return ""
}

// Provides returns the extensions the distribution ships, keyed by
// extension name.
func (m *Meta) Provides() map[string]Extension {
	raw, ok := m.data["provides"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]Extension, len(raw))
	for name, entryAny := range raw {
		entry, ok := entryAny.(map[string]any)
		if !ok {
			continue
		}
		out[name] = Extension{
			File:     stringAt(entry, "file"),
			Version:  stringAt(entry, "version"),
			Abstract: stringAt(entry, "abstract"),
			Docfile:  stringAt(entry, "docfile"),
		}
	}
	return out
}

// Resources returns a deep copy of the resources map, if any.
func (m *Meta) Resources() map[string]any {
	if res, ok := m.data["resources"].(map[string]any); ok {
		return copyMap(res)
	}
	return nil
}

// NoIndex returns a deep copy of the no_index map, if any.
func (m *Meta) NoIndex() map[string]any {
	if ni, ok := m.data["no_index"].(map[string]any); ok {
		return copyMap(ni)
	}
	return nil
}

// Custom returns the value of an x_/X_ extension key. Keys outside the
// extension namespace report absent even when present in the document.
func (m *Meta) Custom(key string) (any, bool) {
	if len(key) < 2 || (key[0] != 'x' && key[0] != 'X') || key[1] != '_' {
		return nil, false
	}
	val, ok := m.data[key]
	return val, ok
}

// Prereqs returns the distribution's prerequisites model. The returned
// model is owned by the Meta; mutate a Clone instead.
func (m *Meta) Prereqs() *prereqs.Prereqs {
	return m.pre
}

// EffectivePrereqs returns an independent, finalized snapshot of the
// prerequisites, safe to share across goroutines.
func (m *Meta) EffectivePrereqs() *prereqs.Prereqs {
	snapshot := m.pre.Clone()
	snapshot.Finalize()
	return snapshot
}

// AsStruct returns an independent deep copy of the underlying document,
// suitable for re-serialization.
func (m *Meta) AsStruct() map[string]any {
	return copyMap(m.data)
}

func (m *Meta) getString(key string) string {
	return stringAt(m.data, key)
}

// getStringList normalizes lazylist fields: a bare scalar becomes a
// single-element slice.
func (m *Meta) getStringList(key string) []string {
	switch val := m.data[key].(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if strings.TrimSpace(val) == "" {
			return nil
		}
		return []string{val}
	default:
		return nil
	}
}

func stringAt(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	default:
		return val
	}
}
