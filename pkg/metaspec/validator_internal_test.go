package metaspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A malformed rule tree must surface as a specification error, a defect
// in the schema definition, never as a data error.
func TestSpecificationErrorIsDistinct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule *node
		data any
	}{
		{
			name: "value node without predicate",
			rule: &node{Kind: kindValue},
			data: "anything",
		},
		{
			name: "map node without entries or wildcard",
			rule: &node{Kind: kindMap},
			data: map[string]any{"k": "v"},
		},
		{
			name: "list node without element rule",
			rule: &node{Kind: kindList},
			data: []any{"item"},
		},
		{
			name: "lazylist node without element rule",
			rule: &node{Kind: kindLazyList},
			data: "item",
		},
		{
			name: "wildcard without rule",
			rule: mapOf(nil, &wildcard{Name: customKey}),
			data: map[string]any{"x_k": "v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := NewVersion(nil, "1.0.0")
			v.dispatch(tt.rule, "field", tt.data)

			require.Len(t, v.errs, 1)
			assert.Contains(t, v.errs[0], "Specification error")
			assert.NotContains(t, v.errs[0], "Expected a")
		})
	}
}

// A list whose element rule is a wildcard map checks every element as a
// map against that rule. The shape is easy to lose in refactors, so it
// gets its own test.
func TestListOfWildcardMaps(t *testing.T) {
	t.Parallel()

	rule := list(mapOf(nil, &wildcard{Name: customKey, Rule: leaf(stringVal)}))

	t.Run("conforming elements", func(t *testing.T) {
		t.Parallel()
		v := NewVersion(nil, "1.0.0")
		v.dispatch(rule, "field", []any{
			map[string]any{"x_first": "a"},
			map[string]any{"x_second": "b"},
		})
		assert.Empty(t, v.errs)
	})

	t.Run("element with illegal key", func(t *testing.T) {
		t.Parallel()
		v := NewVersion(nil, "1.0.0")
		v.dispatch(rule, "field", []any{
			map[string]any{"plain": "a"},
		})
		require.Len(t, v.errs, 1)
		assert.Contains(t, v.errs[0], "Custom key 'plain'")
	})

	t.Run("element that is not a map", func(t *testing.T) {
		t.Parallel()
		v := NewVersion(nil, "1.0.0")
		v.dispatch(rule, "field", []any{"scalar"})
		require.Len(t, v.errs, 1)
		assert.Contains(t, v.errs[0], "Expected a map structure")
	})
}

func TestMandatoryListRequiresEntries(t *testing.T) {
	t.Parallel()

	rule := mandatory(list(leaf(stringVal)))
	v := NewVersion(nil, "1.0.0")
	v.dispatch(rule, "field", []any{})

	require.Len(t, v.errs, 1)
	assert.Equal(t, "Missing entries from mandatory list () [Validation: 1.0.0]", v.errs[0])
}

func TestBooleanPredicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "zero string", value: "0", want: true},
		{name: "one string", value: "1", want: true},
		{name: "true string", value: "true", want: true},
		{name: "false string", value: "false", want: true},
		{name: "native true", value: true, want: true},
		{name: "native false", value: false, want: true},
		{name: "yes", value: "yes", want: false},
		{name: "capitalized", value: "True", want: false},
		{name: "two", value: "2", want: false},
		{name: "null", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := NewVersion(nil, "1.0.0")
			got := boolean(v, "flag", tt.value)
			assert.Equal(t, tt.want, got)
			if !tt.want {
				require.Len(t, v.errs, 1)
				assert.Contains(t, v.errs[0], "is not a boolean value")
			}
		})
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
		ok    bool
	}{
		{name: "string", value: "hello", want: "hello", ok: true},
		{name: "empty string", value: "", want: "", ok: true},
		{name: "int", value: 42, want: "42", ok: true},
		{name: "float", value: 1.0, want: "1", ok: true},
		{name: "fractional float", value: 1.5, want: "1.5", ok: true},
		{name: "bool", value: true, want: "true", ok: true},
		{name: "nil", value: nil, ok: false},
		{name: "map", value: map[string]any{}, ok: false},
		{name: "list", value: []any{}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := stringify(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPathSegment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<undef>", pathSegment(nil))
	assert.Equal(t, "mit", pathSegment("mit"))
	assert.Equal(t, "3", pathSegment(3))
}

func TestModulePredicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "pgtap", want: true},
		{input: "pg_stat_statements", want: true},
		{input: "Outer::Inner", want: true},
		{input: "A::B::C1", want: true},
		{input: "has-hyphen", want: false},
		{input: "::leading", want: false},
		{input: "trailing::", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			v := NewVersion(nil, "1.0.0")
			assert.Equal(t, tt.want, module(v, "provides", tt.input))
		})
	}
}
