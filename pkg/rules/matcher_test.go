package rules

import (
	"testing"

	"github.com/arthur-debert/vendorlink/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCriterion(t *testing.T, raw string) Criterion {
	t.Helper()
	c, err := ParseCriterion(raw)
	require.NoError(t, err)
	return c
}

func TestCriterion_Matches(t *testing.T) {
	widget := types.Package{Name: "acme/widget", Type: "component"}

	tests := []struct {
		name      string
		criterion string
		want      bool
	}{
		{"type_match", "type:component", true},
		{"type_mismatch", "type:library", false},
		{"vendor_match", "vendor:acme", true},
		{"vendor_mismatch", "vendor:other", false},
		{"vendor_requires_full_segment", "vendor:ac", false},
		{"exact_name", "acme/widget", true},
		{"project_only_is_not_a_name", "widget", false},
		{"case_sensitive_name", "Acme/Widget", false},
		{"case_sensitive_type", "type:Component", false},
		{"no_glob_support", "acme/*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustCriterion(t, tt.criterion).Matches(widget))
		})
	}
}

func TestMatchesAny(t *testing.T) {
	pkg := types.Package{Name: "acme/widget", Type: "component"}

	t.Run("any_element_matches", func(t *testing.T) {
		criteria := []Criterion{
			mustCriterion(t, "vendor:other"),
			mustCriterion(t, "type:component"),
		}
		assert.True(t, MatchesAny(pkg, criteria))
	})

	t.Run("no_element_matches", func(t *testing.T) {
		criteria := []Criterion{
			mustCriterion(t, "vendor:other"),
			mustCriterion(t, "widget"),
		}
		assert.False(t, MatchesAny(pkg, criteria))
	})

	t.Run("empty_list_never_matches", func(t *testing.T) {
		assert.False(t, MatchesAny(pkg, nil))
	})
}

func TestFirstMatch(t *testing.T) {
	entries := []Entry{
		{Target: "lib/{$name}", Criteria: []Criterion{{Kind: ByType, Value: "library"}}},
		{Target: "public/{$name}", Criteria: []Criterion{{Kind: ByVendor, Value: "acme"}}},
		{Target: "components/{$name}", Criteria: []Criterion{{Kind: ByType, Value: "component"}}},
	}

	t.Run("first_declared_match_wins", func(t *testing.T) {
		got, ok := FirstMatch(entries, types.Package{Name: "acme/widget", Type: "component"})
		require.True(t, ok)
		assert.Equal(t, "public/{$name}", got.Target)
	})

	t.Run("later_entry_when_earlier_miss", func(t *testing.T) {
		got, ok := FirstMatch(entries, types.Package{Name: "other/widget", Type: "component"})
		require.True(t, ok)
		assert.Equal(t, "components/{$name}", got.Target)
	})

	t.Run("no_match", func(t *testing.T) {
		_, ok := FirstMatch(entries, types.Package{Name: "other/tool", Type: "metapackage"})
		assert.False(t, ok)
	})
}
