package rules

import (
	"testing"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  Kind
		wantValue string
		wantErr   bool
	}{
		{name: "type", raw: "type:custom-component", wantKind: ByType, wantValue: "custom-component"},
		{name: "vendor", raw: "vendor:acme", wantKind: ByVendor, wantValue: "acme"},
		{name: "name", raw: "acme/widget", wantKind: ByName, wantValue: "acme/widget"},
		{name: "other_prefix_is_a_name", raw: "kind:foo", wantKind: ByName, wantValue: "kind:foo"},
		{name: "empty_type", raw: "type:", wantErr: true},
		{name: "empty_vendor", raw: "vendor:", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCriterion(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, c.Kind)
			assert.Equal(t, tt.wantValue, c.Value)
			assert.Equal(t, tt.raw, c.String(), "String() round-trips the configured form")
		})
	}
}

func TestParseEntry(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		e, err := ParseEntry("public/{$name}", []string{"type:component", "vendor:acme"})
		require.NoError(t, err)
		assert.Equal(t, "public/{$name}", e.Target)
		assert.Equal(t, []Criterion{{Kind: ByType, Value: "component"}, {Kind: ByVendor, Value: "acme"}}, e.Criteria)
	})

	t.Run("empty_target", func(t *testing.T) {
		_, err := ParseEntry("", []string{"type:component"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("no_criteria", func(t *testing.T) {
		_, err := ParseEntry("public/x", nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})

	t.Run("bad_criterion_reports_target", func(t *testing.T) {
		_, err := ParseEntry("public/x", []string{"type:component", "vendor:"})
		require.Error(t, err)
		assert.Equal(t, "public/x", errors.GetErrorDetails(err)["target"])
	})
}
