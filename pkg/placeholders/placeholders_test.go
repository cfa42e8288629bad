package placeholders

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/vendorlink/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	widget := types.Package{Name: "acme/widget", Type: "component"}

	tests := []struct {
		name     string
		template string
		pkg      types.Package
		want     string
	}{
		{"vendor_and_name", "lib/{$vendor}-{$name}", widget, "lib/acme-widget"},
		{"full_package", "modules/{$package}", widget, "modules/acme/widget"},
		{"repeated_tokens", "{$name}/{$name}", widget, "widget/widget"},
		{"no_tokens", "public/static", widget, "public/static"},
		{"unknown_token_verbatim", "lib/{$version}/{$name}", widget, "lib/{$version}/widget"},
		{"backslash_separators", `web\{$name}`, widget, "web/widget"},
		{"no_vendor_prefix", "lib/{$vendor}/{$name}", types.Package{Name: "widget"}, "lib/./widget"},
		{
			name:     "no_recursive_expansion",
			template: "lib/{$name}",
			pkg:      types.Package{Name: "acme/{$vendor}"},
			want:     "lib/{$vendor}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), Resolve(tt.template, tt.pkg))
		})
	}
}
