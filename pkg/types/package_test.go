package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackage_VendorAndProject(t *testing.T) {
	tests := []struct {
		name        string
		pkgName     string
		wantVendor  string
		wantProject string
	}{
		{"vendor_project", "acme/widget", "acme", "widget"},
		{"no_vendor", "widget", ".", "widget"},
		{"nested_vendor", "acme/tools/widget", "acme/tools", "widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Package{Name: tt.pkgName}
			assert.Equal(t, tt.wantVendor, p.Vendor())
			assert.Equal(t, tt.wantProject, p.Project())
		})
	}
}
