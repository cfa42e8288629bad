package packages

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

type record struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Version     string `json:"version"`
	InstallPath string `json:"install-path"`
}

// Load reads an installed.json file. Both the flat array layout and the
// {"packages": [...]} layout are accepted. A missing file is an empty
// repository. Packages are returned in file order.
func Load(path string) ([]types.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrInstalledRead, "failed to read %s", path).
			WithDetail("path", path)
	}

	records, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInstalledRead, "failed to parse %s", path).
			WithDetail("path", path)
	}

	base := filepath.Dir(path)
	pkgs := make([]types.Package, 0, len(records))
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		pkg := types.Package{Name: r.Name, Type: r.Type, Version: r.Version}
		if pkg.Type == "" {
			pkg.Type = types.DefaultPackageType
		}
		if r.InstallPath != "" {
			pkg.Path = filepath.Join(base, filepath.FromSlash(r.InstallPath))
			if filepath.IsAbs(filepath.FromSlash(r.InstallPath)) {
				pkg.Path = filepath.Clean(filepath.FromSlash(r.InstallPath))
			}
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

func decode(data []byte) ([]record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var records []record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc struct {
		Packages []record `json:"packages"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return doc.Packages, nil
}
