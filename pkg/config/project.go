package config

import (
	"path/filepath"

	"github.com/arthur-debert/vendorlink/pkg/rules"
)

// Project is everything resolved from settings and the manifest that an
// engine needs. All paths are absolute.
type Project struct {
	Settings      *Settings
	ManifestPath  string
	VendorDir     string
	InstalledPath string
	Rules         []rules.Entry
}

// LoadProject reads the manifest and optional rules file named by s.
// Manifest entries come first, then rules file entries.
func LoadProject(s *Settings) (*Project, error) {
	m, err := LoadManifest(s.ManifestPath(), s.Project.ExtraKey)
	if err != nil {
		return nil, err
	}

	vendorDir := s.Project.VendorDir
	if m.VendorDir != "" {
		vendorDir = m.VendorDir
	}
	p := &Project{
		Settings:     s,
		ManifestPath: m.Path,
		VendorDir:    s.Resolve(vendorDir),
		Rules:        m.Entries,
	}

	if s.Project.Installed != "" {
		p.InstalledPath = s.Resolve(s.Project.Installed)
	} else {
		p.InstalledPath = filepath.Join(p.VendorDir, "composer", "installed.json")
	}

	if s.Project.RulesFile != "" {
		extra, err := LoadRulesFile(s.Resolve(s.Project.RulesFile))
		if err != nil {
			return nil, err
		}
		p.Rules = append(p.Rules, extra...)
	}
	return p, nil
}
