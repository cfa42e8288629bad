package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/rules"
)

// rulesFile is the standalone rules format:
//
//	[[link]]
//	target = "public/{$name}"
//	match = ["type:component"]
type rulesFile struct {
	Link []linkRecord `toml:"link"`
}

type linkRecord struct {
	Target string   `toml:"target"`
	Match  []string `toml:"match"`
}

// LoadRulesFile reads rule entries from a TOML rules file, in file order
func LoadRulesFile(path string) ([]rules.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to open rules file: %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	var rf rulesFile
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&rf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse rules file: %s", path).
			WithDetail("path", path)
	}

	entries := make([]rules.Entry, 0, len(rf.Link))
	for _, rec := range rf.Link {
		entry, err := rules.ParseEntry(rec.Target, rec.Match)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
