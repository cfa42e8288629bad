package rules

import (
	"strings"

	"github.com/arthur-debert/vendorlink/pkg/errors"
)

// ParseCriterion parses one criterion string
func ParseCriterion(raw string) (Criterion, error) {
	switch {
	case strings.HasPrefix(raw, typePrefix):
		value := strings.TrimPrefix(raw, typePrefix)
		if value == "" {
			return Criterion{}, errors.Newf(errors.ErrConfigInvalid, "criterion %q has an empty type", raw)
		}
		return Criterion{Kind: ByType, Value: value}, nil
	case strings.HasPrefix(raw, vendorPrefix):
		value := strings.TrimPrefix(raw, vendorPrefix)
		if value == "" {
			return Criterion{}, errors.Newf(errors.ErrConfigInvalid, "criterion %q has an empty vendor", raw)
		}
		return Criterion{Kind: ByVendor, Value: value}, nil
	case raw == "":
		return Criterion{}, errors.New(errors.ErrConfigInvalid, "criterion is empty")
	default:
		return Criterion{Kind: ByName, Value: raw}, nil
	}
}

// ParseEntry builds an Entry from a target template and its raw criteria
func ParseEntry(target string, raw []string) (Entry, error) {
	if target == "" {
		return Entry{}, errors.New(errors.ErrConfigInvalid, "symlink target is empty")
	}
	if len(raw) == 0 {
		return Entry{}, errors.Newf(errors.ErrConfigInvalid, "symlink target %q has no criteria", target)
	}

	entry := Entry{Target: target, Criteria: make([]Criterion, 0, len(raw))}
	for _, r := range raw {
		c, err := ParseCriterion(r)
		if err != nil {
			return Entry{}, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid criteria for %q", target).
				WithDetail("target", target)
		}
		entry.Criteria = append(entry.Criteria, c)
	}
	return entry, nil
}
