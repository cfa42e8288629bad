package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/rules"
)

// Manifest is the part of a project manifest vendorlink cares about
type Manifest struct {
	Path string
	// VendorDir is config.vendor-dir, empty when the manifest does not set it
	VendorDir string
	// Entries are the rule entries under extra.<key>, in declaration order
	Entries []rules.Entry
}

// LoadManifest reads a JSON (or YAML) manifest from path
func LoadManifest(path, extraKey string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrManifestNotFound, "manifest not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read manifest: %s", path).
			WithDetail("path", path)
	}

	m, err := ParseManifest(data, extraKey)
	if err != nil {
		return nil, err
	}
	m.Path = path
	return m, nil
}

// ParseManifest extracts the vendor dir and rule entries from manifest data.
// The document is decoded into yaml nodes because a Go map would lose the
// order of the rule mapping. JSON documents go through encoding/json so
// that JSON-only escapes are accepted; anything else is read as YAML.
func ParseManifest(data []byte, extraKey string) (*Manifest, error) {
	doc := &yaml.Node{}
	if isJSON(data) {
		node, err := decodeJSONNode(data)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse manifest")
		}
		doc = node
	} else if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse manifest")
	}

	m := &Manifest{}
	if len(doc.Content) == 0 {
		return m, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrConfigInvalid, "manifest must be an object")
	}

	if cfg := mappingValue(root, "config"); cfg != nil && cfg.Kind == yaml.MappingNode {
		if dir := mappingValue(cfg, "vendor-dir"); dir != nil && dir.Kind == yaml.ScalarNode {
			m.VendorDir = dir.Value
		}
	}

	extra := mappingValue(root, "extra")
	if extra == nil || extra.Kind != yaml.MappingNode {
		return m, nil
	}
	entries, err := parseRuleMapping(mappingValue(extra, extraKey), "extra."+extraKey)
	if err != nil {
		return nil, err
	}
	m.Entries = entries
	return m, nil
}

// parseRuleMapping turns a target -> criteria mapping node into entries.
// A missing, null or empty value means no rules.
func parseRuleMapping(node *yaml.Node, key string) ([]rules.Entry, error) {
	if node == nil || isNull(node) {
		return nil, nil
	}
	if node.Kind == yaml.SequenceNode && len(node.Content) == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrConfigInvalid, "%s must map target paths to criteria", key).
			WithDetail("key", key)
	}

	var entries []rules.Entry
	index := make(map[string]int)
	for i := 0; i+1 < len(node.Content); i += 2 {
		target := node.Content[i].Value
		raw, err := criteriaStrings(node.Content[i+1])
		if err != nil {
			return nil, err.WithDetail("target", target)
		}
		entry, perr := rules.ParseEntry(target, raw)
		if perr != nil {
			return nil, perr
		}
		// A repeated key keeps its first position and its last value
		if at, ok := index[target]; ok {
			entries[at] = entry
			continue
		}
		index[target] = len(entries)
		entries = append(entries, entry)
	}
	return entries, nil
}

func criteriaStrings(node *yaml.Node) ([]string, *errors.LinkError) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() != "!!str" {
			return nil, errors.Newf(errors.ErrConfigInvalid, "criteria must be strings, got %q", node.Value)
		}
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				return nil, errors.New(errors.ErrConfigInvalid, "criteria lists must contain only strings")
			}
			out = append(out, item.Value)
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrConfigInvalid, "criteria must be a string or a list of strings")
	}
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	var found *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			found = node.Content[i+1]
		}
	}
	return found
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
