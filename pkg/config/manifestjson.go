package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// isJSON reports whether data looks like a JSON document
func isJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// decodeJSONNode decodes a JSON document into the same node shape yaml.v3
// produces, keeping object key order. It accepts every JSON escape,
// including "\/", which a YAML parser rejects.
func decodeJSONNode(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value")
		}
		return nil, err
	}
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}, nil
}

func jsonValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}
				name, ok := key.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", key)
				}
				value, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, jsonScalar("!!str", name), value)
			}
			_, err := dec.Token()
			return node, err
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				item, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, item)
			}
			_, err := dec.Token()
			return node, err
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v)
	case string:
		return jsonScalar("!!str", v), nil
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return jsonScalar("!!float", v.String()), nil
		}
		return jsonScalar("!!int", v.String()), nil
	case bool:
		return jsonScalar("!!bool", fmt.Sprint(v)), nil
	case nil:
		return jsonScalar("!!null", "null"), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func jsonScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
