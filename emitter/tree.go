package emitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

const (
	tagNull  = "!!null"
	tagBool  = "!!bool"
	tagInt   = "!!int"
	tagFloat = "!!float"
	tagStr   = "!!str"
	tagMap   = "!!map"
	tagSeq   = "!!seq"
)

// Tree encodes v as JSON and rebuilds the result as a yaml.Node tree with
// null-valued keys removed. Mapping keys keep the order the encoder wrote
// them in. Null list elements are kept as null scalars.
func Tree(v any) (*yaml.Node, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("emitter: failed to encode %T: %w", v, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := readNode(dec)
	if err != nil {
		return nil, fmt.Errorf("emitter: failed to decode %T: %w", v, err)
	}
	return node, nil
}

// readNode reads one JSON value from dec.
func readNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readMapping(dec)
		case '[':
			return readSequence(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case nil:
		return scalarNode(tagNull, "null"), nil
	case bool:
		return scalarNode(tagBool, strconv.FormatBool(t)), nil
	case json.Number:
		return numberNode(t), nil
	case string:
		return scalarNode(tagStr, t), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func readMapping(dec *json.Decoder) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap, Content: []*yaml.Node{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}
		val, err := readNode(dec)
		if err != nil {
			return nil, err
		}
		if isNull(val) {
			continue
		}
		node.Content = append(node.Content, scalarNode(tagStr, key), val)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func readSequence(dec *json.Decoder) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq, Content: []*yaml.Node{}}
	for dec.More() {
		item, err := readNode(dec)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, item)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func numberNode(n json.Number) *yaml.Node {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return scalarNode(tagFloat, s)
	}
	return scalarNode(tagInt, s)
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == tagNull
}

// writeJSON writes a node built by Tree as compact JSON.
func writeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, node.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		if node.Tag == tagStr {
			return writeString(buf, node.Value)
		}
		buf.WriteString(node.Value)
	default:
		return fmt.Errorf("emitter: unexpected node kind %v", node.Kind)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

// toValue converts a node built by Tree into generic Go values.
// Integers become int64 when they fit, other numbers float64.
func toValue(node *yaml.Node) any {
	switch node.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			m[node.Content[i].Value] = toValue(node.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			list = append(list, toValue(item))
		}
		return list
	}

	switch node.Tag {
	case tagNull:
		return nil
	case tagBool:
		return node.Value == "true"
	case tagInt:
		if i, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(node.Value, 64)
		return f
	case tagFloat:
		f, _ := strconv.ParseFloat(node.Value, 64)
		return f
	}
	return node.Value
}
