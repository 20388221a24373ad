package agentdef

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Load reads a definition file and parses it into a Definition.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing definition %s: %w", path, err)
	}
	return def, nil
}

// Parse unmarshals YAML bytes into a Definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("unmarshaling YAML: %w", err)
	}
	return &def, nil
}

// ParseList splits free text on commas and newlines, trims each token, and
// drops empty ones. Order is preserved. The result is never nil: input with
// no usable tokens yields an empty slice.
func ParseList(raw string) []string {
	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if t := strings.TrimSpace(tok); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// StringList is an ordered list of strings that accepts two YAML shapes: a
// regular sequence, or a single free-text scalar that is split per ParseList
// ("a, b\nc" → [a b c]).
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*l = ParseList(raw)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected string or sequence, got %s", node.Line, nodeKind(node))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler. A task store is either a plain
// scalar ("InMemoryTaskStore", or a custom module.ClassName path) or a
// mapping with explicit kind and path fields.
func (ts *TaskStore) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		switch raw {
		case "", "InMemoryTaskStore", string(TaskStoreInMemory):
			*ts = TaskStore{Kind: TaskStoreInMemory}
		default:
			*ts = TaskStore{Kind: TaskStoreCustom, Path: raw}
		}
		return nil
	case yaml.MappingNode:
		var m struct {
			Kind string `yaml:"kind"`
			Path string `yaml:"path"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		switch TaskStoreKind(m.Kind) {
		case TaskStoreInMemory, "":
			*ts = TaskStore{Kind: TaskStoreInMemory}
		case TaskStoreCustom:
			*ts = TaskStore{Kind: TaskStoreCustom, Path: strings.TrimSpace(m.Path)}
		default:
			return fmt.Errorf("line %d: unknown task store kind %q", node.Line, m.Kind)
		}
		return nil
	default:
		return fmt.Errorf("line %d: expected string or mapping for task store, got %s", node.Line, nodeKind(node))
	}
}

// nodeKind names a YAML node kind for error messages.
func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
