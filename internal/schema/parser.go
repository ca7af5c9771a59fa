package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse parses YAML schema content into a Schema.
//
// The document root must be a mapping from variable name to rule. A rule
// that is null or a bare scalar falls back to the default rule, so
// shorthand schemas like "FOO:" are accepted. Unknown rule fields are
// ignored; unknown type names are kept verbatim and treated as
// unconstrained at validation time. Declaration order is preserved.
func Parse(content []byte) (Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return Schema{}, fmt.Errorf("invalid YAML: %w", err)
	}

	s := Schema{Rules: make(map[string]Rule)}

	// An empty or comment-only document has no content nodes.
	if len(doc.Content) == 0 {
		return s, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return s, nil
	}
	if root.Kind != yaml.MappingNode {
		return Schema{}, fmt.Errorf("schema root must be a mapping of variable names to rules")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		valNode := root.Content[i+1]

		rule := Rule{Type: KindString}
		if valNode.Kind == yaml.MappingNode {
			if err := valNode.Decode(&rule); err != nil {
				return Schema{}, fmt.Errorf("invalid rule for %q: %w", name, err)
			}
			if rule.Type == "" {
				rule.Type = KindString
			}
		}

		// A duplicate name keeps its first position but takes the last rule.
		if _, seen := s.Rules[name]; !seen {
			s.Names = append(s.Names, name)
		}
		s.Rules[name] = rule
	}

	return s, nil
}

// Load reads and parses a schema from the given file path.
func Load(path string) (Schema, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Schema{}, err
		}
		return Schema{}, fmt.Errorf("failed to read schema: %w", err)
	}

	return Parse(content)
}

// ToYAML serializes a Schema back to YAML bytes, keeping declaration order.
func (s Schema) ToYAML() ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for _, name := range s.Names {
		var valNode yaml.Node
		if err := valNode.Encode(s.Rules[name]); err != nil {
			return nil, fmt.Errorf("failed to serialize rule for %q: %w", name, err)
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: name}
		root.Content = append(root.Content, keyNode, &valNode)
	}

	return yaml.Marshal(root)
}
