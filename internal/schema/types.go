package schema

// Kind names the primitive type an env value must satisfy.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindBool   Kind = "bool"
)

// Rule is the validation rule for a single variable. The zero value is the
// default rule: optional, any string accepted.
type Rule struct {
	Required bool `yaml:"required"`
	Type     Kind `yaml:"type"`
}

// Schema holds the rule set for an env file. Names preserves the order the
// variables were declared in, which is also the order validation errors are
// reported in.
type Schema struct {
	Names []string
	Rules map[string]Rule
}

// Len returns the number of rules in the schema.
func (s Schema) Len() int {
	return len(s.Names)
}
