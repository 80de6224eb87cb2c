package ruleset

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// RuleDefinition declares one rule in CEL. See package celrule for the
// variables available to Check and Prepare.
type RuleDefinition struct {
	Check   string `yaml:"check" json:"check"`
	Prepare string `yaml:"prepare,omitempty" json:"prepare,omitempty"`
	// Message is the rule's default message. Nil means "not set", in which case
	// the engine falls back to "<name> was undefined"; an empty string is kept.
	Message *string `yaml:"message,omitempty" json:"message,omitempty"`
}

// Definition is the parsed content of a ruleset file.
type Definition struct {
	Rules  map[string]RuleDefinition `yaml:"rules" json:"rules"`
	Fields validator.FieldRules      `yaml:"fields" json:"fields"`
	// Messages holds per-field overrides keyed by field, then rule name.
	Messages map[string]map[string]string `yaml:"messages,omitempty" json:"messages,omitempty"`

	// FieldOrder lists the keys of Fields in the order the file declares them.
	// The parsers fill it; fields missing from it are validated after the
	// listed ones, sorted by name.
	FieldOrder []string `yaml:"-" json:"-"`
}

// UnmarshalYAML decodes the definition and records the declaration order of fields.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	type plain Definition
	if err := node.Decode((*plain)(d)); err != nil {
		return err
	}

	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	d.FieldOrder = nil
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "fields" || node.Content[i+1].Kind != yaml.MappingNode {
			continue
		}
		fields := node.Content[i+1]
		for j := 0; j < len(fields.Content); j += 2 {
			d.FieldOrder = append(d.FieldOrder, fields.Content[j].Value)
		}
	}
	return nil
}

// jsonFieldOrder returns the keys of the top-level "fields" object in document order.
func jsonFieldOrder(content []byte) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var order []string
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if key != "fields" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}

		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			continue
		}
		for dec.More() {
			name, err := dec.Token()
			if err != nil {
				return nil, err
			}
			order = append(order, fmt.Sprint(name))
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
