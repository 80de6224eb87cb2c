package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ruleSeparator  = "|"
	paramsMarker   = ":"
	paramSeparator = ","
)

// Invocation is one parsed rule reference of a field.
// Params is nil when the token carried no parameter part, otherwise it is non-empty.
type Invocation struct {
	Name   string
	Params []string
}

// Expression is an ordered list of rule tokens such as "required" or "between:1,10".
type Expression []string

// FieldRules maps field names to their rule expressions.
type FieldRules map[string]Expression

// Pipe splits a pipe-delimited rule string into an Expression.
// There is no escaping: "|" always separates tokens.
func Pipe(rules string) Expression {
	return strings.Split(rules, ruleSeparator)
}

// UnmarshalJSON accepts either a pipe-delimited string or a list of tokens.
func (e *Expression) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = Pipe(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errors.Join(fmt.Errorf("rule expression must be a string or a list of strings"), err)
	}
	*e = list
	return nil
}

// UnmarshalYAML accepts either a pipe-delimited scalar or a sequence of tokens.
func (e *Expression) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*e = Pipe(s)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*e = list
		return nil
	default:
		return fmt.Errorf("line %d: rule expression must be a string or a list of strings", node.Line)
	}
}

// ParseToken parses a raw token without running any preparer.
func ParseToken(token string) Invocation {
	return invocationFromParts(splitToken(token))
}

func splitToken(token string) []string {
	return strings.SplitN(token, paramsMarker, 2)
}

func invocationFromParts(parts []string) Invocation {
	inv := Invocation{Name: parts[0]}
	if len(parts) > 1 && parts[1] != "" {
		inv.Params = strings.Split(parts[1], paramSeparator)
	}
	return inv
}

// parseExpression turns one field's expression into invocations.
// prepare is consulted per token and may rewrite its parts using the call's values.
func parseExpression(values map[string]any, field string, expr Expression, prepare func(name string) Preparer) []Invocation {
	invocations := make([]Invocation, 0, len(expr))
	for _, token := range expr {
		parts := splitToken(token)
		if p := prepare(parts[0]); p != nil {
			if prepared := p.Prepare(values, field, parts); len(prepared) > 0 {
				parts = prepared
			}
		}
		invocations = append(invocations, invocationFromParts(parts))
	}
	return invocations
}
