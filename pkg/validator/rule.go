package validator

// Rule evaluates a single field value.
//
// Evaluate returns true when the value VIOLATES the rule and false when it passes.
// Existing rule definitions are written against this polarity, do not invert it.
type Rule interface {
	Evaluate(value any, params []string) bool
}

// Preparer rewrites the raw tokens of a rule before its parameters are parsed.
// tokens is either [name] or [name, paramString]; the returned slice has the same shape.
// values holds every field of the current call, which enables cross-field parameters.
type Preparer interface {
	Prepare(values map[string]any, field string, tokens []string) []string
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(value any, params []string) bool

func (f RuleFunc) Evaluate(value any, params []string) bool {
	return f(value, params)
}

// PrepareFunc adapts a plain function to the Preparer interface.
type PrepareFunc func(values map[string]any, field string, tokens []string) []string

func (f PrepareFunc) Prepare(values map[string]any, field string, tokens []string) []string {
	return f(values, field, tokens)
}

type preparedRule struct {
	Rule
	prep Preparer
}

func (r preparedRule) Prepare(values map[string]any, field string, tokens []string) []string {
	return r.prep.Prepare(values, field, tokens)
}

// WithPreparer pairs a rule with a token preparer.
// The returned rule implements both Rule and Preparer.
func WithPreparer(rule Rule, prep Preparer) Rule {
	if prep == nil {
		return rule
	}
	return preparedRule{Rule: rule, prep: prep}
}
