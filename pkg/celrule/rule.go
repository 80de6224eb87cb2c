package celrule

import (
	"log/slog"

	"github.com/google/cel-go/cel"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

type checkRule struct {
	name   string
	prog   cel.Program
	logger *slog.Logger
}

// Evaluate fails closed: an evaluation error or a non-bool result is a violation.
func (r *checkRule) Evaluate(value any, params []string) bool {
	if params == nil {
		params = []string{}
	}

	out, _, err := r.prog.Eval(map[string]any{
		"value":  value,
		"params": params,
	})
	if err != nil {
		r.logger.Warn("rule evaluation failed", logger.Rule(r.name), logger.Params(params), logger.Error(err))
		return true
	}

	violated, ok := out.Value().(bool)
	if !ok {
		r.logger.Warn("rule returned a non-bool result", logger.Rule(r.name), slog.String("type", out.Type().TypeName()))
		return true
	}
	return violated
}

type preparer struct {
	name   string
	prog   cel.Program
	logger *slog.Logger
}

// Prepare keeps the original tokens when the expression fails.
func (p *preparer) Prepare(values map[string]any, field string, tokens []string) []string {
	if values == nil {
		values = map[string]any{}
	}

	out, _, err := p.prog.Eval(map[string]any{
		"values": values,
		"field":  field,
		"tokens": tokens,
	})
	if err != nil {
		p.logger.Warn("rule preparation failed", logger.Rule(p.name), logger.Field(field), logger.Error(err))
		return tokens
	}

	native, err := out.ConvertToNative(stringSliceType)
	if err != nil {
		p.logger.Warn("rule preparation returned a non-list result", logger.Rule(p.name), logger.Field(field), logger.Error(err))
		return tokens
	}
	return native.([]string)
}
