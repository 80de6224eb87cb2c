package celrule

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

const defaultCostLimit = 1_000_000

// Compiler turns CEL source into validator rules.
//
// Check expressions see two variables:
//
//	value   dyn           the field value
//	params  list(string)  the invocation parameters, empty when none
//
// and must yield a bool where true means the value violates the rule.
//
// Prepare expressions see:
//
//	values  map(string, dyn)  every field of the current call
//	field   string            the field being parsed
//	tokens  list(string)      [name] or [name, paramString]
//
// and must yield a list(string) with the same shape as tokens.
type Compiler struct {
	check     *cel.Env
	prepare   *cel.Env
	costLimit uint64
	logger    *slog.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger for evaluation failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compiler) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCostLimit bounds the runtime cost of a single evaluation.
func WithCostLimit(limit uint64) Option {
	return func(c *Compiler) {
		if limit > 0 {
			c.costLimit = limit
		}
	}
}

// NewCompiler creates a compiler with the check and prepare environments.
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		costLimit: defaultCostLimit,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	c.check, err = cel.NewEnv(
		cel.Variable("value", cel.DynType),
		cel.Variable("params", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, errors.Join(ErrEnvironment, err)
	}

	c.prepare, err = cel.NewEnv(
		cel.Variable("values", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("field", cel.StringType),
		cel.Variable("tokens", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, errors.Join(ErrEnvironment, err)
	}

	return c, nil
}

// Compile builds a rule named name from its check and optional prepare expressions.
// The returned rule implements validator.Preparer only when prepare is not blank.
func (c *Compiler) Compile(name, check, prepare string) (validator.Rule, error) {
	if strings.TrimSpace(check) == "" {
		return nil, fmt.Errorf("rule %q: %w", name, ErrEmptyCheck)
	}

	checkProg, err := c.program(c.check, check, cel.BoolType)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("rule %q check", name), ErrCompile, err)
	}
	rule := &checkRule{name: name, prog: checkProg, logger: c.logger}

	if strings.TrimSpace(prepare) == "" {
		return rule, nil
	}

	prepProg, err := c.program(c.prepare, prepare, cel.ListType(cel.StringType))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("rule %q prepare", name), ErrCompile, err)
	}
	return validator.WithPreparer(rule, &preparer{name: name, prog: prepProg, logger: c.logger}), nil
}

func (c *Compiler) program(env *cel.Env, expr string, want *cel.Type) (cel.Program, error) {
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}

	if out := ast.OutputType(); !acceptsOutput(out, want) {
		return nil, fmt.Errorf("expression yields %s, want %s", out, want)
	}

	return env.Program(ast, cel.CostLimit(c.costLimit))
}

// acceptsOutput allows dyn results and, for lists, any element type; the
// concrete value is checked again at evaluation time.
func acceptsOutput(out, want *cel.Type) bool {
	switch {
	case out.IsExactType(want), out.Kind() == types.DynKind:
		return true
	case want.Kind() == types.ListKind:
		return out.Kind() == types.ListKind
	default:
		return false
	}
}

var stringSliceType = reflect.TypeOf([]string{})
