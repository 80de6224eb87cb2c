package ruleset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/formrules/pkg/celrule"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Config holds ruleset loading settings.
type Config struct {
	Dir string `env:"FORMRULES_RULES_DIR" envDefault:"./rules"`
}

// Ruleset is a compiled definition: an engine plus the field rules and
// message overrides it validates with.
type Ruleset struct {
	Name      string
	Fields    validator.FieldRules
	Overrides validator.Overrides
	// Order is the field visiting order, usually the order of the source file.
	// Fields not listed are visited afterwards by name.
	Order []string

	engine *validator.Engine
	logger *slog.Logger
}

// Option configures Build.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	compiler *celrule.Compiler
}

// WithLogger sets the logger passed to the engine and the CEL compiler.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCompiler shares one CEL compiler across rulesets.
func WithCompiler(c *celrule.Compiler) Option {
	return func(o *options) {
		if c != nil {
			o.compiler = c
		}
	}
}

// Build compiles def into a Ruleset named name.
func Build(name string, def *Definition, opts ...Option) (*Ruleset, error) {
	if def == nil {
		return nil, fmt.Errorf("ruleset %q: %w: empty definition", name, ErrInvalidDefinition)
	}

	o := &options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger.With(logger.Ruleset(name))

	compiler := o.compiler
	if compiler == nil {
		var err error
		compiler, err = celrule.NewCompiler(celrule.WithLogger(log))
		if err != nil {
			return nil, err
		}
	}

	rules := make(map[string]validator.Rule, len(def.Rules))
	messages := make(map[string]validator.Message, len(def.Rules))
	for ruleName, rd := range def.Rules {
		if ruleName == "" {
			return nil, fmt.Errorf("ruleset %q: %w: rule with empty name", name, ErrInvalidDefinition)
		}
		rule, err := compiler.Compile(ruleName, rd.Check, rd.Prepare)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("ruleset %q: %w", name, ErrInvalidDefinition), err)
		}
		rules[ruleName] = rule

		if rd.Message != nil {
			msg, err := compileMessage(ruleName, *rd.Message, log)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("ruleset %q: %w", name, ErrInvalidDefinition), err)
			}
			messages[ruleName] = msg
		}
	}

	overrides := validator.Overrides{}
	for field, byRule := range def.Messages {
		for ruleName, text := range byRule {
			msg, err := compileMessage(field+"."+ruleName, text, log)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("ruleset %q: %w", name, ErrInvalidDefinition), err)
			}
			overrides.Set(field, ruleName, msg)
		}
	}

	fields := def.Fields
	if fields == nil {
		fields = validator.FieldRules{}
	}

	return &Ruleset{
		Name:      name,
		Fields:    fields,
		Overrides: overrides,
		Order:     slices.Clone(def.FieldOrder),
		engine:    validator.New(rules, messages, validator.WithLogger(log)),
		logger:    log,
	}, nil
}

// Engine exposes the underlying engine, e.g. to register Go rules next to the CEL ones.
func (r *Ruleset) Engine() *validator.Engine {
	return r.engine
}

// Validate runs the ruleset's field rules against values.
func (r *Ruleset) Validate(ctx context.Context, values map[string]any) validator.Result {
	start := time.Now()
	res := r.engine.ExecuteOrdered(ctx, values, r.Fields, r.Overrides, r.Order)
	r.logger.DebugContext(ctx, "ruleset validated",
		logger.Outcome(res.Outcome.String()),
		logger.Count("errors", res.Errors.Len()),
		logger.Duration(time.Since(start)),
	)
	return res
}
