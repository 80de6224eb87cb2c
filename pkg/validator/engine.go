package validator

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

// registry is an immutable snapshot of the registered rules. Writers copy it,
// modify the copy and swap the pointer; readers never lock.
type registry struct {
	rules     map[string]Rule
	preparers map[string]Preparer
	messages  map[string]Message
}

func (r *registry) clone() *registry {
	return &registry{
		rules:     maps.Clone(r.rules),
		preparers: maps.Clone(r.preparers),
		messages:  maps.Clone(r.messages),
	}
}

func (r *registry) preparer(name string) Preparer {
	return r.preparers[name]
}

func (r *registry) resolve(rule, field string, overrides Overrides) Message {
	if msg := overrides[field][rule]; msg != nil {
		return msg
	}
	return r.messages[rule]
}

// Engine holds the rule registry and evaluates field values against it.
// All per-call state lives on the stack of Execute, so one Engine can serve
// concurrent calls. Each call works on the registry snapshot taken when it
// started, so rules and messages may register other rules or validate again
// without blocking.
type Engine struct {
	mu  sync.Mutex // serializes writers
	reg atomic.Pointer[registry]

	logger      *slog.Logger
	unknownRule func(rule string) string
}

// New creates an engine with the given rules and default messages.
// Rules without a message get "<name> was undefined" as their default.
// Messages for names without a rule are kept, so they still resolve for unknown rules.
// Nil rules are skipped.
func New(rules map[string]Rule, messages map[string]Message, opts ...Option) *Engine {
	e := &Engine{
		logger:      logger.Discard(),
		unknownRule: unknownRuleMessage,
	}
	for _, opt := range opts {
		opt(e)
	}

	reg := &registry{
		rules:     make(map[string]Rule, len(rules)),
		preparers: make(map[string]Preparer),
		messages:  make(map[string]Message, len(messages)),
	}
	for name, msg := range messages {
		if msg != nil {
			reg.messages[name] = msg
		}
	}
	e.reg.Store(reg)
	e.AddRules(rules, messages)

	return e
}

// AddRule registers rule under name, replacing any previous rule and preparer.
// If rule also implements Preparer, it is registered as the rule's preparer.
// A non-nil message becomes the rule's default message. A nil rule is ignored.
//
// Calls already in progress keep validating against the registry they started with.
func (e *Engine) AddRule(name string, rule Rule, message Message) {
	if rule == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	reg := e.reg.Load().clone()
	reg.rules[name] = rule
	if p, ok := rule.(Preparer); ok {
		reg.preparers[name] = p
	} else {
		delete(reg.preparers, name)
	}
	if message != nil {
		reg.messages[name] = message
	}
	e.reg.Store(reg)
}

// AddRules registers every non-nil rule in rules. A rule with no entry in
// messages gets the default "<name> was undefined". The caller's map is left
// untouched; the resolved message map is returned instead.
func (e *Engine) AddRules(rules map[string]Rule, messages map[string]Message) map[string]Message {
	resolved := maps.Clone(messages)
	if resolved == nil {
		resolved = make(map[string]Message, len(rules))
	}

	for _, name := range slices.Sorted(maps.Keys(rules)) {
		if rules[name] == nil {
			continue
		}
		if resolved[name] == nil {
			resolved[name] = undefinedMessage(name)
		}
		e.AddRule(name, rules[name], resolved[name])
	}

	return resolved
}

// Has reports whether a validator is registered under name.
func (e *Engine) Has(name string) bool {
	_, ok := e.reg.Load().rules[name]
	return ok
}

// Parse turns a field's expression into invocations, running registered preparers
// against values.
func (e *Engine) Parse(values map[string]any, field string, expr Expression) []Invocation {
	return parseExpression(values, field, expr, e.reg.Load().preparer)
}

// Resolve returns the message for rule on field: the override if present,
// otherwise the registered default. It returns nil when neither exists.
func (e *Engine) Resolve(rule, field string, overrides Overrides) Message {
	return e.reg.Load().resolve(rule, field, overrides)
}

// Execute validates values against fieldRules. See ExecuteContext.
func (e *Engine) Execute(values map[string]any, fieldRules FieldRules, overrides Overrides) Result {
	return e.ExecuteContext(context.Background(), values, fieldRules, overrides)
}

// ExecuteContext validates values against fieldRules, visiting fields in
// ascending name order. See ExecuteOrdered.
func (e *Engine) ExecuteContext(ctx context.Context, values map[string]any, fieldRules FieldRules, overrides Overrides) Result {
	return e.ExecuteOrdered(ctx, values, fieldRules, overrides, nil)
}

// ExecuteOrdered validates values against fieldRules.
//
// Fields named in order are visited first, in that order; the remaining fields
// of fieldRules follow in ascending name order. Names in order that have no
// rules are ignored. For each field the invocations run in order and stop at
// the first violation, which records exactly one message. A field whose value
// is absent or the boolean false aborts the whole call: every error gathered
// so far is discarded and an aborted Result is returned. ctx is only used for
// logging.
func (e *Engine) ExecuteOrdered(ctx context.Context, values map[string]any, fieldRules FieldRules, overrides Overrides, order []string) Result {
	reg := e.reg.Load()

	fields := visitOrder(fieldRules, order)
	parsed := make(map[string][]Invocation, len(fields))
	for _, field := range fields {
		parsed[field] = parseExpression(values, field, fieldRules[field], reg.preparer)
	}

	var errs ValidationErrors
	for _, field := range fields {
		value, ok := values[field]
		if isMissing(value, ok) {
			e.logger.WarnContext(ctx, "validation aborted: missing target",
				logger.Field(field),
				logger.Count("discarded_errors", errs.Len()),
			)
			return aborted(field)
		}

		if verr, failed := e.evaluate(ctx, reg, field, value, parsed[field], overrides); failed {
			errs.Append(verr)
		}
	}

	return valid(errs)
}

// evaluate runs the invocations of one field and stops at the first violation.
func (e *Engine) evaluate(ctx context.Context, reg *registry, field string, value any, invocations []Invocation, overrides Overrides) (ValidationError, bool) {
	for _, inv := range invocations {
		rule := reg.rules[inv.Name]
		known := rule != nil
		if known && !rule.Evaluate(value, inv.Params) {
			continue
		}

		verr := ValidationError{Field: field, Rule: inv.Name, Params: inv.Params}
		msg := reg.resolve(inv.Name, field, overrides)
		switch {
		case msg != nil:
			verr.Message = msg.Render(value, inv.Params)
		case !known:
			verr.Message = e.unknownRule(inv.Name)
		default:
			verr.Message = unresolvedMessage(inv.Name)
		}

		if !known {
			e.logger.WarnContext(ctx, "unknown validation rule",
				logger.Field(field),
				logger.Rule(inv.Name),
				logger.Error(ErrUnknownRule),
			)
		} else {
			e.logger.DebugContext(ctx, "rule violated",
				logger.Field(field),
				logger.Rule(inv.Name),
				logger.Params(inv.Params),
			)
		}
		return verr, true
	}
	return ValidationError{}, false
}

func visitOrder(fieldRules FieldRules, order []string) []string {
	fields := make([]string, 0, len(fieldRules))
	seen := make(map[string]bool, len(order))
	for _, field := range order {
		if _, ok := fieldRules[field]; ok && !seen[field] {
			seen[field] = true
			fields = append(fields, field)
		}
	}
	for _, field := range slices.Sorted(maps.Keys(fieldRules)) {
		if !seen[field] {
			fields = append(fields, field)
		}
	}
	return fields
}

func isMissing(value any, present bool) bool {
	if !present {
		return true
	}
	b, ok := value.(bool)
	return ok && !b
}
