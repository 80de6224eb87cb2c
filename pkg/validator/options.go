package validator

import (
	"log/slog"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for abort and unknown-rule diagnostics.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithUnknownRuleMessage replaces the diagnostic recorded when a field references
// a rule with no validator and no message.
func WithUnknownRuleMessage(fn func(rule string) string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.unknownRule = fn
		}
	}
}
