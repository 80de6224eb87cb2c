package logger

import (
	"log/slog"
	"strings"
	"time"
)

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error returns an empty Attr for nil errors so it can be passed unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field names the validated field.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Rule names a validation rule.
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Params renders rule parameters as a comma-separated list.
// Nil params yield an empty Attr.
func Params(params []string) slog.Attr {
	if params == nil {
		return slog.Attr{}
	}
	return slog.String("params", strings.Join(params, ","))
}

// Outcome records a validation outcome such as "valid" or "aborted".
func Outcome(o string) slog.Attr {
	return slog.String("outcome", o)
}

// Ruleset names the ruleset a call was validated against.
func Ruleset(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("ruleset", name)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
