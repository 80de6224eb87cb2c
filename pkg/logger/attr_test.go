package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("call", logger.Field("age"), logger.Rule("required"))
	require.Equal(t, "call", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "field", g[0].Key)
	assert.Equal(t, "rule", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestValidationAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value string
	}{
		{"field", logger.Field("email"), "field", "email"},
		{"rule", logger.Rule("between"), "rule", "between"},
		{"params", logger.Params([]string{"1", "10"}), "params", "1,10"},
		{"outcome", logger.Outcome("aborted"), "outcome", "aborted"},
		{"ruleset", logger.Ruleset("signup"), "ruleset", "signup"},
		{"request id", logger.RequestID("req-1"), "request_id", "req-1"},
		{"component", logger.Component("ruleserver"), "component", "ruleserver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.String())
		})
	}
}

func TestEmptyAttrs(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.Field("").Equal(slog.Attr{}))
	assert.True(t, logger.Params(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Ruleset("").Equal(slog.Attr{}))
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestDurationAndCount(t *testing.T) {
	t.Parallel()
	d := logger.Duration(150 * time.Millisecond)
	assert.Equal(t, "duration", d.Key)
	assert.Equal(t, 150*time.Millisecond, d.Value.Duration())

	c := logger.Count("discarded_errors", 3)
	assert.Equal(t, "discarded_errors", c.Key)
	assert.Equal(t, int64(3), c.Value.Int64())
}
