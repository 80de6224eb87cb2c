package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestParseToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  validator.Invocation
	}{
		{
			name:  "rule with params",
			token: "between:1,10",
			want:  validator.Invocation{Name: "between", Params: []string{"1", "10"}},
		},
		{
			name:  "rule without params",
			token: "required",
			want:  validator.Invocation{Name: "required", Params: nil},
		},
		{
			name:  "single param",
			token: "min:3",
			want:  validator.Invocation{Name: "min", Params: []string{"3"}},
		},
		{
			name:  "empty param part",
			token: "min:",
			want:  validator.Invocation{Name: "min", Params: nil},
		},
		{
			name:  "colon inside params is kept",
			token: "regex:^a:b$",
			want:  validator.Invocation{Name: "regex", Params: []string{"^a:b$"}},
		},
		{
			name:  "empty params between commas are kept",
			token: "in:a,,b",
			want:  validator.Invocation{Name: "in", Params: []string{"a", "", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ParseToken(tt.token))
		})
	}
}

func TestPipe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, validator.Expression{"required", "between:1,10"}, validator.Pipe("required|between:1,10"))
	assert.Equal(t, validator.Expression{"required"}, validator.Pipe("required"))
	assert.Equal(t, validator.Expression{""}, validator.Pipe(""))
}

func TestExpression_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("string is split on pipe", func(t *testing.T) {
		var rules validator.FieldRules
		require.NoError(t, json.Unmarshal([]byte(`{"age":"required|between:1,10"}`), &rules))
		assert.Equal(t, validator.Expression{"required", "between:1,10"}, rules["age"])
	})

	t.Run("list is used as is", func(t *testing.T) {
		var rules validator.FieldRules
		require.NoError(t, json.Unmarshal([]byte(`{"age":["required","in:a|b"]}`), &rules))
		assert.Equal(t, validator.Expression{"required", "in:a|b"}, rules["age"])
	})

	t.Run("rejects other types", func(t *testing.T) {
		var rules validator.FieldRules
		assert.Error(t, json.Unmarshal([]byte(`{"age":42}`), &rules))
	})
}

func TestExpression_UnmarshalYAML(t *testing.T) {
	t.Parallel()

	input := `
email: required|email
tags:
  - required
  - "in:a,b"
`
	var rules validator.FieldRules
	require.NoError(t, yaml.Unmarshal([]byte(input), &rules))
	assert.Equal(t, validator.Expression{"required", "email"}, rules["email"])
	assert.Equal(t, validator.Expression{"required", "in:a,b"}, rules["tags"])

	var bad validator.FieldRules
	assert.Error(t, yaml.Unmarshal([]byte("age: {a: b}"), &bad))
}

func TestEngine_Parse(t *testing.T) {
	t.Parallel()

	t.Run("without preparer", func(t *testing.T) {
		e := validator.New(nil, nil)
		got := e.Parse(nil, "age", validator.Pipe("required|between:1,10"))
		assert.Equal(t, []validator.Invocation{
			{Name: "required"},
			{Name: "between", Params: []string{"1", "10"}},
		}, got)
	})

	t.Run("preparer rewrites params from another field", func(t *testing.T) {
		matches := validator.WithPreparer(
			validator.RuleFunc(func(value any, params []string) bool { return false }),
			validator.PrepareFunc(func(values map[string]any, field string, tokens []string) []string {
				other, _ := values["confirm_"+field].(string)
				return []string{tokens[0], other}
			}),
		)
		e := validator.New(map[string]validator.Rule{"matches": matches}, nil)

		values := map[string]any{"password": "secret", "confirm_password": "s3cret"}
		got := e.Parse(values, "password", validator.Expression{"matches:ignored"})
		assert.Equal(t, []validator.Invocation{{Name: "matches", Params: []string{"s3cret"}}}, got)
	})

	t.Run("preparer receives raw token parts", func(t *testing.T) {
		var seen [][]string
		spy := validator.WithPreparer(
			validator.RuleFunc(func(any, []string) bool { return false }),
			validator.PrepareFunc(func(_ map[string]any, _ string, tokens []string) []string {
				seen = append(seen, append([]string(nil), tokens...))
				return tokens
			}),
		)
		e := validator.New(map[string]validator.Rule{"spy": spy}, nil)

		e.Parse(nil, "f", validator.Expression{"spy", "spy:1,2"})
		assert.Equal(t, [][]string{{"spy"}, {"spy", "1,2"}}, seen)
	})

	t.Run("empty preparer result keeps original token", func(t *testing.T) {
		noop := validator.WithPreparer(
			validator.RuleFunc(func(any, []string) bool { return false }),
			validator.PrepareFunc(func(map[string]any, string, []string) []string { return nil }),
		)
		e := validator.New(map[string]validator.Rule{"noop": noop}, nil)

		got := e.Parse(nil, "f", validator.Expression{"noop:x"})
		assert.Equal(t, []validator.Invocation{{Name: "noop", Params: []string{"x"}}}, got)
	})
}
