package ruleset_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &ruleset.YAMLParser{}, ruleset.NewParserForFile("signup.yaml"))
	assert.IsType(t, &ruleset.YAMLParser{}, ruleset.NewParserForFile("signup.YML"))
	assert.IsType(t, &ruleset.JSONParser{}, ruleset.NewParserForFile("dir/contact.json"))
	assert.Nil(t, ruleset.NewParserForFile("README.txt"))
	assert.Nil(t, ruleset.NewParserForFile("noext"))
}

func TestYAMLParser_Parse(t *testing.T) {
	t.Parallel()

	content := []byte(`
rules:
  required:
    check: 'value == null'
    message: ""
  min:
    check: 'int(value) < int(params[0])'
fields:
  age: required|min:18
  tags: [required]
messages:
  age:
    min: "too young"
`)

	def, err := ruleset.NewYAMLParser().Parse(context.Background(), content)
	require.NoError(t, err)

	require.Len(t, def.Rules, 2)
	require.NotNil(t, def.Rules["required"].Message)
	assert.Equal(t, "", *def.Rules["required"].Message)
	assert.Nil(t, def.Rules["min"].Message)
	assert.Equal(t, validator.Expression{"required", "min:18"}, def.Fields["age"])
	assert.Equal(t, validator.Expression{"required"}, def.Fields["tags"])
	assert.Equal(t, "too young", def.Messages["age"]["min"])
	assert.Equal(t, []string{"age", "tags"}, def.FieldOrder)
}

func TestParsers_FieldOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	def, err := ruleset.NewYAMLParser().Parse(ctx, []byte("fields:\n  zip: a\n  city: a\n  area: a\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"zip", "city", "area"}, def.FieldOrder)

	def, err = ruleset.NewJSONParser().Parse(ctx, []byte(`{
		"rules": {"a": {"check": "true", "message": "{\"x\": [1]}"}},
		"fields": {"zip": "a", "city": ["a"], "area": "a"},
		"messages": {"zip": {"a": "nope"}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zip", "city", "area"}, def.FieldOrder)

	def, err = ruleset.NewJSONParser().Parse(ctx, []byte(`{"fields": null}`))
	require.NoError(t, err)
	assert.Empty(t, def.FieldOrder)
}

func TestYAMLParser_Errors(t *testing.T) {
	t.Parallel()

	_, err := ruleset.NewYAMLParser().Parse(context.Background(), []byte("rules: [unclosed"))
	assert.ErrorIs(t, err, ruleset.ErrFailedToParseYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ruleset.NewYAMLParser().Parse(ctx, []byte("rules: {}"))
	assert.ErrorIs(t, err, ruleset.ErrYAMLParsingCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJSONParser_Parse(t *testing.T) {
	t.Parallel()

	def, err := ruleset.NewJSONParser().Parse(context.Background(), []byte(`{
		"rules": {"required": {"check": "value == null"}},
		"fields": {"name": "required", "topic": ["required"]}
	}`))
	require.NoError(t, err)
	assert.Equal(t, validator.Expression{"required"}, def.Fields["name"])
	assert.Equal(t, validator.Expression{"required"}, def.Fields["topic"])

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := ruleset.NewJSONParser().Parse(context.Background(), []byte(`{"rulez": {}}`))
		assert.ErrorIs(t, err, ruleset.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := ruleset.NewJSONParser().Parse(ctx, []byte(`{}`))
		assert.ErrorIs(t, err, ruleset.ErrJSONParsingCancelled)
	})
}
