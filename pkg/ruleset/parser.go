package ruleset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a ruleset file.
type Parser interface {
	Parse(ctx context.Context, content []byte) (*Definition, error)

	// SupportsFileExtension reports whether the parser handles ext, with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser from the file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	ext := filepath.Ext(filename)
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// YAMLParser parses YAML ruleset files.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(ctx context.Context, content []byte) (*Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var def Definition
	if err := yaml.Unmarshal(content, &def); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return &def, nil
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser parses JSON ruleset files. Unknown keys are rejected.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content []byte) (*Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	order, err := jsonFieldOrder(content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	def.FieldOrder = order
	return &def, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
