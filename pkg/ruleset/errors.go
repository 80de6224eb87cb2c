package ruleset

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML ruleset")
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON ruleset")

	ErrUnsupportedFormat = errors.New("unsupported ruleset file format")
	ErrFailedToReadFile  = errors.New("failed to read ruleset file")
	ErrInvalidDefinition = errors.New("invalid ruleset definition")

	ErrFailedToReadDirectory     = errors.New("failed to read ruleset directory")
	ErrLoadingDirectoryCancelled = errors.New("loading ruleset directory cancelled")
	ErrDuplicateRuleset          = errors.New("duplicate ruleset name")
)
