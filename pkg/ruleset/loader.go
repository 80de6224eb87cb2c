package ruleset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads, parses and builds the ruleset at path.
// The ruleset is named after the file without its extension.
func LoadFile(ctx context.Context, path string, opts ...Option) (*Ruleset, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	def, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return Build(nameFromPath(path), def, opts...)
}

// LoadDir loads every YAML and JSON file in dir (not recursively).
// Files with other extensions are skipped. Two files resolving to the same
// name, such as signup.yaml and signup.json, are rejected.
func LoadDir(ctx context.Context, dir string, opts ...Option) (map[string]*Ruleset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	sets := make(map[string]*Ruleset)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingDirectoryCancelled, err)
		}
		if entry.IsDir() || NewParserForFile(entry.Name()) == nil {
			continue
		}

		rs, err := LoadFile(ctx, filepath.Join(dir, entry.Name()), opts...)
		if err != nil {
			return nil, err
		}
		if _, exists := sets[rs.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRuleset, rs.Name)
		}
		sets[rs.Name] = rs
	}

	return sets, nil
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
