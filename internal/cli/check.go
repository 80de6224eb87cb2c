package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/ruleserver"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

var errUnsupportedValues = errors.New("values must be a JSON or YAML object")

func newCheckCmd(root *rootOptions) *cobra.Command {
	var rulesPath, valuesPath, output string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a values file against a ruleset",
		Long: `Validate a values file against a ruleset file.

Exit status is 0 when the values are valid, 1 when some fields are invalid,
2 when a field was missing and validation aborted, and 3 on any other error.
Pass "-" as the values file to read JSON from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rs, err := ruleset.LoadFile(ctx, rulesPath, ruleset.WithLogger(root.logger))
			if err != nil {
				return err
			}

			values, err := readValues(valuesPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			res := rs.Validate(ctx, values)
			if err := printResult(cmd.OutOrStdout(), output, res); err != nil {
				return err
			}

			switch {
			case res.Aborted():
				return &ExitError{Code: ExitAborted}
			case res.Invalid():
				return &ExitError{Code: ExitInvalid}
			default:
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "ruleset file (.yaml, .yml or .json)")
	cmd.Flags().StringVarP(&valuesPath, "values", "f", "", `values file (.yaml, .yml or .json), or "-" for stdin`)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("values")

	return cmd
}

func readValues(path string, stdin io.Reader) (map[string]any, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}

	var values map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &values)
	default:
		err = json.NewDecoder(bytes.NewReader(content)).Decode(&values)
	}
	if err != nil {
		return nil, errors.Join(errUnsupportedValues, err)
	}
	if values == nil {
		return nil, errUnsupportedValues
	}
	return values, nil
}

func printResult(w io.Writer, format string, res validator.Result) error {
	switch format {
	case "json":
		body := ruleserver.ValidationResponse{Outcome: res.Outcome.String(), Field: res.Field}
		if res.Invalid() {
			body.Errors = res.Errors.Map()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(body)
	case "text":
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}

	switch {
	case res.Aborted():
		_, err := fmt.Fprintf(w, "aborted: field %q is missing\n", res.Field)
		return err
	case res.Invalid():
		for _, e := range res.Errors {
			if _, err := fmt.Fprintf(w, "%s: %s\n", e.Field, e.Message); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := fmt.Fprintln(w, "valid")
		return err
	}
}
