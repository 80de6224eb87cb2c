package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/internal/cli"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		values string
		code   int
		output string
	}{
		{"valid", "testdata/valid.json", cli.ExitValid, "valid\n"},
		{"invalid", "testdata/invalid.yaml", cli.ExitInvalid, "email: is required\nage: must be at least 18\n"},
		{"aborted", "testdata/missing.json", cli.ExitAborted, "aborted: field \"age\" is missing\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", "check", "--rules", "testdata/signup.yaml", "--values", tt.values)
			assert.Equal(t, tt.code, cli.ExitCode(err))
			assert.Equal(t, tt.output, out)
		})
	}
}

func TestCheck_JSONOutput(t *testing.T) {
	out, err := run(t, "", "check", "-r", "testdata/signup.yaml", "-f", "testdata/invalid.yaml", "-o", "json")
	assert.Equal(t, cli.ExitInvalid, cli.ExitCode(err))

	var body struct {
		Outcome string              `json:"outcome"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "invalid", body.Outcome)
	assert.Equal(t, []string{"is required"}, body.Errors["email"])
}

func TestCheck_Stdin(t *testing.T) {
	out, err := run(t, `{"email":"a@b.c","age":40}`, "check", "-r", "testdata/signup.yaml", "-f", "-")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)
}

func TestCheck_Failures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing flags", []string{"check"}},
		{"missing rules file", []string{"check", "-r", "testdata/nope.yaml", "-f", "testdata/valid.json"}},
		{"values not an object", []string{"check", "-r", "testdata/signup.yaml", "-f", "testdata/list.json"}},
		{"bad output format", []string{"check", "-r", "testdata/signup.yaml", "-f", "testdata/valid.json", "-o", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitValid, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitAborted, cli.ExitCode(&cli.ExitError{Code: cli.ExitAborted}))
	assert.Equal(t, cli.ExitFailure, cli.ExitCode(errors.New("boom")))
}
