package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrymomot/formrules/internal/cli"
)

func main() {
	err := cli.NewRootCmd().ExecuteContext(context.Background())
	code := cli.ExitCode(err)
	if err != nil && code == cli.ExitFailure {
		fmt.Fprintln(os.Stderr, "formrules:", err)
	}
	os.Exit(code)
}
