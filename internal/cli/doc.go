// Package cli implements the formrules command line: "check" validates one
// values file against a ruleset and reports through its exit status, "serve"
// exposes a directory of rulesets over HTTP.
package cli
