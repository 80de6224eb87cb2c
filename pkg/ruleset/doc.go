// Package ruleset loads declarative validation rulesets from YAML or JSON files.
//
// A ruleset file declares CEL rules, the rule expression of each field, and
// optional per-field message overrides:
//
//	rules:
//	  required:
//	    check: 'value == null || string(value) == ""'
//	    message: "is required"
//	  between:
//	    check: 'double(value) < double(params[0]) || double(value) > double(params[1])'
//	    message: "{{.Value}} is not between {{index .Params 0}} and {{index .Params 1}}"
//	  matches:
//	    check: 'size(params) == 0 || string(value) != params[0]'
//	    prepare: '[tokens[0], string(values["confirm_" + field])]'
//	fields:
//	  age: required|between:18,130
//	  password: [required, matches]
//	messages:
//	  password:
//	    matches: "passwords do not match"
//
// Messages containing "{{" are text/template templates rendered with .Value and
// .Params; other strings are used verbatim.
//
//	rs, err := ruleset.LoadFile(ctx, "rules/signup.yaml")
//	res := rs.Validate(ctx, values)
package ruleset
