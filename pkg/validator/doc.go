// Package validator implements a declarative field-validation engine.
//
// Callers register named rules on an Engine, then validate a map of field values
// against a map of rule expressions. An expression is an ordered list of tokens,
// written either as a list or as a pipe-delimited string:
//
//	"required|between:1,10"
//
// Each token is a rule name optionally followed by ":" and comma-separated
// parameters. The package ships no rules of its own; every rule is supplied by
// the caller.
//
// # Rules
//
// A Rule reports a VIOLATION by returning true:
//
//	required := validator.RuleFunc(func(value any, _ []string) bool {
//		s, _ := value.(string)
//		return s == ""
//	})
//
// A rule may also implement Preparer (see WithPreparer) to rewrite its raw tokens
// before parameters are parsed. Preparers see every field of the current call, so a
// "matches" rule can inject another field's value as its parameter:
//
//	matches := validator.WithPreparer(
//		validator.RuleFunc(func(value any, params []string) bool {
//			return len(params) == 0 || value != params[0]
//		}),
//		validator.PrepareFunc(func(values map[string]any, field string, tokens []string) []string {
//			other, _ := values["confirm_"+field].(string)
//			return []string{tokens[0], other}
//		}),
//	)
//
// # Messages
//
// Messages are either literal Text or a MessageFunc that receives the failed value
// and the invocation params. Call-time Overrides win over registered defaults.
//
//	e := validator.New(
//		map[string]validator.Rule{"required": required, "matches": matches},
//		map[string]validator.Message{"required": validator.Text("is required")},
//	)
//
// # Execution
//
// Execute evaluates fields in ascending name order; ExecuteOrdered visits a given
// order first. Each field stops at its first violation and records exactly one
// message. The result has three outcomes:
//
//   - OutcomeValid: no errors.
//   - OutcomeInvalid: Errors holds one entry per failing field.
//   - OutcomeAborted: a field had no value, or the value false. The call is dropped
//     and no partial errors are returned; Field names the culprit.
//
// A token naming an unregistered rule counts as a violation. Its message is the
// resolved override or default when present, otherwise a diagnostic naming the rule.
//
// Rules and messages run without any engine lock held, so they may register rules
// or call Execute on the same engine. A call sees the registry as it was when the
// call started.
//
//	res := e.Execute(values, validator.FieldRules{
//		"email":    validator.Pipe("required"),
//		"password": validator.Pipe("required|matches"),
//	}, nil)
//	switch res.Outcome {
//	case validator.OutcomeInvalid:
//		for _, field := range res.Errors.Fields() {
//			fmt.Println(field, res.Errors.Get(field))
//		}
//	case validator.OutcomeAborted:
//		log.Printf("missing %s", res.Field)
//	}
package validator
