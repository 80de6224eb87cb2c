// Package celrule compiles rules written in the Common Expression Language into
// validator rules, so rule logic can live in configuration instead of Go code.
//
//	c, err := celrule.NewCompiler()
//	if err != nil {
//		return err
//	}
//	between, err := c.Compile("between", `int(value) < int(params[0]) || int(value) > int(params[1])`, "")
//	matches, err := c.Compile("matches",
//		`size(params) == 0 || string(value) != params[0]`,
//		`[tokens[0], string(values["confirm_" + field])]`,
//	)
//
// Check expressions return true for a violation, matching validator.Rule. They
// fail closed: evaluation errors count as violations and are logged.
package celrule
