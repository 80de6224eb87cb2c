package ruleset

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"text/template"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

var templateAction = regexp.MustCompile(`\{\{.*?\}\}`)

// messageData is what message templates render against.
type messageData struct {
	Value  any
	Params []string
}

// compileMessage keeps plain strings as validator.Text. Strings containing "{{"
// become templates rendered with .Value and .Params, e.g.
//
//	"{{.Value}} is below {{index .Params 0}}"
//
// When rendering fails the message is the text with its actions removed, and
// the failure is logged.
func compileMessage(name, text string, log *slog.Logger) (validator.Message, error) {
	if !strings.Contains(text, "{{") {
		return validator.Text(text), nil
	}

	tmpl, err := template.New(name).Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("message %q: %w", name, err)
	}
	fallback := stripActions(text)

	return validator.MessageFunc(func(value any, params []string) string {
		var b strings.Builder
		if err := tmpl.Execute(&b, messageData{Value: value, Params: params}); err != nil {
			log.Warn("message template failed", slog.String("message", name), logger.Params(params), logger.Error(err))
			return fallback
		}
		return b.String()
	}), nil
}

func stripActions(text string) string {
	return strings.Join(strings.Fields(templateAction.ReplaceAllString(text, "")), " ")
}
