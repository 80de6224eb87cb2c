package validator

import "fmt"

// Message produces the text recorded for a violation.
// A nil Message means "no message"; Text("") is a defined, empty message.
type Message interface {
	Render(value any, params []string) string
}

// Text is a literal message.
type Text string

func (t Text) Render(any, []string) string {
	return string(t)
}

// MessageFunc builds a message from the failed value and the invocation params.
// A nil MessageFunc renders an empty message.
type MessageFunc func(value any, params []string) string

func (f MessageFunc) Render(value any, params []string) string {
	if f == nil {
		return ""
	}
	return f(value, params)
}

// Overrides holds call-time messages keyed by field, then by rule name.
// They take precedence over registry defaults.
type Overrides map[string]map[string]Message

// Set stores a message override and returns the receiver for chaining.
func (o Overrides) Set(field, rule string, msg Message) Overrides {
	if o[field] == nil {
		o[field] = make(map[string]Message)
	}
	o[field][rule] = msg
	return o
}

func undefinedMessage(name string) Text {
	return Text(name + " was undefined")
}

func unknownRuleMessage(name string) string {
	return fmt.Sprintf("no validator registered for rule '%s'", name)
}

func unresolvedMessage(name string) string {
	return fmt.Sprintf("validation failed for rule '%s'", name)
}
