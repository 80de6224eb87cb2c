package validator

// Outcome classifies a validation call.
type Outcome uint8

const (
	// OutcomeValid means every field passed; Errors is empty.
	OutcomeValid Outcome = iota
	// OutcomeInvalid means at least one field failed; Errors is non-empty.
	OutcomeInvalid
	// OutcomeAborted means a field had no usable value and the whole call was dropped.
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Execute call.
// An aborted result never carries errors: partial findings are discarded.
type Result struct {
	Outcome Outcome
	Errors  ValidationErrors
	// Field is the field that aborted the call. Empty unless Outcome is OutcomeAborted.
	Field string
}

func (r Result) Valid() bool   { return r.Outcome == OutcomeValid }
func (r Result) Invalid() bool { return r.Outcome == OutcomeInvalid }
func (r Result) Aborted() bool { return r.Outcome == OutcomeAborted }

// Err converts the result into an error: nil when valid, ValidationErrors when invalid,
// and *AbortError when aborted.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeInvalid:
		return r.Errors
	case OutcomeAborted:
		return &AbortError{Field: r.Field}
	default:
		return nil
	}
}

func valid(errs ValidationErrors) Result {
	if errs.IsEmpty() {
		return Result{Outcome: OutcomeValid, Errors: ValidationErrors{}}
	}
	return Result{Outcome: OutcomeInvalid, Errors: errs}
}

func aborted(field string) Result {
	return Result{Outcome: OutcomeAborted, Field: field}
}
