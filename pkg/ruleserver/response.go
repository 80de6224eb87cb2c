package ruleserver

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// ValidationResponse is the body of a validate call.
type ValidationResponse struct {
	Outcome string              `json:"outcome"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Field   string              `json:"field,omitempty"`
}

// ErrorDetail describes a request that never reached the engine.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorDetail `json:"error"`
}

type listResponse struct {
	Rulesets []string `json:"rulesets"`
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) error {
	return writeJSON(w, status, errorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// resultResponse maps a validation result to its HTTP status and body.
func resultResponse(res validator.Result) (int, ValidationResponse) {
	body := ValidationResponse{Outcome: res.Outcome.String()}
	switch {
	case res.Aborted():
		body.Field = res.Field
		return http.StatusBadRequest, body
	case res.Invalid():
		body.Errors = res.Errors.Map()
		return http.StatusUnprocessableEntity, body
	default:
		return http.StatusOK, body
	}
}
