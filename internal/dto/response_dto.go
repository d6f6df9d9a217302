package dto

import "github.com/lshigami/Sunbittern/internal/form"

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// ValidationErrorResponse re-renders a rejected submission: each offending
// field carries its own message so the client can annotate it in place.
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  []form.FieldError `json:"fields"`
}
