package models

import (
	"strings"

	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/validator"
)

// ValidationError reports malformed or out-of-range input. It is raised
// before any store access.
type ValidationError struct {
	Kind   string                 `json:"kind"`
	Errors []validator.FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed for " + e.Kind + ": " + strings.Join(msgs, "; ")
}

func unknownKind(kind string) *ValidationError {
	return &ValidationError{
		Kind:   kind,
		Errors: []validator.FieldError{{Message: "unknown entity kind"}},
	}
}
