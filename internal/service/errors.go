package service

import "strings"

// ValidationError reports input rejected before any collaborator call.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewMissingFieldsError names every absent or blank required field.
func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: "Missing required fields: " + strings.Join(fields, ", "),
	}
}

// UpstreamError reports a collaborator failure with its message attached.
type UpstreamError struct {
	Service string
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
