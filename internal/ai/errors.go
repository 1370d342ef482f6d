// Package ai turns raw model output into validated recipes and meal plans.
// Extraction and validation are pure functions of their input: the same text
// always yields the same result or the same typed error, so failures are
// surfaced to the caller instead of retried.
package ai

import "fmt"

// ValidationKind classifies schema violations
type ValidationKind string

const (
	MissingField ValidationKind = "missing_field"
	InvalidEnum  ValidationKind = "invalid_enum"
	InvalidDay   ValidationKind = "invalid_day"
	InvalidType  ValidationKind = "invalid_type"
	InvalidSteps ValidationKind = "invalid_steps"
	OutOfRange   ValidationKind = "out_of_range"
)

// ExtractionError reports that no structured object could be recovered from
// the model's text response.
type ExtractionError struct {
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Reason, e.Err)
	}
	return "extraction failed: " + e.Reason
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ValidationError reports a schema violation in a decoded tree or a
// directly submitted entity.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed (%s): %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed (%s): %s", e.Kind, e.Message)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Kind: MissingField, Field: field, Message: "required field is missing"}
}

func invalidType(field, want string) *ValidationError {
	return &ValidationError{Kind: InvalidType, Field: field, Message: "expected " + want}
}

// UpstreamError reports that the generative model or the storage
// collaborator was unreachable or timed out. Unlike extraction and
// validation errors it is eligible for caller-directed retry.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure during %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
