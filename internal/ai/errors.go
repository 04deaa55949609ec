package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input that failed its shape constraints. No model call was made.
	ErrValidation = errors.New("invalid input")
	// ErrGeneration marks any failure on the model side of a flow.
	ErrGeneration = errors.New("generation failed")
	// ErrNoImage is returned by the image flow when the model produced nothing.
	ErrNoImage = errors.New("No image was generated")
)

// Generation failure reasons, also used as metric status labels.
const (
	ReasonUpstream       = "upstream"
	ReasonEmptyResponse  = "empty_response"
	ReasonMalformedJSON  = "malformed_json"
	ReasonSchemaMismatch = "schema_mismatch"
	ReasonPromptTooLong  = "prompt_too_long"
	ReasonEmptyResult    = "empty_result"
)

// ValidationError names the first input field that violated its constraint.
type ValidationError struct {
	Field   string // JSON name, e.g. "brief" or "script[0].visuals"
	Rule    string // validator tag, e.g. "min"
	Message string // e.g. "must be at least 10 characters long"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// GenerationError reports why a flow could not produce a conforming output.
type GenerationError struct {
	Flow   string
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v (%s)", e.Flow, ErrGeneration, e.Reason)
	}
	return fmt.Sprintf("%s: %v (%s): %v", e.Flow, ErrGeneration, e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGeneration}
	}
	return []error{ErrGeneration, e.Err}
}
