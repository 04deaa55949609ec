package ai_test

import (
	"errors"
	"testing"

	"aetherium_ai_server/internal/ai"

	"github.com/stretchr/testify/assert"
)

func TestGenerationError(t *testing.T) {
	cause := errors.New("boom")
	err := error(&ai.GenerationError{Flow: "generateVideoScript", Reason: ai.ReasonUpstream, Err: cause})

	assert.ErrorIs(t, err, ai.ErrGeneration)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ai.ErrValidation)
	assert.Equal(t, "generateVideoScript: generation failed (upstream): boom", err.Error())

	bare := &ai.GenerationError{Flow: "generateVideoScript", Reason: ai.ReasonEmptyResponse}
	assert.ErrorIs(t, bare, ai.ErrGeneration)
	assert.Equal(t, "generateVideoScript: generation failed (empty_response)", bare.Error())
}

func TestValidationError(t *testing.T) {
	err := error(&ai.ValidationError{Field: "topic", Rule: "min", Message: "must be at least 10 characters long"})

	assert.ErrorIs(t, err, ai.ErrValidation)
	assert.NotErrorIs(t, err, ai.ErrGeneration)
	assert.Equal(t, "invalid input: topic must be at least 10 characters long", err.Error())
}
