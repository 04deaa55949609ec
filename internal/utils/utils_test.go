package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestIsUpstreamUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"openai rate limit", fmt.Errorf("call: %w", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}), true},
		{"openai bad request", &openai.APIError{HTTPStatusCode: http.StatusBadRequest}, false},
		{"openai request error 503", &openai.RequestError{HTTPStatusCode: http.StatusServiceUnavailable, Err: errors.New("down")}, true},
		{"genai overloaded", fmt.Errorf("imagen: %w", genai.APIError{Code: http.StatusServiceUnavailable}), true},
		{"genai permission", genai.APIError{Code: http.StatusForbidden}, false},
		{"deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), true},
		{"other", errors.New("invalid api key"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUpstreamUnavailable(tt.err))
		})
	}
}

func TestDetermineImageType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

	assert.Equal(t, "image/webp", DetermineImageType("IMAGE/WEBP", png), "declared image type wins")
	assert.Equal(t, "image/png", DetermineImageType("", png))
	assert.Equal(t, "image/jpeg", DetermineImageType("application/octet-stream", jpeg))
	assert.NotContains(t, DetermineImageType("", []byte("hello")), "image/")
}
