package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// IsUpstreamUnavailable reports whether err means the model provider is
// overloaded or rate limiting, as opposed to rejecting the request. The API
// layer uses it to pick 503 over 502; nothing retries automatically.
func IsUpstreamUnavailable(err error) bool {
	if err == nil {
		return false
	}

	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return unavailableStatus(openAIErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return unavailableStatus(reqErr.HTTPStatusCode)
	}
	var genaiErr genai.APIError
	if errors.As(err, &genaiErr) {
		return unavailableStatus(genaiErr.Code)
	}
	var genaiErrPtr *genai.APIError
	if errors.As(err, &genaiErrPtr) {
		return unavailableStatus(genaiErrPtr.Code)
	}

	errMsg := strings.ToLower(err.Error())
	for _, s := range []string{
		"rate limit",
		"503 service unavailable",
		"504 gateway timeout",
		"timeout",
		"connection reset by peer",
		"context deadline exceeded",
	} {
		if strings.Contains(errMsg, s) {
			return true
		}
	}
	return false
}

func unavailableStatus(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusServiceUnavailable ||
		code == http.StatusGatewayTimeout
}

// DetermineImageType returns the declared MIME type when the provider gave an
// image type, and otherwise sniffs it from the bytes.
func DetermineImageType(declared string, data []byte) string {
	declared = strings.ToLower(strings.TrimSpace(declared))
	if strings.HasPrefix(declared, "image/") {
		return declared
	}
	return mimetype.Detect(data).String()
}
