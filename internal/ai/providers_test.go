package ai_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aetherium_ai_server/internal/ai"
	"aetherium_ai_server/internal/types"
	"aetherium_ai_server/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newOpenAIServer(t *testing.T, handler http.HandlerFunc) ai.OpenAIConfig {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return ai.OpenAIConfig{
		APIKey:     "sk-test",
		BaseURL:    srv.URL + "/v1",
		HTTPClient: srv.Client(),
	}
}

func TestOpenAICompleter_SendsSchemaResponseFormat(t *testing.T) {
	var body struct {
		Model          string `json:"model"`
		Messages       []struct{ Role, Content string }
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name   string `json:"name"`
				Strict bool   `json:"strict"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	cfg := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": productReply},
			}},
			"usage": map[string]int{"prompt_tokens": 120, "completion_tokens": 40, "total_tokens": 160},
		})
	})
	cfg.ChatModel = "gpt-4o-mini"

	g := ai.NewGenerator(ai.NewOpenAICompleter(cfg, zaptest.NewLogger(t)), nil)
	out, err := g.GenerateProductDescription(context.Background(), types.ProductDescriptionInput{
		ProductName: "AeroMug", Features: "keeps heat for 12 hours", Tone: "witty",
	})
	require.NoError(t, err)
	assert.Equal(t, "Meet AeroMug", out.Headline)

	assert.Equal(t, "gpt-4o-mini", body.Model)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Contains(t, body.Messages[1].Content, "Product Name: AeroMug")
	assert.Equal(t, "json_schema", body.ResponseFormat.Type)
	assert.Equal(t, "generateProductDescription", body.ResponseFormat.JSONSchema.Name)
	assert.True(t, body.ResponseFormat.JSONSchema.Strict)
}

func TestOpenAICompleter_EmptyChoices(t *testing.T) {
	cfg := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-2","object":"chat.completion","choices":[]}`))
	})

	reply, err := ai.NewOpenAICompleter(cfg, zaptest.NewLogger(t)).Complete(context.Background(), ai.CompletionRequest{Flow: "test", Prompt: "hi"})
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestOpenAICompleter_Overloaded(t *testing.T) {
	cfg := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"The engine is currently overloaded","type":"server_error"}}`))
	})

	g := ai.NewGenerator(ai.NewOpenAICompleter(cfg, zaptest.NewLogger(t)), nil)
	_, err := g.GenerateBusinessName(context.Background(), types.BusinessNameInput{Description: "Eco cleaning"})
	require.ErrorIs(t, err, ai.ErrGeneration)
	assert.True(t, utils.IsUpstreamUnavailable(err), "503 from the provider should surface as unavailable")
}

func TestOpenAIImager(t *testing.T) {
	var gotPrompt, gotFormat string
	cfg := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/images/generations", r.URL.Path)
		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotPrompt, _ = req["prompt"].(string)
		gotFormat, _ = req["response_format"].(string)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"created": time.Now().Unix(),
			"data":    []map[string]string{{"b64_json": base64.StdEncoding.EncodeToString(pngHeader)}},
		})
	})

	img, err := ai.NewOpenAIImager(cfg).GenerateImage(context.Background(), "a red fox")
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, pngHeader, img.Data)
	assert.Equal(t, "image/png", img.MIMEType)
	assert.Equal(t, "a red fox", gotPrompt)
	assert.Equal(t, "b64_json", gotFormat)
}

func TestOpenAIImager_NoData(t *testing.T) {
	cfg := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"created":1,"data":[]}`))
	})

	g := ai.NewGenerator(nil, ai.NewOpenAIImager(cfg))
	_, err := g.GenerateImageFromTextPrompt(context.Background(), types.ImageInput{Prompt: "a red fox"})
	assert.ErrorIs(t, err, ai.ErrNoImage)
}

func TestGenAIConstructors_RequireKey(t *testing.T) {
	_, err := ai.NewGenAICompleter(context.Background(), ai.GenAIConfig{}, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "API key is required")

	_, err = ai.NewGenAIImager(context.Background(), ai.GenAIConfig{})
	assert.ErrorContains(t, err, "API key is required")
}

func TestOpenAICompleter_Refusal(t *testing.T) {
	cfg := newOpenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-3","object":"chat.completion","choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"","refusal":"I can't help with that."}}]}`))
	})

	g := ai.NewGenerator(ai.NewOpenAICompleter(cfg, zaptest.NewLogger(t)), nil)
	_, err := g.GenerateBusinessName(context.Background(), types.BusinessNameInput{Description: "Eco cleaning"})
	require.ErrorIs(t, err, ai.ErrGeneration)
	assert.Equal(t, ai.ReasonUpstream, reasonOf(t, err))
	assert.ErrorContains(t, err, "I can't help with that.")
}

func newGenAIServer(t *testing.T, handler http.HandlerFunc) ai.GenAIConfig {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return ai.GenAIConfig{
		APIKey:     "gm-test",
		BaseURL:    srv.URL + "/",
		HTTPClient: srv.Client(),
	}
}

func TestGenAICompleter_RequestsJSON(t *testing.T) {
	var body struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
		SystemInstruction struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"systemInstruction"`
		GenerationConfig struct {
			ResponseMIMEType string `json:"responseMimeType"`
		} `json:"generationConfig"`
	}
	var path string
	cfg := newGenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content":      map[string]any{"role": "model", "parts": []map[string]string{{"text": productReply}}},
				"finishReason": "STOP",
			}},
		})
	})
	cfg.TextModel = "gemini-2.0-flash"

	completer, err := ai.NewGenAICompleter(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	out, err := ai.NewGenerator(completer, nil).GenerateProductDescription(context.Background(), types.ProductDescriptionInput{
		ProductName: "AeroMug", Features: "keeps heat for 12 hours", Tone: "witty",
	})
	require.NoError(t, err)
	assert.Equal(t, "Meet AeroMug", out.Headline)

	assert.True(t, strings.HasSuffix(path, "models/gemini-2.0-flash:generateContent"), path)
	assert.Equal(t, "application/json", body.GenerationConfig.ResponseMIMEType)
	require.NotEmpty(t, body.Contents)
	require.NotEmpty(t, body.Contents[0].Parts)
	prompt := body.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Product Name: AeroMug")
	assert.Contains(t, prompt, "Respond with JSON that matches this JSON schema exactly")
	assert.Contains(t, prompt, `"headline"`)
	require.NotEmpty(t, body.SystemInstruction.Parts)
	assert.NotEmpty(t, body.SystemInstruction.Parts[0].Text)
}

func TestGenAIImager(t *testing.T) {
	var path string
	cfg := newGenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"predictions": []map[string]string{{
				"bytesBase64Encoded": base64.StdEncoding.EncodeToString(pngHeader),
				"mimeType":           "image/png",
			}},
		})
	})
	cfg.ImageModel = "imagen-4.0-fast-generate-001"

	imager, err := ai.NewGenAIImager(context.Background(), cfg)
	require.NoError(t, err)
	out, err := ai.NewGenerator(nil, imager).GenerateImageFromTextPrompt(context.Background(), types.ImageInput{Prompt: "a red fox"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.ImageURL, "data:image/png;base64,"), out.ImageURL)
	assert.True(t, strings.HasSuffix(path, "models/imagen-4.0-fast-generate-001:predict"), path)
}

func TestGenAIImager_NoImages(t *testing.T) {
	cfg := newGenAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions": []}`))
	})

	imager, err := ai.NewGenAIImager(context.Background(), cfg)
	require.NoError(t, err)

	img, err := imager.GenerateImage(context.Background(), "a red fox")
	require.NoError(t, err)
	assert.Nil(t, img)

	_, err = ai.NewGenerator(nil, imager).GenerateImageFromTextPrompt(context.Background(), types.ImageInput{Prompt: "a red fox"})
	assert.ErrorIs(t, err, ai.ErrNoImage)
}
