package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIConfig configures the OpenAI (or OpenAI-compatible) clients.
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string // optional, e.g. an Azure or local gateway
	ChatModel  string
	ImageModel string
	Timeout    time.Duration
	HTTPClient *http.Client // optional, overrides Timeout
}

func newOpenAIClient(cfg OpenAIConfig) *openai.Client {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	switch {
	case cfg.HTTPClient != nil:
		config.HTTPClient = cfg.HTTPClient
	case cfg.Timeout > 0:
		config.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return openai.NewClientWithConfig(config)
}

// OpenAICompleter implements Completer with chat completions constrained by a
// JSON schema response format.
type OpenAICompleter struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAICompleter(cfg OpenAIConfig, logger *zap.Logger) *OpenAICompleter {
	model := cfg.ChatModel
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAICompleter{client: newOpenAIClient(cfg), model: model, logger: logger}
}

func (c *OpenAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
	}
	if req.Schema != nil {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Flow,
				Schema: req.Schema,
				Strict: true,
			},
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Refusal != "" {
		return "", fmt.Errorf("openai refused the request: %s", resp.Choices[0].Message.Refusal)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.Warn("OpenAI returned empty response", zap.String("flow", req.Flow), zap.Any("usage", resp.Usage))
		return "", nil
	}

	c.logger.Debug("OpenAI completion",
		zap.String("flow", req.Flow),
		zap.String("model", c.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)
	return resp.Choices[0].Message.Content, nil
}

// OpenAIImager implements Imager with the images API, asking for base64 data
// so the result never depends on a short-lived URL.
type OpenAIImager struct {
	client *openai.Client
	model  string
}

func NewOpenAIImager(cfg OpenAIConfig) *OpenAIImager {
	model := cfg.ImageModel
	if model == "" {
		model = openai.CreateImageModelDallE3
	}
	return &OpenAIImager{client: newOpenAIClient(cfg), model: model}
}

func (c *OpenAIImager) GenerateImage(ctx context.Context, prompt string) (*Image, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          c.model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image generation failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, errors.Join(errors.New("openai returned undecodable image data"), err)
	}
	return &Image{Data: data, MIMEType: "image/png"}, nil
}
