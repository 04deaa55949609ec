package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GenAIConfig configures the Gemini and Imagen clients.
type GenAIConfig struct {
	APIKey     string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
	BaseURL    string       // optional, overrides the Gemini API endpoint
	HTTPClient *http.Client // optional, overrides Timeout
}

func newGenAIClient(ctx context.Context, cfg GenAIConfig) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	switch {
	case cfg.HTTPClient != nil:
		clientCfg.HTTPClient = cfg.HTTPClient
	case cfg.Timeout > 0:
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return client, nil
}

// GenAICompleter implements Completer on Gemini. Gemini gets the schema in
// the prompt and a JSON response MIME type.
type GenAICompleter struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGenAICompleter(ctx context.Context, cfg GenAIConfig, logger *zap.Logger) (*GenAICompleter, error) {
	client, err := newGenAIClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	model := cfg.TextModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GenAICompleter{client: client, model: model, logger: logger}, nil
}

func (c *GenAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	prompt := req.Prompt
	if req.Schema != nil {
		schema, err := json.Marshal(req.Schema)
		if err != nil {
			return "", fmt.Errorf("marshal response schema: %w", err)
		}
		prompt += "\n\nRespond with JSON that matches this JSON schema exactly:\n" + string(schema)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("GenAI generate content failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		c.logger.Warn("GenAI returned no candidates", zap.String("flow", req.Flow))
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}

// GenAIImager implements Imager on Imagen.
type GenAIImager struct {
	client *genai.Client
	model  string
}

func NewGenAIImager(ctx context.Context, cfg GenAIConfig) (*GenAIImager, error) {
	client, err := newGenAIClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	model := cfg.ImageModel
	if model == "" {
		model = "imagen-4.0-fast-generate-001"
	}
	return &GenAIImager{client: client, model: model}, nil
}

func (c *GenAIImager) GenerateImage(ctx context.Context, prompt string) (*Image, error) {
	resp, err := c.client.Models.GenerateImages(ctx, c.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI image generation failed: %w", err)
	}
	for _, generated := range resp.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			continue
		}
		return &Image{Data: generated.Image.ImageBytes, MIMEType: generated.Image.MIMEType}, nil
	}
	return nil, nil
}
