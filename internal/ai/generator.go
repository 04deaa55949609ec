package ai

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"
)

// CompletionRequest is one structured text generation call.
type CompletionRequest struct {
	Flow        string                 // flow name, also used as the schema name
	System      string                 // system instruction
	Prompt      string                 // rendered user prompt
	Schema      *jsonschema.Definition // shape the reply must decode into
	Temperature float32
}

// Completer sends a rendered prompt to a hosted text model and returns its raw
// reply. An empty reply is not an error at this level.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Image is raw image data as returned by an image model.
type Image struct {
	Data     []byte
	MIMEType string
}

// Imager sends a raw prompt to a hosted image model. It returns (nil, nil)
// when the model produced no image.
type Imager interface {
	GenerateImage(ctx context.Context, prompt string) (*Image, error)
}

// TokenCounter counts prompt tokens for the prompt budget.
type TokenCounter interface {
	CountTokens(text string) (int, error)
}

// Generator runs the marketing flows. It holds no per-request state and is
// safe for concurrent use.
type Generator struct {
	completer Completer
	imager    Imager
	logger    *zap.Logger

	tokens    TokenCounter
	maxTokens int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for flow outcomes.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithPromptBudget rejects rendered prompts longer than maxTokens before they
// are sent. A zero budget or nil counter disables the check.
func WithPromptBudget(counter TokenCounter, maxTokens int) Option {
	return func(g *Generator) {
		g.tokens = counter
		g.maxTokens = maxTokens
	}
}

func NewGenerator(completer Completer, imager Imager, opts ...Option) *Generator {
	g := &Generator{
		completer: completer,
		imager:    imager,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
