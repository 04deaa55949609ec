package ai

import (
	"context"

	"aetherium_ai_server/internal/ai/prompts"
	"aetherium_ai_server/internal/types"
)

var productDescriptionFlow = newFlow[types.ProductDescriptionInput, types.ProductDescriptionOutput]("generateProductDescription", 0.7, func(in types.ProductDescriptionInput) (string, string) {
	return prompts.GetProductDescriptionPrompt(in.ProductName, in.Features, in.Tone)
})

// GenerateProductDescription writes benefit-led product copy in the requested tone.
func (g *Generator) GenerateProductDescription(ctx context.Context, in types.ProductDescriptionInput) (*types.ProductDescriptionOutput, error) {
	return productDescriptionFlow.run(ctx, g, in)
}
