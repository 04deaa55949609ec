package ai

import (
	"context"

	"aetherium_ai_server/internal/ai/prompts"
	"aetherium_ai_server/internal/types"
)

var businessNameFlow = newFlow[types.BusinessNameInput, types.BusinessNameOutput]("generateBusinessName", 0.9, func(in types.BusinessNameInput) (string, string) {
	return prompts.GetBusinessNamePrompt(in.Description, in.Keywords)
})

// GenerateBusinessName proposes at least ten business names.
func (g *Generator) GenerateBusinessName(ctx context.Context, in types.BusinessNameInput) (*types.BusinessNameOutput, error) {
	return businessNameFlow.run(ctx, g, in)
}
