package ai

import (
	"context"

	"aetherium_ai_server/internal/ai/prompts"
	"aetherium_ai_server/internal/types"
)

var personaFlow = newFlow[types.PersonaInput, types.PersonaOutput]("generateAIPersona", 0.8, func(in types.PersonaInput) (string, string) {
	return prompts.GetAIPersonaPrompt(in.ProductInfo, in.TargetAudience)
})

func (g *Generator) GenerateAIPersona(ctx context.Context, in types.PersonaInput) (*types.PersonaOutput, error) {
	return personaFlow.run(ctx, g, in)
}
