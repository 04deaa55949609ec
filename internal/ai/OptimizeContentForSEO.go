package ai

import (
	"context"

	"aetherium_ai_server/internal/ai/prompts"
	"aetherium_ai_server/internal/types"
)

var seoFlow = newFlow[types.SEOInput, types.SEOOutput]("optimizeContentForSEO", 0.3, func(in types.SEOInput) (string, string) {
	return prompts.GetSEOOptimizationPrompt(in.Content, in.TargetKeyword)
})

// OptimizeContentForSEO scores content for a keyword, suggests fixes and rewrites it.
func (g *Generator) OptimizeContentForSEO(ctx context.Context, in types.SEOInput) (*types.SEOOutput, error) {
	return seoFlow.run(ctx, g, in)
}
