package ai

import (
	"context"

	"aetherium_ai_server/internal/ai/prompts"
	"aetherium_ai_server/internal/types"
)

var articleFlow = newFlow[types.ArticleBriefInput, types.ArticleOutput]("generateArticleFromBrief", 0.7, func(in types.ArticleBriefInput) (string, string) {
	return prompts.GetArticleFromBriefPrompt(in.Brief, in.SEOKeywords)
})

// GenerateArticleFromBrief writes a titled, sectioned article from a short brief.
func (g *Generator) GenerateArticleFromBrief(ctx context.Context, in types.ArticleBriefInput) (*types.ArticleOutput, error) {
	return articleFlow.run(ctx, g, in)
}
