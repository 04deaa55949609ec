package ai

import (
	"context"

	"aetherium_ai_server/internal/ai/prompts"
	"aetherium_ai_server/internal/types"
)

var videoScriptFlow = newFlow[types.VideoScriptInput, types.VideoScriptOutput]("generateVideoScript", 0.8, func(in types.VideoScriptInput) (string, string) {
	return prompts.GetVideoScriptPrompt(in.Topic, in.Platform, in.Duration)
})

// GenerateVideoScript produces a scene-by-scene script for the given platform and duration.
func (g *Generator) GenerateVideoScript(ctx context.Context, in types.VideoScriptInput) (*types.VideoScriptOutput, error) {
	return videoScriptFlow.run(ctx, g, in)
}
