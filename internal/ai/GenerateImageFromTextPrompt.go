package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"aetherium_ai_server/internal/types"
	"aetherium_ai_server/internal/utils"

	"go.uber.org/zap"
)

const imageFlowName = "generateImageFromTextPrompt"

// GenerateImageFromTextPrompt sends the raw prompt, and nothing else, to the
// image model and returns the first image as a data URI.
func (g *Generator) GenerateImageFromTextPrompt(ctx context.Context, in types.ImageInput) (*types.ImageOutput, error) {
	start := time.Now()
	log := g.logger.With(zap.String("flow", imageFlowName))

	if err := validateInput(in); err != nil {
		observeFlow(imageFlowName, statusValidation, start)
		log.Info("Flow input rejected", zap.Error(err))
		return nil, err
	}

	img, err := g.imager.GenerateImage(ctx, in.Prompt)
	if err != nil {
		return nil, g.fail(log, imageFlowName, start, &GenerationError{Flow: imageFlowName, Reason: ReasonUpstream, Err: err})
	}
	if img == nil || len(img.Data) == 0 {
		return nil, g.fail(log, imageFlowName, start, &GenerationError{Flow: imageFlowName, Reason: ReasonEmptyResult, Err: ErrNoImage})
	}

	mimeType := utils.DetermineImageType(img.MIMEType, img.Data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, g.fail(log, imageFlowName, start, &GenerationError{
			Flow:   imageFlowName,
			Reason: ReasonSchemaMismatch,
			Err:    fmt.Errorf("model returned %s data, not an image", mimeType),
		})
	}

	out := types.ImageOutput{
		ImageURL: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data),
	}
	if err := validateOutput(&out); err != nil {
		return nil, g.fail(log, imageFlowName, start, &GenerationError{Flow: imageFlowName, Reason: ReasonSchemaMismatch, Err: err})
	}

	observeFlow(imageFlowName, statusSuccess, start)
	log.Info("Flow completed", zap.String("mime_type", mimeType), zap.Int("size_bytes", len(img.Data)))
	return &out, nil
}
