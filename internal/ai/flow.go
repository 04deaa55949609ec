package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aetherium_ai_server/internal/ai/utils"

	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"
)

// flow is one prompt template bound to an input and an output record.
type flow[In any, Out any] struct {
	name        string
	render      func(In) (prompt string, system string)
	schema      *jsonschema.Definition
	temperature float32
}

func newFlow[In any, Out any](name string, temperature float32, render func(In) (string, string)) flow[In, Out] {
	var zero Out
	schema, err := jsonschema.GenerateSchemaForType(zero)
	if err != nil {
		panic(fmt.Sprintf("ai: schema for flow %s: %v", name, err))
	}
	return flow[In, Out]{name: name, render: render, schema: schema, temperature: temperature}
}

// run validates in, renders the template, calls the model and returns the
// decoded, validated reply. Input errors are reported before any model call.
func (f flow[In, Out]) run(ctx context.Context, g *Generator, in In) (*Out, error) {
	start := time.Now()
	log := g.logger.With(zap.String("flow", f.name))

	if err := validateInput(in); err != nil {
		observeFlow(f.name, statusValidation, start)
		log.Info("Flow input rejected", zap.Error(err))
		return nil, err
	}

	prompt, system := f.render(in)
	if err := g.checkPromptBudget(f.name, prompt); err != nil {
		return nil, g.fail(log, f.name, start, err)
	}
	log.Debug("Sending flow prompt", zap.Int("prompt_bytes", len(prompt)))

	raw, err := g.completer.Complete(ctx, CompletionRequest{
		Flow:        f.name,
		System:      system,
		Prompt:      prompt,
		Schema:      f.schema,
		Temperature: f.temperature,
	})
	if err != nil {
		return nil, g.fail(log, f.name, start, &GenerationError{Flow: f.name, Reason: ReasonUpstream, Err: err})
	}
	if strings.TrimSpace(raw) == "" {
		return nil, g.fail(log, f.name, start, &GenerationError{Flow: f.name, Reason: ReasonEmptyResponse})
	}

	payload, err := utils.ExtractJSON(raw)
	if err != nil {
		log.Debug("Unparsable model output", zap.String("raw", raw))
		return nil, g.fail(log, f.name, start, &GenerationError{Flow: f.name, Reason: ReasonMalformedJSON, Err: err})
	}

	payload = utils.Unwrap(payload)
	var out Out
	if err := utils.DecodeStrict(payload, &out); err != nil {
		return nil, g.fail(log, f.name, start, &GenerationError{Flow: f.name, Reason: ReasonSchemaMismatch, Err: err})
	}
	// strict decoding rejects unknown keys but zero-fills missing ones;
	// the schema's required list catches those
	if err := jsonschema.VerifySchemaAndUnmarshal(*f.schema, payload, &out); err != nil {
		return nil, g.fail(log, f.name, start, &GenerationError{Flow: f.name, Reason: ReasonSchemaMismatch, Err: err})
	}
	if err := validateOutput(&out); err != nil {
		return nil, g.fail(log, f.name, start, &GenerationError{Flow: f.name, Reason: ReasonSchemaMismatch, Err: err})
	}

	observeFlow(f.name, statusSuccess, start)
	log.Info("Flow completed", zap.Duration("latency", time.Since(start)))
	return &out, nil
}

func (g *Generator) checkPromptBudget(flowName, prompt string) error {
	if g.tokens == nil || g.maxTokens <= 0 {
		return nil
	}
	n, err := g.tokens.CountTokens(prompt)
	if err != nil {
		// the budget is a guard, not a dependency
		g.logger.Warn("Prompt token count unavailable", zap.String("flow", flowName), zap.Error(err))
		return nil
	}
	flowPromptTokens.WithLabelValues(flowName).Observe(float64(n))
	if n > g.maxTokens {
		return &GenerationError{
			Flow:   flowName,
			Reason: ReasonPromptTooLong,
			Err:    fmt.Errorf("prompt is %d tokens, limit is %d", n, g.maxTokens),
		}
	}
	return nil
}

// fail records a generation failure and returns err unchanged.
func (g *Generator) fail(log *zap.Logger, flowName string, start time.Time, err error) error {
	status := ReasonUpstream
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		status = genErr.Reason
	}
	observeFlow(flowName, status, start)
	log.Warn("Flow failed", zap.String("reason", status), zap.Error(err))
	return err
}
