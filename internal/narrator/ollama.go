package narrator

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"

	"althistory/internal/model"
)

type ollamaClient struct {
	client    *api.Client
	model     string
	estimator *promptEstimator
	logger    *zap.Logger
}

// newOllamaClient connects to a local Ollama server. api.NewClient wants the
// server root without a /v1 suffix.
func newOllamaClient(cfg Config, logger *zap.Logger) (Client, error) {
	base := strings.TrimSuffix(cfg.OllamaURL, "/")
	base = strings.TrimSuffix(base, "/v1")
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse ollama server url %q: %w", cfg.OllamaURL, err)
	}
	return &ollamaClient{
		client:    api.NewClient(parsed, &http.Client{Timeout: cfg.Timeout}),
		model:     cfg.Model,
		estimator: &promptEstimator{model: cfg.Model},
		logger:    logger.With(zap.String("provider", "ollama"), zap.String("model", cfg.Model)),
	}, nil
}

func (c *ollamaClient) GenerateChoices(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt, choicesMaxTokens)
}

func (c *ollamaClient) GenerateConsequence(ctx context.Context, prompt string) (model.Consequence, error) {
	raw, err := c.complete(ctx, prompt, consequenceMaxTokens)
	if err != nil {
		return model.Consequence{}, err
	}
	return decodeConsequence(raw)
}

func (c *ollamaClient) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if ce := c.logger.Check(zap.DebugLevel, "sending narration request"); ce != nil {
		ce.Write(
			zap.Int("max_tokens", maxTokens),
			zap.Int("estimated_prompt_tokens", c.estimator.count(prompt)),
		)
	}

	stream := false
	req := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": samplingTemperature,
			"num_predict": maxTokens,
		},
	}

	start := time.Now()
	var resp api.ChatResponse
	err := c.client.Chat(ctx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	if err != nil {
		c.logger.Warn("narration request failed",
			zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return "", fmt.Errorf("%w: %v", model.ErrServiceFailure, err)
	}
	if resp.Message.Content == "" {
		c.logger.Warn("narration request returned no content",
			zap.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("%w: empty completion", model.ErrServiceFailure)
	}

	c.logger.Debug("narration response received",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("length", len(resp.Message.Content)),
		zap.Int("total_tokens", resp.PromptEvalCount+resp.EvalCount))
	return resp.Message.Content, nil
}
