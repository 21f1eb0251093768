// Package narrator talks to the text-generation service that writes the
// story. Two providers are supported, the OpenAI chat-completion API and a
// local Ollama server; both send the same role-tagged message pair and map
// failures onto the shared error taxonomy.
package narrator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"althistory/internal/model"
)

// Instruction and sampling parameters sent with every request. The token cap
// is short for choice lists and larger for consequence narration.
const (
	systemPrompt = "You are an expert historian and creative writer specializing in alternate history scenarios. Always respond with valid JSON."

	choicesMaxTokens     = 500
	consequenceMaxTokens = 800
	samplingTemperature  = 0.7
)

// Config holds the connection settings for a narration provider. Values are
// injected by the caller; nothing is read from the environment here.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	OllamaURL string
	Timeout   time.Duration
}

// Client generates narration with a single blocking round-trip per call and
// no automatic retries.
type Client interface {
	// GenerateChoices returns the service's raw textual output for a choice
	// prompt. Interpreting the text as structured data is the caller's
	// responsibility. Fails with model.ErrServiceFailure when the call
	// itself fails.
	GenerateChoices(ctx context.Context, prompt string) (string, error)

	// GenerateConsequence sends a consequence prompt and decodes the reply
	// into a typed record. Fails with model.ErrServiceFailure on transport
	// failure and model.ErrMalformedResponse when the reply does not decode.
	GenerateConsequence(ctx context.Context, prompt string) (model.Consequence, error)
}

// New builds the client for the configured provider.
func New(cfg Config, logger *zap.Logger) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		return &openAIClient{
			client:    openai.NewClientWithConfig(clientCfg),
			model:     cfg.Model,
			estimator: &promptEstimator{model: cfg.Model},
			logger:    logger.With(zap.String("provider", "openai"), zap.String("model", cfg.Model)),
		}, nil
	case "ollama":
		return newOllamaClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown narration provider %q", cfg.Provider)
	}
}

type openAIClient struct {
	client    *openai.Client
	model     string
	estimator *promptEstimator
	logger    *zap.Logger
}

func (c *openAIClient) GenerateChoices(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt, choicesMaxTokens)
}

func (c *openAIClient) GenerateConsequence(ctx context.Context, prompt string) (model.Consequence, error) {
	raw, err := c.complete(ctx, prompt, consequenceMaxTokens)
	if err != nil {
		return model.Consequence{}, err
	}
	return decodeConsequence(raw)
}

func (c *openAIClient) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if ce := c.logger.Check(zap.DebugLevel, "sending narration request"); ce != nil {
		ce.Write(
			zap.Int("max_tokens", maxTokens),
			zap.Int("estimated_prompt_tokens", c.estimator.count(prompt)),
		)
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: samplingTemperature,
	})
	if err != nil {
		c.logger.Warn("narration request failed",
			zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return "", fmt.Errorf("%w: %v", model.ErrServiceFailure, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.logger.Warn("narration request returned no content",
			zap.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("%w: empty completion", model.ErrServiceFailure)
	}

	text := resp.Choices[0].Message.Content
	c.logger.Debug("narration response received",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("length", len(text)),
		zap.Int("total_tokens", resp.Usage.TotalTokens))
	return text, nil
}
