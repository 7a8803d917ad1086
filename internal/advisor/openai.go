package advisor

import (
	"context"
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIAdvisor is the alternate Advisor backend, selected by
// configuration. The OpenAI API has no per-category safety overrides, so
// only the temperature half of the generation contract applies to it.
type OpenAIAdvisor struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIAdvisor creates an advisor backed by the OpenAI chat API.
func NewOpenAIAdvisor(apiKey, model string, logger *zap.Logger) *OpenAIAdvisor {
	return &OpenAIAdvisor{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}
}

// RequestAdvice implements Advisor.
func (a *OpenAIAdvisor) RequestAdvice(ctx context.Context, interests, skills, education, goals string) (string, error) {
	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: BuildPrompt(interests, skills, education, goals),
				},
			},
			Temperature: Temperature,
		},
	)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) ||
			errors.Is(err, context.DeadlineExceeded) ||
			errors.Is(err, context.Canceled) {
			a.logger.Error("OpenAI call failed",
				zap.Error(err),
				zap.String("model", a.model))
			return "", &ServiceUnavailableError{Err: err}
		}
		a.logger.Error("Unexpected OpenAI failure",
			zap.Error(err),
			zap.String("model", a.model))
		return "", &UnexpectedError{Err: err}
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
