package advisor

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiAdvisor is the primary Advisor backend. It sets the two
// harm-category safety overrides to BLOCK_NONE on every call, matching
// the fixed generation contract.
type GeminiAdvisor struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiAdvisor creates an advisor backed by the Gemini API.
func NewGeminiAdvisor(ctx context.Context, apiKey, model string, logger *zap.Logger) (*GeminiAdvisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiAdvisor{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Close releases the underlying API client.
func (a *GeminiAdvisor) Close() error {
	return a.client.Close()
}

// RequestAdvice implements Advisor.
func (a *GeminiAdvisor) RequestAdvice(ctx context.Context, interests, skills, education, goals string) (string, error) {
	m := a.client.GenerativeModel(a.model)
	m.SetTemperature(Temperature)
	m.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(BuildPrompt(interests, skills, education, goals)))
	if err != nil {
		return "", a.classify(err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// classify maps a call failure onto the package taxonomy: API and
// timeout errors mean the service is unavailable, everything else is
// unexpected.
func (a *GeminiAdvisor) classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		a.logger.Error("Gemini call failed",
			zap.Error(err),
			zap.String("model", a.model))
		return &ServiceUnavailableError{Err: err}
	}
	a.logger.Error("Unexpected Gemini failure",
		zap.Error(err),
		zap.String("model", a.model))
	return &UnexpectedError{Err: err}
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
