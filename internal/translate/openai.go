package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider translates text using the OpenAI chat completion API
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates an OpenAI-backed translation provider
func NewOpenAIProvider(config *Config) *OpenAIProvider {
	model := config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIProvider{
		client: openai.NewClient(config.OpenAIKey),
		model:  model,
	}
}

// Translate translates English text into the language identified by langCode
func (p *OpenAIProvider) Translate(ctx context.Context, text, langCode string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the English text '%s' to the language with ISO code '%s'. Respond with only the translation, nothing else.",
					text, langCode),
			},
		},
		MaxTokens:   100,
		Temperature: 0.3,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", fmt.Errorf("empty translation returned")
	}

	return translation, nil
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}
