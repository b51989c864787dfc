package translate

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider translates text using the Google Gemini API
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed translation provider
func NewGeminiProvider(config *Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Translate translates English text into the language identified by langCode
func (p *GeminiProvider) Translate(ctx context.Context, text, langCode string) (string, error) {
	prompt := fmt.Sprintf("Translate the English text '%s' to the language with ISO code '%s'. Respond with only the translation, nothing else.",
		text, langCode)

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translation := strings.TrimSpace(resp.Text())
	if translation == "" {
		return "", fmt.Errorf("empty translation returned")
	}

	return translation, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}
