package translate

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// Provider defines the interface for translation services
type Provider interface {
	// Translate translates text into the language identified by langCode
	Translate(ctx context.Context, text, langCode string) (string, error)

	// Name returns the provider name
	Name() string
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string // Provider name: "openai" or "gemini"
	Model    string // Model override, empty selects the provider default

	OpenAIKey string
	GeminiKey string

	// BreakerThreshold is the number of consecutive failures after which
	// the circuit breaker opens and calls fail immediately. 0 disables the
	// breaker.
	BreakerThreshold uint32
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:         "openai",
		BreakerThreshold: 5,
	}
}

// NewProvider creates the appropriate translation provider based on
// configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	var provider Provider
	switch config.Provider {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		provider = NewOpenAIProvider(config)

	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		p, err := NewGeminiProvider(config)
		if err != nil {
			return nil, err
		}
		provider = p

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}

	if config.BreakerThreshold > 0 {
		provider = NewBreakerProvider(provider, config.BreakerThreshold)
	}

	return provider, nil
}

// BreakerProvider wraps a provider with a circuit breaker. Once the wrapped
// provider fails BreakerThreshold times in a row the breaker opens and
// further calls return an error immediately, so a dead remote degrades into
// fast English fallbacks instead of one timeout per language per word.
type BreakerProvider struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps provider with a circuit breaker that opens after
// threshold consecutive failures
func NewBreakerProvider(provider Provider, threshold uint32) *BreakerProvider {
	settings := gobreaker.Settings{
		Name:    provider.Name(),
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
	}

	return &BreakerProvider{
		provider: provider,
		breaker:  gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate passes the call through the circuit breaker
func (p *BreakerProvider) Translate(ctx context.Context, text, langCode string) (string, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.provider.Translate(ctx, text, langCode)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Name returns the wrapped provider name
func (p *BreakerProvider) Name() string {
	return p.provider.Name()
}
