package testutil

import (
	"context"
	"fmt"
	"strings"
)

// MockProvider is a canned translation provider for tests. It records every
// call and answers from the response tables, falling back to a synthetic
// "text (langCode)" translation for unconfigured language codes.
type MockProvider struct {
	Responses map[string]string // canned translations keyed by language code
	Errors    map[string]error  // forced errors keyed by language code
	Calls     []string
}

// Translate returns the canned translation for langCode
func (m *MockProvider) Translate(ctx context.Context, text, langCode string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("%s:%s", langCode, text))

	if err, ok := m.Errors[langCode]; ok {
		return "", err
	}

	if translation, ok := m.Responses[langCode]; ok {
		return translation, nil
	}

	// Default response
	return fmt.Sprintf("%s (%s)", text, langCode), nil
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// CallsFor returns the number of recorded calls for a language code
func (m *MockProvider) CallsFor(langCode string) int {
	count := 0
	for _, call := range m.Calls {
		if strings.HasPrefix(call, langCode+":") {
			count++
		}
	}
	return count
}
