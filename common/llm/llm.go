package llm

import (
	"context"
	"fmt"
)

// Provider constants for LLM provider selection.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Config holds LLM client configuration.
type Config struct {
	Provider  string // "openai" or "anthropic"
	APIKey    string // Required: API key for the provider
	BaseURL   string // Optional: custom API endpoint
	Model     string // Model name (e.g., "gpt-4o-mini", "claude-sonnet-4-5-20250514")
	MaxTokens int    // Default completion budget when a request doesn't set one
}

// Client generates free-text completions. The review engine parses the raw
// reply itself, so there is no structured-output mode here.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	Ping(ctx context.Context) error
	Model() string
}

// Request contains the prompts for one completion.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  *float64 // nil = model default, explicit 0 = deterministic
}

// Response is the model's reply plus token accounting.
type Response struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

// TotalTokens returns prompt + completion tokens, the figure charged
// against usage metrics.
func (r *Response) TotalTokens() int {
	return r.PromptTokens + r.CompletionTokens
}

// New creates a Client for the configured provider.
// Defaults to OpenAI if no provider is specified.
func New(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg)
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// Temp returns a pointer to a temperature value for Request.Temperature.
func Temp(t float64) *float64 {
	return &t
}
