package llm

import (
	"context"
	"fmt"
)

// Tier selects between the fast and the deep model of whichever provider is
// configured. It also controls how detailed the investor-response section of
// the commentary prompt asks the model to be.
type Tier string

const (
	TierFlash Tier = "flash"
	TierPro   Tier = "pro"
)

func Tiers() []Tier {
	return []Tier{TierFlash, TierPro}
}

// Generator produces free text for one prompt. Implementations must respect
// ctx cancellation so a stalled provider cannot hang a pipeline slot.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// NewGenerators builds one generator per tier for the named provider.
// An empty API key yields an empty map, which callers treat as "no AI".
func NewGenerators(provider, apiKey string) (map[Tier]Generator, error) {
	generators := make(map[Tier]Generator)
	if apiKey == "" {
		return generators, nil
	}

	for _, tier := range Tiers() {
		switch provider {
		case "gemini":
			generators[tier] = NewGeminiClient(apiKey, tier)
		case "openai":
			generators[tier] = NewOpenAIClient(apiKey, tier)
		case "anthropic":
			generators[tier] = NewAnthropicClient(apiKey, tier)
		default:
			return nil, fmt.Errorf("unknown llm provider %q", provider)
		}
	}

	return generators, nil
}

// KeyEnvVar names the environment variable holding the provider credential.
func KeyEnvVar(provider string) string {
	switch provider {
	case "openai":
		return "OPENAI_API_KEY"
	case "anthropic":
		return "ANTHROPIC_API_KEY"
	default:
		return "GEMINI_API_KEY"
	}
}
