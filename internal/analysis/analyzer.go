package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/llm"
)

// PlaceholderLink marks a slot that has no real article behind it.
const PlaceholderLink = "#"

// Fixed commentary substituted when a slot cannot be analyzed. The dashboard
// contract is that every slot shows something, never an error banner.
const (
	NoNewsCommentary      = "No major news was found for this category right now. Please try again later."
	UnreachableCommentary = "The news search service could not be reached. Please try again later."
	NoServiceCommentary   = "AI commentary is unavailable: no generation service is configured."
	EmptyResultCommentary = "The AI returned an empty response for this headline."
	SystemErrorCommentary = "Analysis for this category hit an internal error. Please try again."
)

const defaultGenerateTimeout = 60 * time.Second

// Analyzer turns one resolved news item into investor commentary. Every code
// path returns a result; failures become commentary text, not errors.
type Analyzer struct {
	generators map[llm.Tier]llm.Generator
	timeout    time.Duration
}

func NewAnalyzer(generators map[llm.Tier]llm.Generator, timeout time.Duration) *Analyzer {
	if timeout <= 0 {
		timeout = defaultGenerateTimeout
	}
	return &Analyzer{generators: generators, timeout: timeout}
}

// ModelName reports which model serves a tier, or "" when none does.
func (a *Analyzer) ModelName(tier llm.Tier) string {
	if gen := a.generators[tier]; gen != nil {
		return gen.ModelName()
	}
	return ""
}

func (a *Analyzer) Analyze(ctx context.Context, tier llm.Tier, category model.Category, res model.Resolution) model.AnalysisResult {
	switch res.Status {
	case model.ResolutionNotFound:
		return model.AnalysisResult{
			Category:   category.Label,
			Title:      fmt.Sprintf("No recent news found for %s", category.Label),
			Link:       PlaceholderLink,
			Commentary: NoNewsCommentary,
		}
	case model.ResolutionUnreachable:
		return model.AnalysisResult{
			Category:   category.Label,
			Title:      fmt.Sprintf("News search unavailable for %s", category.Label),
			Link:       PlaceholderLink,
			Commentary: UnreachableCommentary,
		}
	}

	result := model.AnalysisResult{
		Category: category.Label,
		Title:    res.Item.Title,
		Link:     res.Item.Link,
	}

	generator := a.generators[tier]
	if generator == nil {
		result.Commentary = NoServiceCommentary
		return result
	}

	genCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := generator.Generate(genCtx, BuildPrompt(category.Label, res.Item.Title, tier))
	if err != nil {
		result.Commentary = fmt.Sprintf("Analysis failed: %v", err)
		return result
	}

	text = strings.TrimSpace(text)
	if text == "" {
		result.Commentary = EmptyResultCommentary
		return result
	}

	result.Commentary = text
	return result
}
