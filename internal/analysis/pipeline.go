package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/llm"
)

// Pipeline runs resolve-then-analyze for every category. The product
// requirement is that the dashboard always renders one box per category, so
// Run must return exactly len(categories) results no matter what fails.
type Pipeline struct {
	resolver   *Resolver
	analyzer   *Analyzer
	categories []model.Category
}

func NewPipeline(resolver *Resolver, analyzer *Analyzer, categories []model.Category) *Pipeline {
	return &Pipeline{
		resolver:   resolver,
		analyzer:   analyzer,
		categories: categories,
	}
}

func (p *Pipeline) Categories() []model.Category {
	return p.categories
}

func (p *Pipeline) ModelName(tier llm.Tier) string {
	return p.analyzer.ModelName(tier)
}

// Run processes the categories in parallel, one goroutine each, and collects
// results by category index so the output order is the declaration order,
// not the completion order. Each slot is its own isolation boundary: a panic
// inside one category is replaced by a system-error result for that slot.
func (p *Pipeline) Run(ctx context.Context, tier llm.Tier) []model.AnalysisResult {
	results := make([]model.AnalysisResult, len(p.categories))

	var wg sync.WaitGroup
	for i, category := range p.categories {
		wg.Add(1)
		go func(i int, category model.Category) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					slog.Error("analysis panicked", "category", category.Label, "panic", r)
					results[i] = model.AnalysisResult{
						Category:   category.Label,
						Title:      fmt.Sprintf("Analysis unavailable for %s", category.Label),
						Link:       PlaceholderLink,
						Commentary: SystemErrorCommentary,
					}
				}
			}()

			resolution := p.resolver.Resolve(ctx, category)
			results[i] = p.analyzer.Analyze(ctx, tier, category, resolution)
		}(i, category)
	}
	wg.Wait()

	return results
}
