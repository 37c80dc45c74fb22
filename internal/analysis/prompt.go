package analysis

import (
	"fmt"

	"github.com/euntae-kim/stock-ai-dashboard/pkg/llm"
)

// BuildPrompt frames the model as a quant investor and asks for a one-line
// summary, a ternary market-impact call, and a recommended investor
// response. The pro tier asks for an in-depth response, the flash tier for a
// quick intuitive one.
func BuildPrompt(category, headline string, tier llm.Tier) string {
	detail := "concise and intuitive"
	if tier == llm.TierPro {
		detail = "in-depth, with reasoning"
	}

	return fmt.Sprintf(`You are a quant investor in your 30s covering both macroeconomics and equities.
Current category under analysis: [%s]

News headline: %q

1. Key takeaway (one line)
2. Impact from the %s perspective (positive / negative / neutral)
3. Recommended investor response (%s)

Answer in three lines or fewer, in a friendly conversational tone.`, category, headline, category, detail)
}
