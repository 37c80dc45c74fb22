package model

// Category is one of the fixed topical buckets the analysis pipeline reports
// on. Queries are tried in declaration order until one returns a result.
type Category struct {
	Label   string
	Queries []string
}

// DefaultCategories returns the four dashboard categories. Their order is
// significant: pipeline output is always in this order.
func DefaultCategories() []Category {
	return []Category{
		{Label: "US Real Economy", Queries: []string{"US economy CPI interest rates", "US economy"}},
		{Label: "US Equities", Queries: []string{"US stock market Nasdaq S&P 500", "New York stock market"}},
		{Label: "Korea Real Economy", Queries: []string{"Korea economy exports interest rates", "Korea economy"}},
		{Label: "Korea Equities", Queries: []string{"KOSPI Samsung Electronics stocks", "Korean stock market"}},
	}
}

type NewsItem struct {
	Title string
	Link  string
}

type ResolutionStatus int

const (
	// ResolutionFound means a query produced at least one entry.
	ResolutionFound ResolutionStatus = iota
	// ResolutionNotFound means every query succeeded but returned no entries.
	ResolutionNotFound
	// ResolutionUnreachable means every attempt failed at the transport or
	// parse level, so "no news today" cannot be claimed.
	ResolutionUnreachable
)

// Resolution is the outcome of running one category's query set against the
// news feed. Item is only meaningful when Status is ResolutionFound.
type Resolution struct {
	Status ResolutionStatus
	Item   NewsItem
	Query  string
}

// AnalysisResult is one filled dashboard slot. Commentary is never empty:
// failures are substituted with fixed text rather than dropped.
type AnalysisResult struct {
	Category   string `json:"category"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Commentary string `json:"commentary"`
}
