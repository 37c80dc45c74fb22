package handler

type SeriesResponse struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type MetricResponse struct {
	Name  string  `json:"name"`
	Final float64 `json:"final"`
	Delta float64 `json:"delta"`
}

type PerformanceResponse struct {
	Window  string           `json:"window"`
	USDBase bool             `json:"usd_base"`
	Dates   []string         `json:"dates"`
	Series  []SeriesResponse `json:"series"`
	Metrics []MetricResponse `json:"metrics"`
}

type WindowsResponse struct {
	Windows []string `json:"windows"`
	Default string   `json:"default"`
}

type AnalysisResultResponse struct {
	Category   string `json:"category"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	Commentary string `json:"commentary"`
}

type AnalysisRunResponse struct {
	Tier    string                   `json:"tier"`
	Model   string                   `json:"model"`
	Results []AnalysisResultResponse `json:"results"`
}

type CategoryResponse struct {
	Label   string   `json:"label"`
	Queries []string `json:"queries"`
}

type ModelTierResponse struct {
	Tier  string `json:"tier"`
	Model string `json:"model"`
}
