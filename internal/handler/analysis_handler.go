package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/llm"
)

type AnalysisRunner interface {
	Run(ctx context.Context, tier llm.Tier) []model.AnalysisResult
	ModelName(tier llm.Tier) string
	Categories() []model.Category
}

type AnalysisHandler struct {
	pipeline    AnalysisRunner
	defaultTier llm.Tier
}

func NewAnalysisHandler(pipeline AnalysisRunner, defaultTier llm.Tier) *AnalysisHandler {
	return &AnalysisHandler{pipeline: pipeline, defaultTier: defaultTier}
}

// RunAnalysis triggers the four-slot news pipeline. The pipeline itself
// never fails; a fully degraded run still returns four filled slots.
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	tier := llm.Tier(c.DefaultQuery("tier", string(h.defaultTier)))
	if tier != llm.TierFlash && tier != llm.TierPro {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown model tier"})
		return
	}

	results := h.pipeline.Run(c.Request.Context(), tier)

	res := AnalysisRunResponse{
		Tier:  string(tier),
		Model: h.pipeline.ModelName(tier),
	}
	for _, r := range results {
		res.Results = append(res.Results, AnalysisResultResponse{
			Category:   r.Category,
			Title:      r.Title,
			Link:       r.Link,
			Commentary: r.Commentary,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *AnalysisHandler) GetCategories(c *gin.Context) {
	var res []CategoryResponse
	for _, category := range h.pipeline.Categories() {
		res = append(res, CategoryResponse{
			Label:   category.Label,
			Queries: category.Queries,
		})
	}

	c.JSON(http.StatusOK, res)
}

func (h *AnalysisHandler) GetModels(c *gin.Context) {
	var res []ModelTierResponse
	for _, tier := range llm.Tiers() {
		res = append(res, ModelTierResponse{
			Tier:  string(tier),
			Model: h.pipeline.ModelName(tier),
		})
	}

	c.JSON(http.StatusOK, res)
}

// GetHealth reports degraded (not unhealthy) when no generation service is
// configured: the dashboard still works without AI commentary.
func (h *AnalysisHandler) GetHealth(c *gin.Context) {
	ai := "configured"
	if h.pipeline.ModelName(llm.TierFlash) == "" && h.pipeline.ModelName(llm.TierPro) == "" {
		ai = "unconfigured"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"ai":     ai,
	})
}
