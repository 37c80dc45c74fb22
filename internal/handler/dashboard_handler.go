package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/internal/series"
)

type PerformanceProvider interface {
	Performance(ctx context.Context, window string, usdBase bool) (*model.PerformanceReport, error)
}

type DashboardHandler struct {
	service PerformanceProvider
}

func NewDashboardHandler(service PerformanceProvider) *DashboardHandler {
	return &DashboardHandler{service: service}
}

const defaultWindow = "3m"

func (h *DashboardHandler) GetPerformance(c *gin.Context) {
	window := c.DefaultQuery("window", defaultWindow)
	usdBase := c.DefaultQuery("usd", "true") == "true"

	report, err := h.service.Performance(c.Request.Context(), window, usdBase)
	if err != nil {
		switch {
		case errors.Is(err, series.ErrBadWindow):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown window"})
		case errors.Is(err, series.ErrNoData):
			slog.Error("no market data for performance report", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No market data available"})
		default:
			slog.Error("error building performance report", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Market data error"})
		}
		return
	}

	c.JSON(http.StatusOK, toPerformanceResponse(report))
}

func (h *DashboardHandler) GetWindows(c *gin.Context) {
	c.JSON(http.StatusOK, WindowsResponse{
		Windows: series.Windows(),
		Default: defaultWindow,
	})
}

func toPerformanceResponse(report *model.PerformanceReport) PerformanceResponse {
	res := PerformanceResponse{
		Window:  report.Window,
		USDBase: report.USDBase,
	}

	for _, d := range report.Table.Dates {
		res.Dates = append(res.Dates, d.Format("2006-01-02"))
	}

	for _, name := range report.Table.Names {
		res.Series = append(res.Series, SeriesResponse{
			Name:   name,
			Values: report.Table.Columns[name],
		})
	}

	for _, m := range report.Metrics {
		res.Metrics = append(res.Metrics, MetricResponse{
			Name:  m.Name,
			Final: m.Final,
			Delta: m.Delta,
		})
	}

	return res
}
