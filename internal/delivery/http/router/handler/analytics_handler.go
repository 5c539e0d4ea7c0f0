package handler

import (
	"log/slog"
	"net/http"

	"mailpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type dashboardPayload struct {
	TotalCampaigns    int64              `json:"totalCampaigns"`
	SentCampaigns     int64              `json:"sentCampaigns"`
	AverageOpenRate   float64            `json:"averageOpenRate"`
	AverageClickRate  float64            `json:"averageClickRate"`
	AverageBounceRate float64            `json:"averageBounceRate"`
	RecentCampaigns   []*campaignPayload `json:"recentCampaigns"`
}

// AnalyticsHandler holds dependencies for the dashboard handler.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard returns the caller's aggregate campaign stats.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.uc.GetDashboardStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, dashboardPayload{
		TotalCampaigns:    stats.TotalCampaigns,
		SentCampaigns:     stats.SentCampaigns,
		AverageOpenRate:   stats.OpenRate,
		AverageClickRate:  stats.ClickRate,
		AverageBounceRate: stats.BounceRate,
		RecentCampaigns:   newCampaignPayloads(stats.RecentCampaigns),
	})
}
