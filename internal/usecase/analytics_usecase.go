package usecase

import (
	"context"

	"mailpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardStats aggregates the account's campaign activity for the
// dashboard view. The rate figures are fixed placeholders until real
// delivery tracking exists.
type DashboardStats struct {
	TotalCampaigns  int64
	SentCampaigns   int64
	OpenRate        float64
	ClickRate       float64
	BounceRate      float64
	RecentCampaigns []*entity.Campaign
}

// AnalyticsUsecase defines the interface for dashboard reporting.
type AnalyticsUsecase interface {
	GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)
}
