package impl

import (
	"context"
	"log/slog"

	deliverycontext "mailpilot/internal/delivery/context"
	"mailpilot/internal/domain/entity"
	"mailpilot/internal/domain/repository"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Placeholder engagement rates reported until real delivery tracking exists.
const (
	prototypeOpenRate   = 24.5
	prototypeClickRate  = 3.2
	prototypeBounceRate = 1.8
)

// recentCampaignLimit caps the dashboard's recent-campaign list.
const recentCampaignLimit = 5

// analyticsService implements the AnalyticsUsecase interface.
type analyticsService struct {
	campaignRepo repository.CampaignRepository
	logger       *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	CampaignRepo repository.CampaignRepository
	Logger       *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		campaignRepo: params.CampaignRepo,
		logger:       params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDashboardStats aggregates the account's campaign activity.
func (srv *analyticsService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*usecase.DashboardStats, error) {
	total, sent, err := srv.campaignRepo.CountByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to count campaigns for dashboard", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count campaigns for dashboard")
	}

	campaigns, err := srv.campaignRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list campaigns for dashboard", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list campaigns for dashboard")
	}

	recent := campaigns
	if len(recent) > recentCampaignLimit {
		recent = recent[:recentCampaignLimit]
	}
	if recent == nil {
		recent = []*entity.Campaign{}
	}

	return &usecase.DashboardStats{
		TotalCampaigns:  total,
		SentCampaigns:   sent,
		OpenRate:        prototypeOpenRate,
		ClickRate:       prototypeClickRate,
		BounceRate:      prototypeBounceRate,
		RecentCampaigns: recent,
	}, nil
}
