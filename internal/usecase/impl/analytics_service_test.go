package impl

import (
	"context"
	"testing"

	"mailpilot/internal/domain/entity"
	mockRepo "mailpilot/internal/mocks/repository"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAnalyticsService(t *testing.T) (usecase.AnalyticsUsecase, *mockRepo.MockCampaignRepository) {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)

	service := NewAnalyticsService(AnalyticsServiceParams{
		CampaignRepo: campaignRepo,
		Logger:       newDiscardLogger(),
	})

	return service, campaignRepo
}

func TestAnalyticsService_GetDashboardStats_Success(t *testing.T) {
	service, campaignRepo := createTestAnalyticsService(t)

	userID := uuid.New()
	campaigns := make([]*entity.Campaign, 0, 7)
	for i := 0; i < 7; i++ {
		campaigns = append(campaigns, &entity.Campaign{ID: uuid.New(), UserID: userID})
	}

	campaignRepo.EXPECT().
		CountByUserID(mock.Anything, userID).
		Return(int64(7), int64(3), nil)

	campaignRepo.EXPECT().
		ListByUserID(mock.Anything, userID).
		Return(campaigns, nil)

	stats, err := service.GetDashboardStats(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(7), stats.TotalCampaigns)
	assert.Equal(t, int64(3), stats.SentCampaigns)
	assert.Len(t, stats.RecentCampaigns, 5, "recent list is capped")
	assert.InDelta(t, 24.5, stats.OpenRate, 0.001)
	assert.InDelta(t, 3.2, stats.ClickRate, 0.001)
	assert.InDelta(t, 1.8, stats.BounceRate, 0.001)
}

func TestAnalyticsService_GetDashboardStats_Empty(t *testing.T) {
	service, campaignRepo := createTestAnalyticsService(t)

	userID := uuid.New()

	campaignRepo.EXPECT().
		CountByUserID(mock.Anything, userID).
		Return(int64(0), int64(0), nil)

	campaignRepo.EXPECT().
		ListByUserID(mock.Anything, userID).
		Return(nil, nil)

	stats, err := service.GetDashboardStats(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(0), stats.TotalCampaigns)
	assert.NotNil(t, stats.RecentCampaigns)
	assert.Empty(t, stats.RecentCampaigns)
}

func TestAnalyticsService_GetDashboardStats_CountError(t *testing.T) {
	service, campaignRepo := createTestAnalyticsService(t)

	userID := uuid.New()

	campaignRepo.EXPECT().
		CountByUserID(mock.Anything, userID).
		Return(int64(0), int64(0), assert.AnError)

	stats, err := service.GetDashboardStats(context.Background(), userID)

	require.Error(t, err)
	assert.Nil(t, stats)
}
