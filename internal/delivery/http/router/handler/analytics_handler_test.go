package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mailpilot/internal/delivery/http/middleware"
	"mailpilot/internal/domain/entity"
	domainerrors "mailpilot/internal/domain/errors"
	mockusecase "mailpilot/internal/mocks/usecase"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsTestContext(t *testing.T, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockAnalyticsUsecase(t)
	handler := NewAnalyticsHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	recent := testCampaign(userID, entity.CampaignStatusSent)
	mockUC.EXPECT().
		GetDashboardStats(mock.Anything, userID).
		Return(&usecase.DashboardStats{
			TotalCampaigns:  7,
			SentCampaigns:   3,
			OpenRate:        24.5,
			ClickRate:       3.2,
			BounceRate:      1.8,
			RecentCampaigns: []*entity.Campaign{recent},
		}, nil)

	c, rec := newAnalyticsTestContext(t, userID)

	err := handler.Dashboard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCampaigns":7`)
	assert.Contains(t, rec.Body.String(), `"sentCampaigns":3`)
	assert.Contains(t, rec.Body.String(), `"averageOpenRate":24.5`)
	assert.Contains(t, rec.Body.String(), `"averageClickRate":3.2`)
	assert.Contains(t, rec.Body.String(), `"averageBounceRate":1.8`)
	assert.Contains(t, rec.Body.String(), recent.ID.String())
}

func TestAnalyticsHandler_Dashboard_EmptyAccount(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockAnalyticsUsecase(t)
	handler := NewAnalyticsHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	mockUC.EXPECT().
		GetDashboardStats(mock.Anything, userID).
		Return(&usecase.DashboardStats{
			OpenRate:        24.5,
			ClickRate:       3.2,
			BounceRate:      1.8,
			RecentCampaigns: []*entity.Campaign{},
		}, nil)

	c, rec := newAnalyticsTestContext(t, userID)

	err := handler.Dashboard(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCampaigns":0`)
	assert.Contains(t, rec.Body.String(), `"recentCampaigns":[]`)
}

func TestAnalyticsHandler_Dashboard_StoreError(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockAnalyticsUsecase(t)
	handler := NewAnalyticsHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	mockUC.EXPECT().
		GetDashboardStats(mock.Anything, userID).
		Return(nil, domainerrors.ErrStoreUnavailable)

	c, _ := newAnalyticsTestContext(t, userID)

	err := handler.Dashboard(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestAnalyticsHandler_Dashboard_MissingUserID(t *testing.T) {
	t.Parallel()

	handler := NewAnalyticsHandler(mockusecase.NewMockAnalyticsUsecase(t), newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics/dashboard", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := handler.Dashboard(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
