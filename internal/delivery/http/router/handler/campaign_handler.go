package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mailpilot/internal/delivery/http/response"
	"mailpilot/internal/domain/entity"
	domainerrors "mailpilot/internal/domain/errors"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type campaignRequest struct {
	Name       string    `json:"name" validate:"required"`
	TemplateID uuid.UUID `json:"templateId" validate:"required"`
}

type campaignPayload struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	TemplateID uuid.UUID `json:"templateId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newCampaignPayload(campaign *entity.Campaign) *campaignPayload {
	return &campaignPayload{
		ID:         campaign.ID,
		Name:       campaign.Name,
		Status:     string(campaign.Status),
		TemplateID: campaign.TemplateID,
		CreatedAt:  campaign.CreatedAt,
		UpdatedAt:  campaign.UpdatedAt,
	}
}

func newCampaignPayloads(campaigns []*entity.Campaign) []*campaignPayload {
	payloads := make([]*campaignPayload, 0, len(campaigns))
	for _, campaign := range campaigns {
		payloads = append(payloads, newCampaignPayload(campaign))
	}

	return payloads
}

// CampaignHandler holds dependencies for campaign-related handlers.
type CampaignHandler struct {
	uc     usecase.CampaignUsecase
	logger *slog.Logger
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's campaigns, newest first.
func (h *CampaignHandler) List(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	campaigns, err := h.uc.ListCampaigns(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newCampaignPayloads(campaigns))
}

// Get returns a single campaign.
func (h *CampaignHandler) Get(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrCampaignNotFound, "malformed campaign id")
	}

	campaign, err := h.uc.GetCampaign(c.Request().Context(), userID, campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newCampaignPayload(campaign))
}

// Create creates a draft campaign.
func (h *CampaignHandler) Create(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req campaignRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid campaign payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	campaign, err := h.uc.CreateCampaign(c.Request().Context(), &usecase.CreateCampaignInput{
		UserID:     userID,
		Name:       req.Name,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, newCampaignPayload(campaign))
}

// Update updates a campaign's name and template.
func (h *CampaignHandler) Update(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrCampaignNotFound, "malformed campaign id")
	}

	var req campaignRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid campaign payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	campaign, err := h.uc.UpdateCampaign(c.Request().Context(), &usecase.UpdateCampaignInput{
		UserID:     userID,
		ID:         campaignID,
		Name:       req.Name,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newCampaignPayload(campaign))
}

// Delete removes a campaign.
func (h *CampaignHandler) Delete(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrCampaignNotFound, "malformed campaign id")
	}

	if err := h.uc.DeleteCampaign(c.Request().Context(), userID, campaignID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Campaign deleted")
}

// Send marks a campaign as sent.
func (h *CampaignHandler) Send(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrCampaignNotFound, "malformed campaign id")
	}

	campaign, err := h.uc.SendCampaign(c.Request().Context(), userID, campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newCampaignPayload(campaign))
}
