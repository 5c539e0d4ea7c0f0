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

type templateRequest struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type templatePayload struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTemplatePayload(template *entity.Template) *templatePayload {
	return &templatePayload{
		ID:        template.ID,
		Name:      template.Name,
		Subject:   template.Subject,
		Content:   template.Content,
		CreatedAt: template.CreatedAt,
		UpdatedAt: template.UpdatedAt,
	}
}

func newTemplatePayloads(templates []*entity.Template) []*templatePayload {
	payloads := make([]*templatePayload, 0, len(templates))
	for _, template := range templates {
		payloads = append(payloads, newTemplatePayload(template))
	}

	return payloads
}

// TemplateHandler holds dependencies for template-related handlers.
type TemplateHandler struct {
	uc     usecase.TemplateUsecase
	logger *slog.Logger
}

// NewTemplateHandler is the constructor for TemplateHandler, injected by Fx.
func NewTemplateHandler(uc usecase.TemplateUsecase, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the caller's templates, newest first.
func (h *TemplateHandler) List(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	templates, err := h.uc.ListTemplates(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newTemplatePayloads(templates))
}

// Get returns a single template.
func (h *TemplateHandler) Get(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrTemplateNotFound, "malformed template id")
	}

	template, err := h.uc.GetTemplate(c.Request().Context(), userID, templateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newTemplatePayload(template))
}

// Create creates a template.
func (h *TemplateHandler) Create(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid template payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	template, err := h.uc.CreateTemplate(c.Request().Context(), &usecase.CreateTemplateInput{
		UserID:  userID,
		Name:    req.Name,
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, newTemplatePayload(template))
}

// Update updates a template.
func (h *TemplateHandler) Update(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrTemplateNotFound, "malformed template id")
	}

	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid template payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	template, err := h.uc.UpdateTemplate(c.Request().Context(), &usecase.UpdateTemplateInput{
		UserID:  userID,
		ID:      templateID,
		Name:    req.Name,
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, newTemplatePayload(template))
}

// Delete removes a template.
func (h *TemplateHandler) Delete(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrTemplateNotFound, "malformed template id")
	}

	if err := h.uc.DeleteTemplate(c.Request().Context(), userID, templateID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Template deleted")
}
