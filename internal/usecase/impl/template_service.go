package impl

import (
	"context"
	"log/slog"

	deliverycontext "mailpilot/internal/delivery/context"
	"mailpilot/internal/domain/entity"
	domainerrors "mailpilot/internal/domain/errors"
	"mailpilot/internal/domain/repository"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// templateService implements the TemplateUsecase interface.
type templateService struct {
	templateRepo repository.TemplateRepository
	logger       *slog.Logger
}

// TemplateServiceParams holds dependencies for TemplateService, injected by Fx.
type TemplateServiceParams struct {
	fx.In

	TemplateRepo repository.TemplateRepository
	Logger       *slog.Logger
}

// NewTemplateService is the constructor for templateService.
func NewTemplateService(params TemplateServiceParams) usecase.TemplateUsecase {
	return &templateService{
		templateRepo: params.TemplateRepo,
		logger:       params.Logger,
	}
}

func (srv *templateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListTemplates returns all templates owned by the account, newest first.
func (srv *templateService) ListTemplates(ctx context.Context, userID uuid.UUID) ([]*entity.Template, error) {
	templates, err := srv.templateRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list templates", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list templates")
	}

	return templates, nil
}

// GetTemplate retrieves a single template owned by the account.
func (srv *templateService) GetTemplate(ctx context.Context, userID, id uuid.UUID) (*entity.Template, error) {
	template, err := srv.templateRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTemplateNotFound, "template lookup failed")
		}

		srv.log(ctx).Error("Failed to get template", slog.Any("templateID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get template")
	}

	return template, nil
}

// CreateTemplate validates and persists a new template.
func (srv *templateService) CreateTemplate(ctx context.Context, input *usecase.CreateTemplateInput) (*entity.Template, error) {
	if input.Name == "" || input.Subject == "" || input.Content == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "template creation rejected")
	}

	template := &entity.Template{
		UserID:  input.UserID,
		Name:    input.Name,
		Subject: input.Subject,
		Content: input.Content,
	}

	if err := srv.templateRepo.Create(ctx, template); err != nil {
		srv.log(ctx).Error("Failed to create template", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create template")
	}

	srv.log(ctx).Debug("Template created", slog.Any("templateID", template.ID))

	return template, nil
}

// UpdateTemplate validates and updates an existing template.
func (srv *templateService) UpdateTemplate(ctx context.Context, input *usecase.UpdateTemplateInput) (*entity.Template, error) {
	if input.Name == "" || input.Subject == "" || input.Content == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "template update rejected")
	}

	template := &entity.Template{
		ID:      input.ID,
		UserID:  input.UserID,
		Name:    input.Name,
		Subject: input.Subject,
		Content: input.Content,
	}

	if err := srv.templateRepo.Update(ctx, template); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTemplateNotFound, "template update failed")
		}

		srv.log(ctx).Error("Failed to update template", slog.Any("templateID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update template")
	}

	return srv.GetTemplate(ctx, input.UserID, input.ID)
}

// DeleteTemplate removes a template owned by the account.
func (srv *templateService) DeleteTemplate(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.templateRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return errors.Wrap(domainerrors.ErrTemplateNotFound, "template delete failed")
		}

		srv.log(ctx).Error("Failed to delete template", slog.Any("templateID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete template")
	}

	srv.log(ctx).Debug("Template deleted", slog.Any("templateID", id))

	return nil
}
