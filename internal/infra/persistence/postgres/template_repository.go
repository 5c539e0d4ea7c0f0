// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mailpilot/internal/domain/entity"
	domainerrors "mailpilot/internal/domain/errors"
	"mailpilot/internal/domain/repository"
	"mailpilot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// templateRepository implements the domain.TemplateRepository interface using GORM.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{db: db}
}

// ListByUserID returns the account's templates, newest first.
func (repo *templateRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Template, error) {
	var templateModels []model.TemplateModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&templateModels).Error

	if err != nil {
		if isConnectivityError(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to list templates")
		}

		return nil, errors.Wrap(err, "failed to list templates")
	}

	templates := make([]*entity.Template, 0, len(templateModels))
	for i := range templateModels {
		templates = append(templates, toTemplateDomain(&templateModels[i]))
	}

	return templates, nil
}

// FindByID retrieves a template owned by the given account. Rows owned
// by other accounts are indistinguishable from missing rows.
func (repo *templateRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Template, error) {
	var templateM model.TemplateModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&templateM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}
		if isConnectivityError(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to find template")
		}

		return nil, errors.Wrap(err, "failed to find template")
	}

	return toTemplateDomain(&templateM), nil
}

// Create persists a new template. The store assigns ID and timestamps.
func (repo *templateRepository) Create(ctx context.Context, template *entity.Template) error {
	templateM := fromTemplateDomain(template)

	if err := repo.db.WithContext(ctx).Create(templateM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required template information")
		}
		if isConnectivityError(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("failed to create template")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create template")
	}

	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

// Update modifies an existing template owned by the given account.
func (repo *templateRepository) Update(ctx context.Context, template *entity.Template) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TemplateModel{}).
		Where("id = ? AND user_id = ?", template.ID, template.UserID).
		Updates(map[string]any{
			"name":    template.Name,
			"subject": template.Subject,
			"content": template.Content,
		})

	if err := result.Error; err != nil {
		if isConnectivityError(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("failed to update template")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update template")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// Delete removes a template owned by the given account.
func (repo *templateRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TemplateModel{})

	if err := result.Error; err != nil {
		if isConnectivityError(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("failed to delete template")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete template")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTemplateDomain(data *model.TemplateModel) *entity.Template {
	if data == nil {
		return nil
	}

	return &entity.Template{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Subject:   data.Subject,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTemplateDomain(data *entity.Template) *model.TemplateModel {
	if data == nil {
		return nil
	}

	return &model.TemplateModel{
		ID:      data.ID,
		UserID:  data.UserID,
		Name:    data.Name,
		Subject: data.Subject,
		Content: data.Content,
	}
}
