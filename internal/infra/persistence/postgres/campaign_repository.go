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

// campaignRepository implements the domain.CampaignRepository interface using GORM.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{db: db}
}

// ListByUserID returns the account's campaigns, newest first.
func (repo *campaignRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error) {
	var campaignModels []model.CampaignModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&campaignModels).Error

	if err != nil {
		if isConnectivityError(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to list campaigns")
		}

		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for i := range campaignModels {
		campaigns = append(campaigns, toCampaignDomain(&campaignModels[i]))
	}

	return campaigns, nil
}

// FindByID retrieves a campaign owned by the given account.
func (repo *campaignRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&campaignM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}
		if isConnectivityError(err) {
			return nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to find campaign")
		}

		return nil, errors.Wrap(err, "failed to find campaign")
	}

	return toCampaignDomain(&campaignM), nil
}

// Create persists a new campaign. The store assigns ID and timestamps.
func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required campaign information")
		}
		if isConnectivityError(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("failed to create campaign")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// Update modifies an existing campaign owned by the given account.
func (repo *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ? AND user_id = ?", campaign.ID, campaign.UserID).
		Updates(map[string]any{
			"name":        campaign.Name,
			"status":      string(campaign.Status),
			"template_id": campaign.TemplateID,
		})

	if err := result.Error; err != nil {
		if isConnectivityError(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("failed to update campaign")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update campaign")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// Delete removes a campaign owned by the given account.
func (repo *campaignRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CampaignModel{})

	if err := result.Error; err != nil {
		if isConnectivityError(err) {
			return domainerrors.ErrStoreUnavailable.WrapMessage("failed to delete campaign")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete campaign")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// CountByUserID returns the total and sent campaign counts for the account.
func (repo *campaignRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		if isConnectivityError(err) {
			return 0, 0, domainerrors.ErrStoreUnavailable.WrapMessage("failed to count campaigns")
		}

		return 0, 0, errors.Wrap(err, "failed to count campaigns")
	}

	var sent int64
	err = repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.CampaignStatusSent)).
		Count(&sent).Error
	if err != nil {
		if isConnectivityError(err) {
			return 0, 0, domainerrors.ErrStoreUnavailable.WrapMessage("failed to count sent campaigns")
		}

		return 0, 0, errors.Wrap(err, "failed to count sent campaigns")
	}

	return total, sent, nil
}

// --- Mapper Functions ---

func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	return &entity.Campaign{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Status:     entity.CampaignStatus(data.Status),
		TemplateID: data.TemplateID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Status:     string(data.Status),
		TemplateID: data.TemplateID,
	}
}
