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

// campaignService implements the CampaignUsecase interface.
type campaignService struct {
	txManager    repository.TransactionManager
	campaignRepo repository.CampaignRepository
	logger       *slog.Logger
}

// CampaignServiceParams holds dependencies for CampaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CampaignRepo repository.CampaignRepository
	Logger       *slog.Logger
}

// NewCampaignService is the constructor for campaignService.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		txManager:    params.TxManager,
		campaignRepo: params.CampaignRepo,
		logger:       params.Logger,
	}
}

func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCampaigns returns all campaigns owned by the account, newest first.
func (srv *campaignService) ListCampaigns(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error) {
	campaigns, err := srv.campaignRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list campaigns", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return campaigns, nil
}

// GetCampaign retrieves a single campaign owned by the account.
func (srv *campaignService) GetCampaign(ctx context.Context, userID, id uuid.UUID) (*entity.Campaign, error) {
	campaign, err := srv.campaignRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCampaignNotFound, "campaign lookup failed")
		}

		srv.log(ctx).Error("Failed to get campaign", slog.Any("campaignID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get campaign")
	}

	return campaign, nil
}

// CreateCampaign validates and persists a new campaign. New campaigns
// always start as draft.
func (srv *campaignService) CreateCampaign(ctx context.Context, input *usecase.CreateCampaignInput) (*entity.Campaign, error) {
	if input.Name == "" || input.TemplateID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "campaign creation rejected")
	}

	campaign := &entity.Campaign{
		UserID:     input.UserID,
		Name:       input.Name,
		Status:     entity.CampaignStatusDraft,
		TemplateID: input.TemplateID,
	}

	if err := srv.campaignRepo.Create(ctx, campaign); err != nil {
		srv.log(ctx).Error("Failed to create campaign", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create campaign")
	}

	srv.log(ctx).Debug("Campaign created", slog.Any("campaignID", campaign.ID))

	return campaign, nil
}

// UpdateCampaign updates a campaign's name and template. Status changes
// only happen through SendCampaign.
func (srv *campaignService) UpdateCampaign(ctx context.Context, input *usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	if input.Name == "" || input.TemplateID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "campaign update rejected")
	}

	var updated *entity.Campaign
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campaignRepo := repoFactory.CampaignRepo()

		current, findErr := campaignRepo.FindByID(ctx, input.UserID, input.ID)
		if findErr != nil {
			return findErr
		}

		current.Name = input.Name
		current.TemplateID = input.TemplateID

		if updateErr := campaignRepo.Update(ctx, current); updateErr != nil {
			return updateErr
		}

		updated = current

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCampaignNotFound, "campaign update failed")
		}

		srv.log(ctx).Error("Failed to update campaign", slog.Any("campaignID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute campaign update transaction")
	}

	return updated, nil
}

// DeleteCampaign removes a campaign owned by the account.
func (srv *campaignService) DeleteCampaign(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.campaignRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return errors.Wrap(domainerrors.ErrCampaignNotFound, "campaign delete failed")
		}

		srv.log(ctx).Error("Failed to delete campaign", slog.Any("campaignID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete campaign")
	}

	srv.log(ctx).Debug("Campaign deleted", slog.Any("campaignID", id))

	return nil
}

// SendCampaign flips the campaign's status to sent. The read and the
// status write share one transaction so a concurrent delete cannot slip
// between them.
func (srv *campaignService) SendCampaign(ctx context.Context, userID, id uuid.UUID) (*entity.Campaign, error) {
	srv.log(ctx).Info("Sending campaign", slog.Any("campaignID", id))

	var sent *entity.Campaign
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		campaignRepo := repoFactory.CampaignRepo()

		campaign, findErr := campaignRepo.FindByID(ctx, userID, id)
		if findErr != nil {
			return findErr
		}

		campaign.Status = entity.CampaignStatusSent

		if updateErr := campaignRepo.Update(ctx, campaign); updateErr != nil {
			return updateErr
		}

		sent = campaign

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCampaignNotFound, "campaign send failed")
		}

		srv.log(ctx).Error("Failed to send campaign", slog.Any("campaignID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute campaign send transaction")
	}

	srv.log(ctx).Debug("Campaign marked as sent", slog.Any("campaignID", id))

	return sent, nil
}
