package impl

import (
	"context"
	"testing"
	"time"

	"mailpilot/internal/domain/entity"
	domainerrors "mailpilot/internal/domain/errors"
	"mailpilot/internal/domain/repository"
	mockRepo "mailpilot/internal/mocks/repository"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type templateServiceFixtures struct {
	service      usecase.TemplateUsecase
	templateRepo *mockRepo.MockTemplateRepository
}

func createTestTemplateService(t *testing.T) templateServiceFixtures {
	templateRepo := mockRepo.NewMockTemplateRepository(t)

	service := NewTemplateService(TemplateServiceParams{
		TemplateRepo: templateRepo,
		Logger:       newDiscardLogger(),
	})

	return templateServiceFixtures{
		service:      service,
		templateRepo: templateRepo,
	}
}

func TestTemplateService_ListTemplates_Success(t *testing.T) {
	fixtures := createTestTemplateService(t)

	userID := uuid.New()
	stored := []*entity.Template{
		{ID: uuid.New(), UserID: userID, Name: "Promo Template"},
		{ID: uuid.New(), UserID: userID, Name: "Welcome Template"},
	}

	fixtures.templateRepo.EXPECT().
		ListByUserID(mock.Anything, userID).
		Return(stored, nil)

	templates, err := fixtures.service.ListTemplates(context.Background(), userID)

	require.NoError(t, err)
	assert.Len(t, templates, 2)
	assert.Equal(t, "Promo Template", templates[0].Name)
}

func TestTemplateService_GetTemplate_NotFound(t *testing.T) {
	fixtures := createTestTemplateService(t)

	userID := uuid.New()
	templateID := uuid.New()

	fixtures.templateRepo.EXPECT().
		FindByID(mock.Anything, userID, templateID).
		Return(nil, repository.ErrTemplateNotFound)

	template, err := fixtures.service.GetTemplate(context.Background(), userID, templateID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
	assert.Nil(t, template)
}

func TestTemplateService_CreateTemplate_Success(t *testing.T) {
	fixtures := createTestTemplateService(t)

	userID := uuid.New()
	input := &usecase.CreateTemplateInput{
		UserID:  userID,
		Name:    "Welcome Template",
		Subject: "Welcome to our service",
		Content: "<h1>Welcome!</h1>",
	}

	assignedID := uuid.New()
	fixtures.templateRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Template")).
		Run(func(ctx context.Context, template *entity.Template) {
			template.ID = assignedID
			template.CreatedAt = time.Now()
			template.UpdatedAt = template.CreatedAt
		}).
		Return(nil)

	template, err := fixtures.service.CreateTemplate(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, template)
	assert.Equal(t, assignedID, template.ID)
	assert.Equal(t, userID, template.UserID)
	assert.Equal(t, input.Name, template.Name)
}

func TestTemplateService_CreateTemplate_MissingFields(t *testing.T) {
	testCases := []struct {
		name  string
		input *usecase.CreateTemplateInput
	}{
		{"missing name", &usecase.CreateTemplateInput{UserID: uuid.New(), Subject: "s", Content: "c"}},
		{"missing subject", &usecase.CreateTemplateInput{UserID: uuid.New(), Name: "n", Content: "c"}},
		{"missing content", &usecase.CreateTemplateInput{UserID: uuid.New(), Name: "n", Subject: "s"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fixtures := createTestTemplateService(t)

			template, err := fixtures.service.CreateTemplate(context.Background(), testCase.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
			assert.Nil(t, template)
		})
	}
}

func TestTemplateService_UpdateTemplate_Success(t *testing.T) {
	fixtures := createTestTemplateService(t)

	userID := uuid.New()
	templateID := uuid.New()
	input := &usecase.UpdateTemplateInput{
		UserID:  userID,
		ID:      templateID,
		Name:    "Renamed Template",
		Subject: "New subject",
		Content: "<p>New content</p>",
	}

	fixtures.templateRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Template")).
		Return(nil)

	fixtures.templateRepo.EXPECT().
		FindByID(mock.Anything, userID, templateID).
		Return(&entity.Template{
			ID:      templateID,
			UserID:  userID,
			Name:    input.Name,
			Subject: input.Subject,
			Content: input.Content,
		}, nil)

	template, err := fixtures.service.UpdateTemplate(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, template)
	assert.Equal(t, "Renamed Template", template.Name)
}

func TestTemplateService_UpdateTemplate_NotFound(t *testing.T) {
	fixtures := createTestTemplateService(t)

	input := &usecase.UpdateTemplateInput{
		UserID:  uuid.New(),
		ID:      uuid.New(),
		Name:    "Renamed Template",
		Subject: "New subject",
		Content: "<p>New content</p>",
	}

	fixtures.templateRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Template")).
		Return(repository.ErrTemplateNotFound)

	template, err := fixtures.service.UpdateTemplate(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
	assert.Nil(t, template)
}

func TestTemplateService_DeleteTemplate_Success(t *testing.T) {
	fixtures := createTestTemplateService(t)

	userID := uuid.New()
	templateID := uuid.New()

	fixtures.templateRepo.EXPECT().
		Delete(mock.Anything, userID, templateID).
		Return(nil)

	err := fixtures.service.DeleteTemplate(context.Background(), userID, templateID)

	require.NoError(t, err)
}

func TestTemplateService_DeleteTemplate_NotFound(t *testing.T) {
	fixtures := createTestTemplateService(t)

	userID := uuid.New()
	templateID := uuid.New()

	fixtures.templateRepo.EXPECT().
		Delete(mock.Anything, userID, templateID).
		Return(repository.ErrTemplateNotFound)

	err := fixtures.service.DeleteTemplate(context.Background(), userID, templateID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}
