package impl

import (
	"context"
	"testing"
	"time"

	"mailpilot/internal/domain/entity"
	domainerrors "mailpilot/internal/domain/errors"
	"mailpilot/internal/domain/repository"
	mockRepo "mailpilot/internal/mocks/repository"
	mockSvc "mailpilot/internal/mocks/service"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:        "Ann",
		Email:       "a@x.com",
		Password:    "secret1",
		CompanyName: "Acme",
	}

	fixtures.hasher.EXPECT().Hash("secret1").Return("hashed_password", nil)

	assignedID := uuid.New()
	fixtures.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(mock.Anything, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(mock.Anything, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = assignedID
					user.CreatedAt = time.Now()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fixtures.tokenService.EXPECT().
		GenerateToken(assignedID, input.Email).
		Return("signed.token", nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, assignedID, output.User.ID)
	assert.Equal(t, input.Name, output.User.Name)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.CompanyName, output.User.CompanyName)
	assert.Equal(t, "signed.token", output.Token)
	assert.Empty(t, output.User.PasswordHash, "output must not leak the password hash")
}

func TestUserService_Register_MissingFields(t *testing.T) {
	testCases := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{"missing name", &usecase.RegisterInput{Email: "a@x.com", Password: "secret1", CompanyName: "Acme"}},
		{"missing email", &usecase.RegisterInput{Name: "Ann", Password: "secret1", CompanyName: "Acme"}},
		{"missing password", &usecase.RegisterInput{Name: "Ann", Email: "a@x.com", CompanyName: "Acme"}},
		{"missing company name", &usecase.RegisterInput{Name: "Ann", Email: "a@x.com", Password: "secret1"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fixtures := createTestUserService(t)

			output, err := fixtures.service.Register(context.Background(), testCase.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
			assert.Nil(t, output)
		})
	}
}

func TestUserService_Register_PasswordTooShort(t *testing.T) {
	fixtures := createTestUserService(t)

	input := &usecase.RegisterInput{
		Name:        "Ann",
		Email:       "a@x.com",
		Password:    "12345",
		CompanyName: "Acme",
	}

	output, err := fixtures.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
	assert.Nil(t, output)
}

// An exactly six-character password sits on the minimum-length boundary
// and must be accepted.
func TestUserService_Register_PasswordMinimumLength(t *testing.T) {
	fixtures := createTestUserService(t)

	input := &usecase.RegisterInput{
		Name:        "Ann",
		Email:       "a@x.com",
		Password:    "secret",
		CompanyName: "Acme",
	}

	fixtures.hasher.EXPECT().Hash("secret").Return("hashed_password", nil)

	assignedID := uuid.New()
	fixtures.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(mock.Anything, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(mock.Anything, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = assignedID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fixtures.tokenService.EXPECT().
		GenerateToken(assignedID, input.Email).
		Return("signed.token", nil)

	output, err := fixtures.service.Register(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, assignedID, output.User.ID)
	assert.Equal(t, "signed.token", output.Token)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fixtures := createTestUserService(t)

	input := &usecase.RegisterInput{
		Name:        "Ann",
		Email:       "a@x.com",
		Password:    "secret1",
		CompanyName: "Acme",
	}

	fixtures.hasher.EXPECT().Hash("secret1").Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(mock.Anything, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fixtures.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	assert.Nil(t, output)
}

func TestUserService_Register_ConcurrentDuplicateInsert(t *testing.T) {
	fixtures := createTestUserService(t)

	input := &usecase.RegisterInput{
		Name:        "Ann",
		Email:       "a@x.com",
		Password:    "secret1",
		CompanyName: "Acme",
	}

	fixtures.hasher.EXPECT().Hash("secret1").Return("hashed_password", nil)

	// The existence check passes but the insert races with another
	// registration; the unique constraint surfaces the same conflict.
	fixtures.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(mock.Anything, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(mock.Anything, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrEmailTaken.WrapMessage("failed to create user"))

			return fn(mockFactory)
		})

	output, err := fixtures.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	assert.Nil(t, output)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fixtures := createTestUserService(t)

	input := &usecase.RegisterInput{
		Name:        "Ann",
		Email:       "a@x.com",
		Password:    "secret1",
		CompanyName: "Acme",
	}

	fixtures.hasher.EXPECT().Hash("secret1").Return("", assert.AnError)

	output, err := fixtures.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	userID := uuid.New()
	storedUser := &entity.User{
		ID:           userID,
		Name:         "Ann",
		Email:        "a@x.com",
		PasswordHash: "hashed_password",
		CompanyName:  "Acme",
		CreatedAt:    time.Now(),
	}

	fixtures.userRepo.EXPECT().
		FindByEmail(mock.Anything, "a@x.com").
		Return(storedUser, nil)

	fixtures.hasher.EXPECT().Check("secret1", "hashed_password").Return(true)

	fixtures.tokenService.EXPECT().
		GenerateToken(userID, "a@x.com").
		Return("signed.token", nil)

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, "signed.token", output.Token)
	assert.Empty(t, output.User.PasswordHash, "output must not leak the password hash")
}

func TestUserService_Login_MissingCredentials(t *testing.T) {
	testCases := []struct {
		name  string
		input *usecase.LoginInput
	}{
		{"missing email", &usecase.LoginInput{Password: "secret1"}},
		{"missing password", &usecase.LoginInput{Email: "a@x.com"}},
		{"missing both", &usecase.LoginInput{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			fixtures := createTestUserService(t)

			output, err := fixtures.service.Login(context.Background(), testCase.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
			assert.Nil(t, output)
		})
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fixtures := createTestUserService(t)

	fixtures.userRepo.EXPECT().
		FindByEmail(mock.Anything, "nobody@x.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@x.com",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestUserService(t)

	fixtures.userRepo.EXPECT().
		FindByEmail(mock.Anything, "a@x.com").
		Return(&entity.User{ID: uuid.New(), Email: "a@x.com", PasswordHash: "hashed_password"}, nil)

	fixtures.hasher.EXPECT().Check("wrong-password", "hashed_password").Return(false)

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_StoreUnavailable(t *testing.T) {
	fixtures := createTestUserService(t)

	fixtures.userRepo.EXPECT().
		FindByEmail(mock.Anything, "a@x.com").
		Return(nil, domainerrors.ErrStoreUnavailable.WrapMessage("failed to find user by email"))

	output, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.Retryable())
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestUserService_Login_StoreTimeout(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(50 * time.Millisecond),
		Logger:       newDiscardLogger(),
	})

	userRepo.EXPECT().
		FindByEmail(mock.Anything, "a@x.com").
		RunAndReturn(func(ctx context.Context, email string) (*entity.User, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	output, err := service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "secret1",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestUserService_CurrentUser_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	userID := uuid.New()
	fixtures.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "Ann", Email: "a@x.com", CompanyName: "Acme"}, nil)

	user, err := fixtures.service.CurrentUser(context.Background(), userID)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_CurrentUser_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	userID := uuid.New()
	fixtures.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fixtures.service.CurrentUser(context.Background(), userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, user)
}
