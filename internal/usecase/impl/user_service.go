// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"mailpilot/config"
	deliverycontext "mailpilot/internal/delivery/context"
	"mailpilot/internal/domain/entity"
	domainerrors "mailpilot/internal/domain/errors"
	"mailpilot/internal/domain/repository"
	"mailpilot/internal/domain/service"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 6

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	storeTimeout time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	storeTimeout := time.Duration(0)
	if params.Config != nil && params.Config.Auth != nil {
		storeTimeout = params.Config.Auth.StoreTimeout
	}

	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeContext bounds a user-store call with the configured timeout.
func (srv *userService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if srv.storeTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, srv.storeTimeout)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.CompanyName == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingFields, "registration rejected")
	}
	if len(input.Password) < minPasswordLength {
		return nil, errors.Wrap(domainerrors.ErrPasswordTooShort, "registration rejected")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	var registeredUser *entity.User
	err = srv.txManager.Execute(storeCtx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(storeCtx, input.Email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrEmailTaken, "registration rejected")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			CompanyName:  input.CompanyName,
		}

		// The unique constraint still backstops a concurrent duplicate insert;
		// the repository reports that as the same conflict error.
		if createErr := userRepo.Create(storeCtx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, srv.classifyStoreError(err, "failed to execute registration transaction")
	}

	token, err := srv.tokenService.GenerateToken(registeredUser.ID, registeredUser.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	registeredUser.PasswordHash = ""

	return &usecase.AuthOutput{User: registeredUser, Token: token}, nil
}

// Login verifies credentials and issues a session token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "login rejected")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	user, err := srv.userRepo.FindByEmail(storeCtx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

			// Same error as a wrong password, so responses cannot be used
			// to probe which emails are registered.
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, srv.classifyStoreError(err, "failed to load user for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	user.PasswordHash = ""

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// CurrentUser resolves the account behind a validated token's user ID.
func (srv *userService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	user, err := srv.userRepo.FindByID(storeCtx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// A valid token can outlive its account.
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "current user lookup failed")
		}

		srv.log(ctx).Warn("Current user lookup failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, srv.classifyStoreError(err, "failed to load current user")
	}

	return user, nil
}

// classifyStoreError maps store failures onto the application error taxonomy.
// Application errors pass through untouched; a deadline hit while talking to
// the store reports as a transient outage.
func (srv *userService) classifyStoreError(err error, msg string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrStoreUnavailable.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}
