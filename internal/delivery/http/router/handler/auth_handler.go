// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mailpilot/internal/delivery/http/middleware"
	"mailpilot/internal/delivery/http/response"
	domainerrors "mailpilot/internal/domain/errors"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// authEndpoints lists the valid auth routes, returned on unknown paths
// under the auth prefix.
var authEndpoints = []string{
	"POST /api/auth/register",
	"POST /api/auth/login",
	"GET /api/auth/current-user",
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"companyName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler holds dependencies for credential-related handlers.
type AuthHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid registration payload")
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusCreated, "Registration successful!", output.User, output.Token)
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid login payload")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, http.StatusOK, "Login successful", output.User, output.Token)
}

// CurrentUser resolves the account behind the presented token.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.CurrentUser(c, user)
}

// UnknownAuthEndpoint answers unknown routes under the auth prefix with
// the list of valid ones.
func (h *AuthHandler) UnknownAuthEndpoint(c echo.Context) error {
	return response.UnknownEndpoint(c, "Endpoint not found", authEndpoints)
}

// UserIDFromContext reads the authenticated caller's ID placed on the
// context by the auth middleware.
func UserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidToken, "user ID missing from context")
	}

	return userID, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Server is running",
	})
}
