package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mailpilot/internal/delivery/http/middleware"
	"mailpilot/internal/domain/entity"
	domainerrors "mailpilot/internal/domain/errors"
	mockusecase "mailpilot/internal/mocks/usecase"
	"mailpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testAccount() *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Name:        "Ann",
		Email:       "a@x.com",
		CompanyName: "Acme",
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	account := testAccount()
	mockUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:        "Ann",
			Email:       "a@x.com",
			Password:    "secret1",
			CompanyName: "Acme",
		}).
		Return(&usecase.AuthOutput{User: account, Token: "signed.jwt.token"}, nil)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"a@x.com","password":"secret1","companyName":"Acme"}`)

	err := handler.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Registration successful!")
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt.token"`)
	assert.Contains(t, rec.Body.String(), `"companyName":"Acme"`)
	assert.Contains(t, rec.Body.String(), account.ID.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_UsecaseError(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	mockUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrEmailTaken)

	c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"a@x.com","password":"secret1","companyName":"Acme"}`)

	err := handler.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/register", `{"name":`)

	err := handler.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	account := testAccount()
	mockUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "secret1"}).
		Return(&usecase.AuthOutput{User: account, Token: "signed.jwt.token"}, nil)

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"secret1"}`)

	err := handler.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")
	assert.Contains(t, rec.Body.String(), `"email":"a@x.com"`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	mockUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"a@x.com","password":"wrong-password"}`)

	err := handler.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthHandler_CurrentUser_Success(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	account := testAccount()
	mockUC.EXPECT().
		CurrentUser(mock.Anything, account.ID).
		Return(account, nil)

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/auth/current-user", "")
	c.Set(middleware.ContextKeyUserID, account.ID)

	err := handler.CurrentUser(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ann"`)
	assert.Contains(t, rec.Body.String(), `"companyName":"Acme"`)
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestAuthHandler_CurrentUser_MissingContextUserID(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	c, _ := newAuthTestContext(t, http.MethodGet, "/api/auth/current-user", "")

	err := handler.CurrentUser(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthHandler_CurrentUser_NotFound(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockUserUsecase(t)
	handler := NewAuthHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	mockUC.EXPECT().
		CurrentUser(mock.Anything, userID).
		Return(nil, domainerrors.ErrUserNotFound)

	c, _ := newAuthTestContext(t, http.MethodGet, "/api/auth/current-user", "")
	c.Set(middleware.ContextKeyUserID, userID)

	err := handler.CurrentUser(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthHandler_UnknownAuthEndpoint(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(mockusecase.NewMockUserUsecase(t), newDiscardLogger())

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/auth/logout", "")

	err := handler.UnknownAuthEndpoint(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Endpoint not found")
	assert.Contains(t, rec.Body.String(), "POST /api/auth/register")
	assert.Contains(t, rec.Body.String(), "POST /api/auth/login")
	assert.Contains(t, rec.Body.String(), "GET /api/auth/current-user")
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), "Server is running")
}
