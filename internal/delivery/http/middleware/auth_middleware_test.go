package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mailpilot/config"
	domainerrors "mailpilot/internal/domain/errors"
	"mailpilot/internal/domain/service"
	"mailpilot/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTokenService(t *testing.T, secret string) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = secret

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenSvc
}

func newAuthTestMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	return NewAuthMiddleware(newAuthTokenService(t, "test-secret"))
}

func runAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/current-user", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return nil }

	return c, m.Authenticate(next)(c)
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	t.Parallel()

	tokenSvc := newAuthTokenService(t, "test-secret")
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	token, err := tokenSvc.GenerateToken(userID, "a@x.com")
	require.NoError(t, err)

	c, err := runAuthenticate(t, m, "Bearer "+token)

	require.NoError(t, err)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
	assert.Equal(t, "a@x.com", c.Get(ContextKeyEmail))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	t.Parallel()

	m := newAuthTestMiddleware(t)

	_, err := runAuthenticate(t, m, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	t.Parallel()

	m := newAuthTestMiddleware(t)

	_, err := runAuthenticate(t, m, "Basic dXNlcjpwYXNz")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_GarbageToken(t *testing.T) {
	t.Parallel()

	m := newAuthTestMiddleware(t)

	_, err := runAuthenticate(t, m, "Bearer not.a.token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthMiddleware_Authenticate_WrongSecret(t *testing.T) {
	t.Parallel()

	otherSvc := newAuthTokenService(t, "other-secret")
	token, err := otherSvc.GenerateToken(uuid.New(), "a@x.com")
	require.NoError(t, err)

	m := newAuthTestMiddleware(t)

	_, err = runAuthenticate(t, m, "Bearer "+token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
