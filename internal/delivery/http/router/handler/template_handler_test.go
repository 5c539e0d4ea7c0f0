package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mailpilot/internal/delivery/http/middleware"
	httpvalidator "mailpilot/internal/delivery/http/validator"
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

func newTemplateTestContext(t *testing.T, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func testTemplate(userID uuid.UUID) *entity.Template {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	return &entity.Template{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Welcome Email",
		Subject:   "Welcome aboard",
		Content:   "<h1>Hello</h1>",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTemplateHandler_List(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	template := testTemplate(userID)
	mockUC.EXPECT().
		ListTemplates(mock.Anything, userID).
		Return([]*entity.Template{template}, nil)

	c, rec := newTemplateTestContext(t, http.MethodGet, "/api/templates", "", userID)

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), template.ID.String())
	assert.Contains(t, rec.Body.String(), `"name":"Welcome Email"`)
}

func TestTemplateHandler_List_Empty(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	mockUC.EXPECT().
		ListTemplates(mock.Anything, userID).
		Return(nil, nil)

	c, rec := newTemplateTestContext(t, http.MethodGet, "/api/templates", "", userID)

	err := handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestTemplateHandler_Get(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	template := testTemplate(userID)
	mockUC.EXPECT().
		GetTemplate(mock.Anything, userID, template.ID).
		Return(template, nil)

	c, rec := newTemplateTestContext(t, http.MethodGet, "/api/templates/"+template.ID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(template.ID.String())

	err := handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"subject":"Welcome aboard"`)
}

func TestTemplateHandler_Get_MalformedID(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	c, _ := newTemplateTestContext(t, http.MethodGet, "/api/templates/not-a-uuid", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestTemplateHandler_Create(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	template := testTemplate(userID)
	mockUC.EXPECT().
		CreateTemplate(mock.Anything, &usecase.CreateTemplateInput{
			UserID:  userID,
			Name:    "Welcome Email",
			Subject: "Welcome aboard",
			Content: "<h1>Hello</h1>",
		}).
		Return(template, nil)

	c, rec := newTemplateTestContext(t, http.MethodPost, "/api/templates",
		`{"name":"Welcome Email","subject":"Welcome aboard","content":"<h1>Hello</h1>"}`, userID)

	err := handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), template.ID.String())
}

// Incomplete payloads are rejected by the request validator before the
// usecase is ever invoked.
func TestTemplateHandler_Create_MissingFields(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	c, _ := newTemplateTestContext(t, http.MethodPost, "/api/templates",
		`{"name":"Welcome Email"}`, uuid.New())

	err := handler.Create(c)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockUC.AssertNotCalled(t, "CreateTemplate", mock.Anything, mock.Anything)
}

func TestTemplateHandler_Update_MissingFields(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	templateID := uuid.New()
	c, _ := newTemplateTestContext(t, http.MethodPut, "/api/templates/"+templateID.String(),
		`{"subject":"Welcome aboard"}`, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(templateID.String())

	err := handler.Update(c)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	mockUC.AssertNotCalled(t, "UpdateTemplate", mock.Anything, mock.Anything)
}

func TestTemplateHandler_Update(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	template := testTemplate(userID)
	template.Name = "Welcome Email v2"
	mockUC.EXPECT().
		UpdateTemplate(mock.Anything, &usecase.UpdateTemplateInput{
			UserID:  userID,
			ID:      template.ID,
			Name:    "Welcome Email v2",
			Subject: "Welcome aboard",
			Content: "<h1>Hello</h1>",
		}).
		Return(template, nil)

	c, rec := newTemplateTestContext(t, http.MethodPut, "/api/templates/"+template.ID.String(),
		`{"name":"Welcome Email v2","subject":"Welcome aboard","content":"<h1>Hello</h1>"}`, userID)
	c.SetParamNames("id")
	c.SetParamValues(template.ID.String())

	err := handler.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Welcome Email v2"`)
}

func TestTemplateHandler_Delete(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	templateID := uuid.New()
	mockUC.EXPECT().
		DeleteTemplate(mock.Anything, userID, templateID).
		Return(nil)

	c, rec := newTemplateTestContext(t, http.MethodDelete, "/api/templates/"+templateID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(templateID.String())

	err := handler.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Template deleted")
}

func TestTemplateHandler_Delete_NotFound(t *testing.T) {
	t.Parallel()

	mockUC := mockusecase.NewMockTemplateUsecase(t)
	handler := NewTemplateHandler(mockUC, newDiscardLogger())

	userID := uuid.New()
	templateID := uuid.New()
	mockUC.EXPECT().
		DeleteTemplate(mock.Anything, userID, templateID).
		Return(domainerrors.ErrTemplateNotFound)

	c, _ := newTemplateTestContext(t, http.MethodDelete, "/api/templates/"+templateID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(templateID.String())

	err := handler.Delete(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}
