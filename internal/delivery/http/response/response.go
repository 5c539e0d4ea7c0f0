// Package response defines the JSON shapes returned to API clients.
package response

import (
	"net/http"
	"time"

	"mailpilot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserPayload is the user projection returned to clients. The password
// hash is never serialized.
type UserPayload struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUserPayload maps a domain user onto the client projection.
func NewUserPayload(user *entity.User) *UserPayload {
	if user == nil {
		return nil
	}

	return &UserPayload{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		CompanyName: user.CompanyName,
		CreatedAt:   user.CreatedAt,
	}
}

// AuthResponse is the body returned by register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *UserPayload `json:"user"`
	Token   string       `json:"token"`
}

// UserResponse is the body returned by the current-user endpoint.
type UserResponse struct {
	User *UserPayload `json:"user"`
}

// MessageResponse is the body of every error response and of plain
// confirmation replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// EndpointsResponse is the 404 body for unknown auth routes. The
// endpoint list is a usability aid for API clients.
type EndpointsResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// Auth writes a register/login response.
func Auth(c echo.Context, statusCode int, message string, user *entity.User, token string) error {
	return c.JSON(statusCode, AuthResponse{
		Message: message,
		User:    NewUserPayload(user),
		Token:   token,
	})
}

// CurrentUser writes the current-user response.
func CurrentUser(c echo.Context, user *entity.User) error {
	return c.JSON(http.StatusOK, UserResponse{User: NewUserPayload(user)})
}

// Message writes a plain {message} response.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// UnknownEndpoint writes the 404 body listing valid endpoints.
func UnknownEndpoint(c echo.Context, message string, endpoints []string) error {
	return c.JSON(http.StatusNotFound, EndpointsResponse{
		Message:   message,
		Endpoints: endpoints,
	})
}
