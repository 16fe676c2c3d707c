package handler_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fuelpark-service/internal/delivery/http/handler"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/usecase/dto"
)

func newAuthApp(svc *MockAuthService) *fiber.App {
	h := handler.NewAuthHandler(svc, zap.NewNop())
	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	app.Post("/auth/password", h.ChangePassword)
	return app
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockAuthService)
		userID := uuid.New()
		svc.On("Register", mock.Anything, dto.RegisterRequest{Username: "lucia", Password: "secret1"}).
			Return(&dto.AuthResponse{UserID: userID, Username: "lucia", Points: 120}, nil)

		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"username":"lucia","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Contains(t, string(decode(t, resp).Data), userID.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockAuthService)

		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"username":`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, errors.ErrInvalidRequest.Code, decode(t, resp).Error.Code)
	})

	t.Run("short password", func(t *testing.T) {
		svc := new(MockAuthService)

		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"username":"lucia","password":"123"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "min", decode(t, resp).Error.Details["Password"])
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("duplicate user", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, errors.ErrUserAlreadyExists)

		req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{"username":"lucia","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, errors.ErrUserAlreadyExists.StatusCode, resp.StatusCode)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, dto.LoginRequest{Username: "lucia", Password: "secret1"}).
			Return(&dto.AuthResponse{UserID: uuid.New(), Username: "lucia", Points: 140}, nil)

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"lucia","password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(decode(t, resp).Data), `"points":140`)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, mock.Anything).Return(nil, errors.ErrInvalidCredentials)

		req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"lucia","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, errors.ErrInvalidCredentials.Code, decode(t, resp).Error.Code)
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	body := `{"username":"lucia","current_password":"secret1","new_password":"secret2"}`

	t.Run("ok", func(t *testing.T) {
		svc := new(MockAuthService)
		userID := uuid.New()
		svc.On("ChangePassword", mock.Anything, dto.ChangePasswordRequest{
			Username:        "lucia",
			CurrentPassword: "secret1",
			NewPassword:     "secret2",
		}).Return(&dto.PasswordChangedResponse{UserID: userID, Username: "lucia"}, nil)

		req := httptest.NewRequest("POST", "/auth/password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(decode(t, resp).Data), userID.String())
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("ChangePassword", mock.Anything, mock.Anything).Return(nil, errors.ErrInvalidCredentials)

		req := httptest.NewRequest("POST", "/auth/password", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, errors.ErrInvalidCredentials.Code, decode(t, resp).Error.Code)
	})

	t.Run("short new password", func(t *testing.T) {
		svc := new(MockAuthService)

		req := httptest.NewRequest("POST", "/auth/password",
			strings.NewReader(`{"username":"lucia","current_password":"secret1","new_password":"123"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "min", decode(t, resp).Error.Details["NewPassword"])
		svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockAuthService)

		req := httptest.NewRequest("POST", "/auth/password", strings.NewReader(`{`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := newAuthApp(svc).Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
