package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/shared/validation"
)

// mockAuthUsecase はAuthUsecaseインターフェースのモック実装です。
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, in usecase.SignupInput) (entity.User, error)
	LoginFunc  func(ctx context.Context, username, password string) (string, error)
}

func (m *mockAuthUsecase) Signup(ctx context.Context, in usecase.SignupInput) (entity.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, in)
	}
	return entity.User{}, errors.New("signup not expected")
}

func (m *mockAuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return "", errors.New("login not expected")
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Parallel()

	newUser := func(_ context.Context, in usecase.SignupInput) (entity.User, error) {
		return entity.NewUser(in.Email, in.Username, in.Password, in.Name)
	}

	tests := []struct {
		name           string
		requestBody    gin.H
		mockSignupFunc func(ctx context.Context, in usecase.SignupInput) (entity.User, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: user registration",
			requestBody:    gin.H{"email": "test@example.com", "username": "tester", "password": "password123", "name": "Test"},
			mockSignupFunc: newUser,
			expectedStatus: http.StatusCreated,
			expectedBody:   gin.H{"id": float64(0), "email": "test@example.com", "username": "tester", "name": "Test"},
		},
		{
			name:           "failure: invalid email reported with field",
			requestBody:    gin.H{"email": "invalid-email", "username": "tester", "password": "password123"},
			mockSignupFunc: newUser,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid email", "field": validation.FieldEmail},
		},
		{
			name:           "failure: invalid username reported with field",
			requestBody:    gin.H{"email": "test@example.com", "username": "bad name", "password": "password123"},
			mockSignupFunc: newUser,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid username", "field": validation.FieldUsername},
		},
		{
			name:           "failure: short password (usecase is not called)",
			requestBody:    gin.H{"email": "test@example.com", "username": "tester", "password": "short"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: storage error is hidden",
			requestBody: gin.H{"email": "test@example.com", "username": "tester", "password": "password123"},
			mockSignupFunc: func(context.Context, usecase.SignupInput) (entity.User, error) {
				return entity.User{}, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.mockSignupFunc})
			router := gin.New()
			router.POST("/signup", h.Signup)

			w := doRequest(t, router, http.MethodPost, "/signup", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedBody == nil {
				assert.Contains(t, body, "error")
				return
			}
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, username, password string) (string, error)
		expectedStatus int
		expectedBody   gin.H
	}{
		{
			name:           "success: user login",
			requestBody:    gin.H{"username": "alice", "password": "password123"},
			mockLoginFunc:  func(context.Context, string, string) (string, error) { return "dummy-jwt-token", nil },
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"token": "dummy-jwt-token"},
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"username": "alice"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: invalid credentials",
			requestBody: gin.H{"username": "alice", "password": "wrong-password"},
			mockLoginFunc: func(context.Context, string, string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   gin.H{"error": "invalid username or password"},
		},
		{
			name:        "failure: token signing error is hidden",
			requestBody: gin.H{"username": "alice", "password": "password123"},
			mockLoginFunc: func(context.Context, string, string) (string, error) {
				return "", errors.New("failed to generate token: boom")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.mockLoginFunc})
			router := gin.New()
			router.POST("/login", h.Login)

			w := doRequest(t, router, http.MethodPost, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			body := decodeBody(t, w)
			if tt.expectedBody == nil {
				assert.Contains(t, body, "error")
				return
			}
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
