package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful registration",
			body: `{"login":"minsu","password":"password123","role":"helper"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "minsu", "password123", "helper").
					Return(&domain.User{ID: "user-1", Login: "minsu", Role: "helper"}, nil)
				service.EXPECT().
					GenerateToken("user-1", "helper").
					Return("token-1", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{"login":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"minsu","password":"password123","role":"helper"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "minsu", "password123", "helper").
					Return(nil, authservice.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Unknown role",
			body: `{"login":"minsu","password":"password123","role":"operator"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "minsu", "password123", "operator").
					Return(nil, authservice.ErrUnknownRole)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Token generation failure",
			body: `{"login":"minsu","password":"password123","role":"requester"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), "minsu", "password123", "requester").
					Return(&domain.User{ID: "user-1", Role: "requester"}, nil)
				service.EXPECT().
					GenerateToken("user-1", "requester").
					Return("", errors.New("signing error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer token-1", w.Header().Get("Authorization"))
				var body dto.RegisterResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "user-1", body.UserID)
				assert.Equal(t, "token-1", body.Token)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"login":"minsu","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "minsu", "password123").
					Return(&domain.User{ID: "user-1", Role: "helper"}, nil)
				service.EXPECT().
					GenerateToken("user-1", "helper").
					Return("token-1", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Wrong credentials",
			body: `{"login":"minsu","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().
					Authenticate(gomock.Any(), "minsu", "wrong").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LoginResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "user-1", body.UserID)
				assert.Equal(t, "helper", body.Role)
				assert.Equal(t, "token-1", body.Token)
			}
		})
	}
}
