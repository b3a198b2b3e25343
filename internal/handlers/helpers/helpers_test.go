package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/helperservice"
	"github.com/dkhamitov/helpmate/pkg/auth"
	"github.com/dkhamitov/helpmate/pkg/geo"
)

func NewMock(t *testing.T) (*HelperHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, url, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, url, nil)
	} else {
		r = httptest.NewRequest(method, url, bytes.NewBufferString(body))
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, "user-1")
	return r.WithContext(ctx)
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile returned",
			prepareMock: func() {
				service.EXPECT().
					Profile(gomock.Any(), "user-1").
					Return(&domain.HelperProfile{
						ID:                 "helper-1",
						UserID:             "user-1",
						IsOnline:           true,
						IsActive:           true,
						SubscriptionStatus: "active",
						Grade:              "expert",
						Rating:             4.8,
						TotalCompleted:     42,
						VerificationStatus: "verified",
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No profile",
			prepareMock: func() {
				service.EXPECT().
					Profile(gomock.Any(), "user-1").
					Return(nil, helperservice.ErrNoProfile)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.GetProfile(w, newRequest(http.MethodGet, "/api/helpers/me", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.HelperProfileResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "helper-1", body.ID)
				assert.Equal(t, "expert", body.Grade)
			}
		})
	}
}

func TestUpdateLocationHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Location stored",
			body: `{"lat":37.5665,"lng":126.978}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateLocation(gomock.Any(), "user-1", 37.5665, 126.978).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Invalid request body",
			body:         `{"lat":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Out-of-range coordinates",
			body: `{"lat":95,"lng":126.978}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateLocation(gomock.Any(), "user-1", 95.0, 126.978).
					Return(geo.ErrInvalidLocation)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.UpdateLocation(w, newRequest(http.MethodPut, "/api/helpers/me/location", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestOnlineHandlers(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Go online", func(t *testing.T) {
		service.EXPECT().
			SetOnline(gomock.Any(), "user-1", true).
			Return(nil)

		w := httptest.NewRecorder()
		handler.GoOnline(w, newRequest(http.MethodPost, "/api/helpers/me/online", ""))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Go offline", func(t *testing.T) {
		service.EXPECT().
			SetOnline(gomock.Any(), "user-1", false).
			Return(nil)

		w := httptest.NewRecorder()
		handler.GoOffline(w, newRequest(http.MethodPost, "/api/helpers/me/offline", ""))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestUpdateBankDetailsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Bank details stored",
			body: `{"bank_name":"KEB Hana","bank_account":"79927398713","bank_holder":"Kim Minsu"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateBankDetails(gomock.Any(), "user-1", "KEB Hana", "79927398713", "Kim Minsu").
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Account fails checksum",
			body: `{"bank_name":"KEB Hana","bank_account":"79927398710","bank_holder":"Kim Minsu"}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateBankDetails(gomock.Any(), "user-1", "KEB Hana", "79927398710", "Kim Minsu").
					Return(helperservice.ErrInvalidBankAccount)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.UpdateBankDetails(w, newRequest(http.MethodPut, "/api/helpers/me/bank", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
