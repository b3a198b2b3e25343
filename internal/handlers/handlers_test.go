package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/dkhamitov/helpmate/docs"
	"github.com/dkhamitov/helpmate/internal/service"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.ErrandHandler)
	assert.NotNil(t, h.ApplicationHandler)
	assert.NotNil(t, h.GeoHandler)
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.HelperHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockErrandHandler := NewMockErrandHandler(ctrl)
	mockApplicationHandler := NewMockApplicationHandler(ctrl)
	mockGeoHandler := NewMockGeoHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockHelperHandler := NewMockHelperHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:        mockAuthHandler,
		ErrandHandler:      mockErrandHandler,
		ApplicationHandler: mockApplicationHandler,
		GeoHandler:         mockGeoHandler,
		WalletHandler:      mockWalletHandler,
		HelperHandler:      mockHelperHandler,
		AdminHandler:       mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"POST", "/api/errands", http.StatusUnauthorized},
		{"GET", "/api/errands/mine", http.StatusUnauthorized},
		{"GET", "/api/errands/e-1", http.StatusUnauthorized},
		{"POST", "/api/errands/e-1/start", http.StatusUnauthorized},
		{"POST", "/api/errands/e-1/complete", http.StatusUnauthorized},
		{"POST", "/api/errands/e-1/cancel", http.StatusUnauthorized},
		{"POST", "/api/errands/e-1/applications", http.StatusUnauthorized},
		{"GET", "/api/errands/e-1/applications", http.StatusUnauthorized},
		{"POST", "/api/errands/e-1/applications/a-1/accept", http.StatusUnauthorized},
		{"POST", "/api/applications/a-1/withdraw", http.StatusUnauthorized},
		{"GET", "/api/geo/helpers", http.StatusUnauthorized},
		{"GET", "/api/geo/errands", http.StatusUnauthorized},
		{"GET", "/api/wallet/balance", http.StatusUnauthorized},
		{"GET", "/api/wallet/settlements", http.StatusUnauthorized},
		{"POST", "/api/wallet/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/wallet/withdrawals", http.StatusUnauthorized},
		{"GET", "/api/helpers/me", http.StatusUnauthorized},
		{"PUT", "/api/helpers/me/location", http.StatusUnauthorized},
		{"POST", "/api/helpers/me/online", http.StatusUnauthorized},
		{"POST", "/api/helpers/me/offline", http.StatusUnauthorized},
		{"PUT", "/api/helpers/me/bank", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/w-1/approve", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/w-1/complete", http.StatusUnauthorized},
		{"POST", "/api/admin/withdrawals/w-1/reject", http.StatusUnauthorized},
		{"POST", "/api/admin/helpers/h-1/verify", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
