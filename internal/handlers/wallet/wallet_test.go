package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/dto"
	"github.com/dkhamitov/helpmate/internal/service/walletservice"
	"github.com/dkhamitov/helpmate/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
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

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Balance returned",
			prepareMock: func() {
				service.EXPECT().
					Balance(gomock.Any(), "user-1").
					Return(&domain.Balance{
						HelperID:          "helper-1",
						Available:         45000,
						PendingSettlement: 18000,
						OpenWithdrawal:    0,
						TotalWithdrawn:    120000,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				Available:         45000,
				PendingSettlement: 18000,
				TotalWithdrawn:    120000,
			},
		},
		{
			name: "No helper profile",
			prepareMock: func() {
				service.EXPECT().
					Balance(gomock.Any(), "user-1").
					Return(nil, walletservice.ErrNoProfile)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.GetBalance(w, newRequest(http.MethodGet, "/api/wallet/balance", ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetSettlementsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Settlements(gomock.Any(), "user-1").
		Return([]domain.ErrandSettlement{
			{ID: "s-1", ErrandID: "e-1", TotalAmount: 16200, Status: "available", AvailableAt: time.Now()},
		}, nil)

	w := httptest.NewRecorder()
	handler.GetSettlements(w, newRequest(http.MethodGet, "/api/wallet/settlements", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.SettlementResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, int64(16200), body[0].TotalAmount)
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Withdrawal opened",
			body: `{"amount":30000}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), "user-1", int64(30000)).
					Return(&domain.HelperWithdrawal{
						ID:          "w-1",
						HelperID:    "helper-1",
						Amount:      30000,
						BankName:    "KEB Hana",
						BankAccount: "79927398713",
						BankHolder:  "Kim Minsu",
						Status:      "pending",
						RequestedAt: time.Now(),
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":60000}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), "user-1", int64(60000)).
					Return(nil, &walletservice.InsufficientBalanceError{Available: 45000})
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Withdrawal already open",
			body: `{"amount":30000}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), "user-1", int64(30000)).
					Return(nil, walletservice.ErrWithdrawalPending)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Helper not verified",
			body: `{"amount":30000}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), "user-1", int64(30000)).
					Return(nil, walletservice.ErrUnverifiedHelper)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Below minimum",
			body: `{"amount":500}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), "user-1", int64(500)).
					Return(nil, walletservice.ErrBelowMinimum)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Bank details missing",
			body: `{"amount":30000}`,
			prepareMock: func() {
				service.EXPECT().
					RequestWithdrawal(gomock.Any(), "user-1", int64(30000)).
					Return(nil, walletservice.ErrMissingBankDetails)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.Withdraw(w, newRequest(http.MethodPost, "/api/wallet/withdrawals", tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.WithdrawalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "w-1", body.ID)
				assert.Equal(t, "pending", body.Status)
				assert.Equal(t, "79927398713", body.BankAccount)
			}
		})
	}
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		ListWithdrawals(gomock.Any(), "user-1").
		Return([]domain.HelperWithdrawal{
			{ID: "w-2", Amount: 20000, Status: "completed", RequestedAt: time.Now()},
			{ID: "w-1", Amount: 30000, Status: "rejected", RequestedAt: time.Now().Add(-time.Hour)},
		}, nil)

	w := httptest.NewRecorder()
	handler.GetWithdrawals(w, newRequest(http.MethodGet, "/api/wallet/withdrawals", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.WithdrawalResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
	assert.Equal(t, "w-2", body[0].ID)
}
