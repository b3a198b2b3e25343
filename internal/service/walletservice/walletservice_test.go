package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/notify"
	"github.com/dkhamitov/helpmate/internal/pg"
)

type mocks struct {
	helpers     *MockHelperRepo
	settlements *MockSettlementRepo
	withdrawals *MockWithdrawalRepo
	txManager   *pg.MockTXManager
	notifier    *notify.MockPublisher
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		helpers:     NewMockHelperRepo(ctrl),
		settlements: NewMockSettlementRepo(ctrl),
		withdrawals: NewMockWithdrawalRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
		notifier:    notify.NewMockPublisher(ctrl),
	}
	service := New(m.helpers, m.settlements, m.withdrawals, m.txManager, m.notifier, 1000)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func verifiedProfile() *domain.HelperProfile {
	bankName := "KEB Hana"
	bankAccount := "79927398713"
	bankHolder := "Kim Minsu"
	return &domain.HelperProfile{
		ID:                 "helper-1",
		UserID:             "helper-user-1",
		VerificationStatus: "verified",
		BankName:           &bankName,
		BankAccount:        &bankAccount,
		BankHolder:         &bankHolder,
	}
}

func TestBalance(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name: "Retrieve balance successfully",
			prepareMock: func() {
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(verifiedProfile(), nil)
				m.settlements.EXPECT().BalanceByHelper(gomock.Any(), "helper-1").Return(&domain.Balance{
					HelperID:          "helper-1",
					Available:         45000,
					PendingSettlement: 18000,
				}, nil)
			},
			expectedBalance: &domain.Balance{
				HelperID:          "helper-1",
				Available:         45000,
				PendingSettlement: 18000,
			},
		},
		{
			name: "No profile",
			prepareMock: func() {
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(nil, nil)
			},
			expectedError: ErrNoProfile,
		},
		{
			name: "Repo error",
			prepareMock: func() {
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.Balance(context.Background(), "helper-user-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Request succeeds with a bank snapshot",
			amount: 30000,
			prepareMock: func() {
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(verifiedProfile(), nil)
				passthroughTx(m)
				m.helpers.EXPECT().Lock(gomock.Any(), "helper-1").Return(nil)
				m.withdrawals.EXPECT().FindOpenByHelper(gomock.Any(), "helper-1").Return(nil, nil)
				m.settlements.EXPECT().BalanceByHelper(gomock.Any(), "helper-1").
					Return(&domain.Balance{HelperID: "helper-1", Available: 45000}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *domain.HelperWithdrawal) error {
						assert.Equal(t, "helper-1", w.HelperID)
						assert.Equal(t, int64(30000), w.Amount)
						assert.Equal(t, WithdrawalPending, w.Status)
						assert.Equal(t, "79927398713", w.BankAccount)
						assert.Equal(t, "Kim Minsu", w.BankHolder)
						return nil
					},
				)
				m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())
			},
		},
		{
			name:   "Unverified helper",
			amount: 30000,
			prepareMock: func() {
				unverified := verifiedProfile()
				unverified.VerificationStatus = "unverified"
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(unverified, nil)
			},
			expectedError: ErrUnverifiedHelper,
		},
		{
			name:   "Amount below the minimum",
			amount: 999,
			prepareMock: func() {
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(verifiedProfile(), nil)
			},
			expectedError: ErrBelowMinimum,
		},
		{
			name:   "Open withdrawal already exists",
			amount: 30000,
			prepareMock: func() {
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(verifiedProfile(), nil)
				passthroughTx(m)
				m.helpers.EXPECT().Lock(gomock.Any(), "helper-1").Return(nil)
				m.withdrawals.EXPECT().FindOpenByHelper(gomock.Any(), "helper-1").
					Return(&domain.HelperWithdrawal{ID: "w-1", Status: WithdrawalPending}, nil)
			},
			expectedError: ErrWithdrawalPending,
		},
		{
			name:   "Insufficient balance",
			amount: 60000,
			prepareMock: func() {
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(verifiedProfile(), nil)
				passthroughTx(m)
				m.helpers.EXPECT().Lock(gomock.Any(), "helper-1").Return(nil)
				m.withdrawals.EXPECT().FindOpenByHelper(gomock.Any(), "helper-1").Return(nil, nil)
				m.settlements.EXPECT().BalanceByHelper(gomock.Any(), "helper-1").
					Return(&domain.Balance{HelperID: "helper-1", Available: 45000}, nil)
			},
			expectedError: ErrInsufficientBalance,
		},
		{
			name:   "Missing bank details",
			amount: 30000,
			prepareMock: func() {
				noBank := verifiedProfile()
				noBank.BankAccount = nil
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(noBank, nil)
				passthroughTx(m)
				m.helpers.EXPECT().Lock(gomock.Any(), "helper-1").Return(nil)
				m.withdrawals.EXPECT().FindOpenByHelper(gomock.Any(), "helper-1").Return(nil, nil)
				m.settlements.EXPECT().BalanceByHelper(gomock.Any(), "helper-1").
					Return(&domain.Balance{HelperID: "helper-1", Available: 45000}, nil)
			},
			expectedError: ErrMissingBankDetails,
		},
		{
			name:   "Concurrent request loses on the unique index",
			amount: 30000,
			prepareMock: func() {
				m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(verifiedProfile(), nil)
				passthroughTx(m)
				m.helpers.EXPECT().Lock(gomock.Any(), "helper-1").Return(nil)
				m.withdrawals.EXPECT().FindOpenByHelper(gomock.Any(), "helper-1").Return(nil, nil)
				m.settlements.EXPECT().BalanceByHelper(gomock.Any(), "helper-1").
					Return(&domain.Balance{HelperID: "helper-1", Available: 45000}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrWithdrawalPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w, err := service.RequestWithdrawal(context.Background(), "helper-user-1", tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, WithdrawalPending, w.Status)
			}
		})
	}
}

func TestRequestWithdrawalReportsAvailable(t *testing.T) {
	service, m := NewMock(t)

	m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(verifiedProfile(), nil)
	passthroughTx(m)
	m.helpers.EXPECT().Lock(gomock.Any(), "helper-1").Return(nil)
	m.withdrawals.EXPECT().FindOpenByHelper(gomock.Any(), "helper-1").Return(nil, nil)
	m.settlements.EXPECT().BalanceByHelper(gomock.Any(), "helper-1").
		Return(&domain.Balance{HelperID: "helper-1", Available: 12345}, nil)

	_, err := service.RequestWithdrawal(context.Background(), "helper-user-1", 50000)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	var ib *InsufficientBalanceError
	assert.ErrorAs(t, err, &ib)
	assert.Equal(t, int64(12345), ib.Available)
}

func TestApprove(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Approve a pending withdrawal",
			prepareMock: func() {
				m.withdrawals.EXPECT().Approve(gomock.Any(), "w-1").Return(true, nil)
			},
		},
		{
			name: "Repeat approve reports the conflict",
			prepareMock: func() {
				m.withdrawals.EXPECT().Approve(gomock.Any(), "w-1").Return(false, nil)
				m.withdrawals.EXPECT().FindByID(gomock.Any(), "w-1").
					Return(&domain.HelperWithdrawal{ID: "w-1", Status: WithdrawalApproved}, nil)
			},
			expectedError: ErrWithdrawalConflict,
		},
		{
			name: "Unknown withdrawal",
			prepareMock: func() {
				m.withdrawals.EXPECT().Approve(gomock.Any(), "w-1").Return(false, nil)
				m.withdrawals.EXPECT().FindByID(gomock.Any(), "w-1").Return(nil, nil)
			},
			expectedError: ErrWithdrawalNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Approve(context.Background(), "w-1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompleteWithdrawal(t *testing.T) {
	service, m := NewMock(t)

	approved := &domain.HelperWithdrawal{ID: "w-1", HelperID: "helper-1", Status: WithdrawalApproved}

	t.Run("Complete consumes matured settlements", func(t *testing.T) {
		m.withdrawals.EXPECT().FindByID(gomock.Any(), "w-1").Return(approved, nil)
		passthroughTx(m)
		m.withdrawals.EXPECT().Complete(gomock.Any(), "w-1", gomock.Any()).Return(true, nil)
		m.settlements.EXPECT().Consume(gomock.Any(), "helper-1").Return(nil)
		m.helpers.EXPECT().FindByID(gomock.Any(), "helper-1").Return(verifiedProfile(), nil)
		m.notifier.EXPECT().Publish(gomock.Any(), gomock.Any())

		err := service.CompleteWithdrawal(context.Background(), "w-1")
		assert.NoError(t, err)
	})

	t.Run("Complete from wrong status", func(t *testing.T) {
		m.withdrawals.EXPECT().FindByID(gomock.Any(), "w-1").Return(approved, nil)
		passthroughTx(m)
		m.withdrawals.EXPECT().Complete(gomock.Any(), "w-1", gomock.Any()).Return(false, nil)

		err := service.CompleteWithdrawal(context.Background(), "w-1")
		assert.ErrorIs(t, err, ErrWithdrawalConflict)
	})

	t.Run("Unknown withdrawal", func(t *testing.T) {
		m.withdrawals.EXPECT().FindByID(gomock.Any(), "w-1").Return(nil, nil)

		err := service.CompleteWithdrawal(context.Background(), "w-1")
		assert.ErrorIs(t, err, ErrWithdrawalNotFound)
	})
}

func TestReject(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Reject releases the slot", func(t *testing.T) {
		m.withdrawals.EXPECT().Reject(gomock.Any(), "w-1", gomock.Any()).Return(true, nil)

		err := service.Reject(context.Background(), "w-1")
		assert.NoError(t, err)
	})

	t.Run("Reject after completion is a conflict", func(t *testing.T) {
		m.withdrawals.EXPECT().Reject(gomock.Any(), "w-1", gomock.Any()).Return(false, nil)
		m.withdrawals.EXPECT().FindByID(gomock.Any(), "w-1").
			Return(&domain.HelperWithdrawal{ID: "w-1", Status: WithdrawalCompleted}, nil)

		err := service.Reject(context.Background(), "w-1")
		assert.ErrorIs(t, err, ErrWithdrawalConflict)
	})
}

func TestMatureDue(t *testing.T) {
	service, m := NewMock(t)

	m.settlements.EXPECT().MatureDue(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	n, err := service.MatureDue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestListWithdrawals(t *testing.T) {
	service, m := NewMock(t)

	now := time.Now()
	m.helpers.EXPECT().FindByUserID(gomock.Any(), "helper-user-1").Return(verifiedProfile(), nil)
	m.withdrawals.EXPECT().FindByHelper(gomock.Any(), "helper-1").Return([]domain.HelperWithdrawal{
		{ID: "w-1", HelperID: "helper-1", Amount: 30000, Status: WithdrawalCompleted, RequestedAt: now},
	}, nil)

	withdrawals, err := service.ListWithdrawals(context.Background(), "helper-user-1")
	assert.NoError(t, err)
	assert.Len(t, withdrawals, 1)
	assert.Equal(t, int64(30000), withdrawals[0].Amount)
}
