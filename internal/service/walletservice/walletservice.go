package walletservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/notify"
	"github.com/dkhamitov/helpmate/internal/pg"
)

//go:generate mockgen -source=walletservice.go -destination=walletservice_mock.go -package=walletservice

const (
	SettlementPending   string = "pending"
	SettlementAvailable string = "available"
	SettlementWithdrawn string = "withdrawn"

	WithdrawalPending   string = "pending"
	WithdrawalApproved  string = "approved"
	WithdrawalCompleted string = "completed"
	WithdrawalRejected  string = "rejected"
)

var (
	ErrNoProfile           = errors.New("helper profile not found")
	ErrUnverifiedHelper    = errors.New("helper is not verified")
	ErrBelowMinimum        = errors.New("amount is below the withdrawal minimum")
	ErrWithdrawalPending   = errors.New("a withdrawal is already pending")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrMissingBankDetails  = errors.New("bank details missing on profile")
	ErrWithdrawalNotFound  = errors.New("withdrawal not found")
	ErrWithdrawalConflict  = errors.New("withdrawal is not in the expected status")
)

// InsufficientBalanceError carries the actual available figure.
type InsufficientBalanceError struct {
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: %d available", e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

type HelperRepo interface {
	FindByID(ctx context.Context, id string) (*domain.HelperProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.HelperProfile, error)
	Lock(ctx context.Context, helperID string) error
}

type SettlementRepo interface {
	FindByHelper(ctx context.Context, helperID string) ([]domain.ErrandSettlement, error)
	BalanceByHelper(ctx context.Context, helperID string) (*domain.Balance, error)
	MatureDue(ctx context.Context, now time.Time) (int64, error)
	Consume(ctx context.Context, helperID string) error
}

type WithdrawalRepo interface {
	Create(ctx context.Context, w *domain.HelperWithdrawal) error
	FindByID(ctx context.Context, id string) (*domain.HelperWithdrawal, error)
	FindOpenByHelper(ctx context.Context, helperID string) (*domain.HelperWithdrawal, error)
	FindByHelper(ctx context.Context, helperID string) ([]domain.HelperWithdrawal, error)
	Approve(ctx context.Context, id string) (bool, error)
	Complete(ctx context.Context, id string, at time.Time) (bool, error)
	Reject(ctx context.Context, id string, at time.Time) (bool, error)
}

type Service struct {
	helpers     HelperRepo
	settlements SettlementRepo
	withdrawals WithdrawalRepo
	txManager   pg.TXManager
	notifier    notify.Publisher

	minWithdrawal int64
}

func New(helpers HelperRepo, settlements SettlementRepo, withdrawals WithdrawalRepo, txManager pg.TXManager, notifier notify.Publisher, minWithdrawal int64) *Service {
	return &Service{
		helpers:       helpers,
		settlements:   settlements,
		withdrawals:   withdrawals,
		txManager:     txManager,
		notifier:      notifier,
		minWithdrawal: minWithdrawal,
	}
}

func (s *Service) profile(ctx context.Context, userID string) (*domain.HelperProfile, error) {
	profile, err := s.helpers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoProfile
	}
	return profile, nil
}

func (s *Service) Balance(ctx context.Context, userID string) (*domain.Balance, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.settlements.BalanceByHelper(ctx, profile.ID)
}

func (s *Service) Settlements(ctx context.Context, userID string) ([]domain.ErrandSettlement, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.settlements.FindByHelper(ctx, profile.ID)
}

// RequestWithdrawal turns available balance into a pending payout request.
// The open-withdrawal check, the balance check and the insert run inside one
// transaction with the profile row locked; the partial unique index on open
// withdrawals backstops the single-in-flight rule against concurrent
// requests that slip past the check.
func (s *Service) RequestWithdrawal(ctx context.Context, userID string, amount int64) (*domain.HelperWithdrawal, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.VerificationStatus != "verified" {
		return nil, ErrUnverifiedHelper
	}
	if amount < s.minWithdrawal {
		return nil, ErrBelowMinimum
	}

	withdrawal := &domain.HelperWithdrawal{
		ID:          uuid.New().String(),
		HelperID:    profile.ID,
		Amount:      amount,
		Status:      WithdrawalPending,
		RequestedAt: time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.helpers.Lock(ctx, profile.ID); err != nil {
			return err
		}

		open, err := s.withdrawals.FindOpenByHelper(ctx, profile.ID)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrWithdrawalPending
		}

		balance, err := s.settlements.BalanceByHelper(ctx, profile.ID)
		if err != nil {
			return err
		}
		if amount > balance.Available {
			return &InsufficientBalanceError{Available: balance.Available}
		}

		if profile.BankName == nil || profile.BankAccount == nil || profile.BankHolder == nil ||
			*profile.BankName == "" || *profile.BankAccount == "" || *profile.BankHolder == "" {
			return ErrMissingBankDetails
		}
		// snapshot so later profile edits never alter an in-flight request
		withdrawal.BankName = *profile.BankName
		withdrawal.BankAccount = *profile.BankAccount
		withdrawal.BankHolder = *profile.BankHolder

		if err := s.withdrawals.Create(ctx, withdrawal); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrWithdrawalPending
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, notify.Event{
		Type:   notify.EventWithdrawalRequested,
		UserID: userID,
		Extra:  map[string]string{"withdrawal_id": withdrawal.ID},
	})

	return withdrawal, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, userID string) ([]domain.HelperWithdrawal, error) {
	profile, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withdrawals.FindByHelper(ctx, profile.ID)
}

// Approve moves pending -> approved. Conditional update: a repeat call
// affects nothing and reports the conflict instead of transitioning twice.
func (s *Service) Approve(ctx context.Context, withdrawalID string) error {
	ok, err := s.withdrawals.Approve(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if !ok {
		return s.conflictOrMissing(ctx, withdrawalID)
	}
	return nil
}

// CompleteWithdrawal finalizes the payout after the rail confirms the
// transfer. Settlement consumption is bookkeeping inside the same unit.
func (s *Service) CompleteWithdrawal(ctx context.Context, withdrawalID string) error {
	withdrawal, err := s.withdrawals.FindByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return ErrWithdrawalNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.withdrawals.Complete(ctx, withdrawalID, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrWithdrawalConflict
		}
		return s.settlements.Consume(ctx, withdrawal.HelperID)
	})
	if err != nil {
		return err
	}

	if profile, perr := s.helpers.FindByID(ctx, withdrawal.HelperID); perr == nil && profile != nil {
		s.notifier.Publish(ctx, notify.Event{
			Type:   notify.EventWithdrawalProcessed,
			UserID: profile.UserID,
			Extra:  map[string]string{"withdrawal_id": withdrawalID},
		})
	}
	return nil
}

func (s *Service) Reject(ctx context.Context, withdrawalID string) error {
	ok, err := s.withdrawals.Reject(ctx, withdrawalID, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return s.conflictOrMissing(ctx, withdrawalID)
	}
	return nil
}

func (s *Service) conflictOrMissing(ctx context.Context, withdrawalID string) error {
	withdrawal, err := s.withdrawals.FindByID(ctx, withdrawalID)
	if err != nil {
		return err
	}
	if withdrawal == nil {
		return ErrWithdrawalNotFound
	}
	return ErrWithdrawalConflict
}

// MatureDue is called by the background sweeper.
func (s *Service) MatureDue(ctx context.Context) (int64, error) {
	released, err := s.settlements.MatureDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if released > 0 {
		zap.L().Info("settlements matured", zap.Int64("count", released))
	}
	return released, nil
}
