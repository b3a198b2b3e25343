package helperservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/pkg/geo"
	"github.com/dkhamitov/helpmate/pkg/validate"
)

//go:generate mockgen -source=helperservice.go -destination=helperservice_mock.go -package=helperservice

var (
	ErrNoProfile          = errors.New("helper profile not found")
	ErrInvalidBankAccount = errors.New("bank account number failed checksum")
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.HelperProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.HelperProfile, error)
	UpdateLocation(ctx context.Context, helperID string, lat, lng float64, at time.Time) error
	SetOnline(ctx context.Context, helperID string, online bool) error
	UpdateBank(ctx context.Context, helperID, bankName, bankAccount, bankHolder string) error
	SetVerification(ctx context.Context, helperID, status string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Profile(ctx context.Context, userID string) (*domain.HelperProfile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrNoProfile
	}
	return profile, nil
}

// UpdateLocation records a position ping. Consumers never read this as
// ambient state: every proximity query carries its own staleness budget
// against last_location_at.
func (s *Service) UpdateLocation(ctx context.Context, userID string, lat, lng float64) error {
	if err := geo.Validate(lat, lng); err != nil {
		return err
	}
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.UpdateLocation(ctx, profile.ID, lat, lng, time.Now())
}

func (s *Service) SetOnline(ctx context.Context, userID string, online bool) error {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.repo.SetOnline(ctx, profile.ID, online); err != nil {
		return err
	}
	zap.L().Info("helper presence changed", zap.String("helperID", profile.ID), zap.Bool("online", online))
	return nil
}

func (s *Service) UpdateBankDetails(ctx context.Context, userID, bankName, bankAccount, bankHolder string) error {
	if !validate.IsLuhn(bankAccount) {
		return ErrInvalidBankAccount
	}
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.UpdateBank(ctx, profile.ID, bankName, bankAccount, bankHolder)
}

// Verify is the operator-side verification step.
func (s *Service) Verify(ctx context.Context, helperID string) error {
	profile, err := s.repo.FindByID(ctx, helperID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrNoProfile
	}
	return s.repo.SetVerification(ctx, helperID, "verified")
}
