package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/pg"
	"github.com/dkhamitov/helpmate/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

const (
	trialDays = 14
	tokenTTL  = 24 * time.Hour
)

var (
	ErrUserAlreadyExists  = errors.New("login is already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUnknownRole        = errors.New("unknown role")
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}

type HelperRepo interface {
	Create(ctx context.Context, profile *domain.HelperProfile) error
}

type Service struct {
	users     UserRepo
	helpers   HelperRepo
	txManager pg.TXManager
	hash      auth.HashServiceInterface
	jwt       auth.JWTServiceInterface
}

func New(users UserRepo, helpers HelperRepo, txManager pg.TXManager) *Service {
	return &Service{
		users:     users,
		helpers:   helpers,
		txManager: txManager,
		hash:      &auth.HashService{},
		jwt:       &auth.JWTService{},
	}
}

// Register creates the account and, for helpers, provisions the profile in
// the same transaction. New helpers start on trial, ungraded and unverified.
func (s *Service) Register(ctx context.Context, login, password, role string) (*domain.User, error) {
	if role != auth.RoleRequester && role != auth.RoleHelper {
		return nil, ErrUnknownRole
	}

	hash, err := s.hash.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Login:        login,
		PasswordHash: hash,
		Role:         role,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.users.Create(ctx, user); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrUserAlreadyExists
			}
			return err
		}
		if role != auth.RoleHelper {
			return nil
		}
		trialEnd := time.Now().AddDate(0, 0, trialDays)
		profile := &domain.HelperProfile{
			ID:                 uuid.New().String(),
			UserID:             user.ID,
			IsActive:           true,
			SubscriptionStatus: "trial",
			TrialEndsAt:        &trialEnd,
			Grade:              "rookie",
			VerificationStatus: "unverified",
		}
		return s.helpers.Create(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !s.hash.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GenerateToken(userID, role string) (string, error) {
	return s.jwt.GenerateJWT(userID, role, time.Now().Add(tokenTTL))
}
