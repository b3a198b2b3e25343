package applicationservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/notify"
	"github.com/dkhamitov/helpmate/internal/pg"
	"github.com/dkhamitov/helpmate/internal/service/errandservice"
)

//go:generate mockgen -source=applicationservice.go -destination=applicationservice_mock.go -package=applicationservice

const (
	PendingStatus   string = "pending"
	AcceptedStatus  string = "accepted"
	RejectedStatus  string = "rejected"
	WithdrawnStatus string = "withdrawn"
)

var (
	ErrNotOpen               = errors.New("errand is not open")
	ErrSelfApplication       = errors.New("requester can't apply to own errand")
	ErrHelperIneligible      = errors.New("helper is not eligible for dispatch")
	ErrDuplicateApplication  = errors.New("helper already applied to this errand")
	ErrApplicationNotFound   = errors.New("application not found")
	ErrApplicationNotPending = errors.New("application is not pending")
	ErrNotRequester          = errors.New("caller is not the errand requester")
	ErrNotApplicant          = errors.New("caller is not the applicant")
	ErrAlreadyMatched        = errandservice.ErrAlreadyMatched
	ErrErrandNotFound        = errandservice.ErrErrandNotFound
)

type Repo interface {
	Create(ctx context.Context, app *domain.ErrandApplication) error
	FindByID(ctx context.Context, id string) (*domain.ErrandApplication, error)
	FindByErrand(ctx context.Context, errandID string) ([]domain.ErrandApplication, error)
	AcceptOne(ctx context.Context, id string) (bool, error)
	RejectOthers(ctx context.Context, errandID, acceptedID string) error
	WithdrawOne(ctx context.Context, id string) (bool, error)
}

type ErrandRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Errand, error)
}

type HelperRepo interface {
	FindByID(ctx context.Context, id string) (*domain.HelperProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.HelperProfile, error)
}

// Matcher is the errand state machine entry point used on accept.
type Matcher interface {
	Match(ctx context.Context, errandID, helperID string) error
}

type Service struct {
	repo      Repo
	errands   ErrandRepo
	helpers   HelperRepo
	matcher   Matcher
	txManager pg.TXManager
	notifier  notify.Publisher
}

func New(repo Repo, errands ErrandRepo, helpers HelperRepo, matcher Matcher, txManager pg.TXManager, notifier notify.Publisher) *Service {
	return &Service{
		repo:      repo,
		errands:   errands,
		helpers:   helpers,
		matcher:   matcher,
		txManager: txManager,
		notifier:  notifier,
	}
}

func eligible(p *domain.HelperProfile) bool {
	if !p.IsActive || !p.IsOnline {
		return false
	}
	switch p.SubscriptionStatus {
	case "active":
		return true
	case "trial":
		return p.TrialEndsAt != nil && p.TrialEndsAt.After(time.Now())
	default:
		return false
	}
}

// Apply creates a pending application. The duplicate check rides on the
// (errand_id, helper_id) unique constraint, so two near-simultaneous calls
// can't both insert.
func (s *Service) Apply(ctx context.Context, errandID, userID string, message *string, proposedPrice *int64) (*domain.ErrandApplication, error) {
	errand, err := s.errands.FindByID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if errand == nil {
		return nil, ErrErrandNotFound
	}
	if errand.Status != errandservice.OpenStatus {
		return nil, ErrNotOpen
	}
	if errand.RequesterID == userID {
		return nil, ErrSelfApplication
	}

	profile, err := s.helpers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !eligible(profile) {
		return nil, ErrHelperIneligible
	}

	app := &domain.ErrandApplication{
		ID:            uuid.New().String(),
		ErrandID:      errandID,
		HelperID:      profile.ID,
		Message:       message,
		ProposedPrice: proposedPrice,
		Status:        PendingStatus,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Create(ctx, app); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateApplication
		}
		zap.L().Error("can't create application", zap.Error(err))
		return nil, err
	}

	s.notifier.Publish(ctx, notify.Event{
		Type:     notify.EventApplicationReceived,
		UserID:   errand.RequesterID,
		ErrandID: errandID,
	})

	return app, nil
}

// Accept resolves the competition in one unit of work: the chosen
// application becomes accepted, every other pending one is rejected and the
// errand transitions OPEN -> MATCHED. If the conditional match loses a race
// the whole unit rolls back and the caller sees ErrAlreadyMatched.
func (s *Service) Accept(ctx context.Context, errandID, applicationID, requesterID string) (*domain.ErrandApplication, error) {
	errand, err := s.errands.FindByID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if errand == nil {
		return nil, ErrErrandNotFound
	}
	if errand.RequesterID != requesterID {
		return nil, ErrNotRequester
	}

	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil || app.ErrandID != errandID {
		return nil, ErrApplicationNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.AcceptOne(ctx, applicationID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrApplicationNotPending
		}
		if err := s.repo.RejectOthers(ctx, errandID, applicationID); err != nil {
			return err
		}
		return s.matcher.Match(ctx, errandID, app.HelperID)
	})
	if err != nil {
		return nil, err
	}

	s.notifyResolution(ctx, errand, app)

	return s.repo.FindByID(ctx, applicationID)
}

// notifyResolution fans the accept outcome out to every party: the winner,
// the requester and each auto-rejected applicant. Best-effort only.
func (s *Service) notifyResolution(ctx context.Context, errand *domain.Errand, accepted *domain.ErrandApplication) {
	if profile, err := s.helpers.FindByID(ctx, accepted.HelperID); err == nil && profile != nil {
		s.notifier.Publish(ctx, notify.Event{
			Type:     notify.EventApplicationAccepted,
			UserID:   profile.UserID,
			ErrandID: errand.ID,
		})
	}

	s.notifier.Publish(ctx, notify.Event{
		Type:     notify.EventErrandMatched,
		UserID:   errand.RequesterID,
		ErrandID: errand.ID,
	})

	apps, err := s.repo.FindByErrand(ctx, errand.ID)
	if err != nil {
		zap.L().Warn("can't list applications for rejection notices", zap.Error(err))
		return
	}
	for i := range apps {
		if apps[i].ID == accepted.ID || apps[i].Status != RejectedStatus {
			continue
		}
		profile, err := s.helpers.FindByID(ctx, apps[i].HelperID)
		if err != nil || profile == nil {
			continue
		}
		s.notifier.Publish(ctx, notify.Event{
			Type:     notify.EventApplicationRejected,
			UserID:   profile.UserID,
			ErrandID: errand.ID,
		})
	}
}

// Withdraw retracts the helper's own pending application. The errand itself
// is untouched.
func (s *Service) Withdraw(ctx context.Context, applicationID, userID string) (*domain.ErrandApplication, error) {
	app, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	profile, err := s.helpers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ID != app.HelperID {
		return nil, ErrNotApplicant
	}

	ok, err := s.repo.WithdrawOne(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrApplicationNotPending
	}

	return s.repo.FindByID(ctx, applicationID)
}

func (s *Service) ListByErrand(ctx context.Context, errandID, requesterID string) ([]domain.ErrandApplication, error) {
	errand, err := s.errands.FindByID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if errand == nil {
		return nil, ErrErrandNotFound
	}
	if errand.RequesterID != requesterID {
		return nil, ErrNotRequester
	}
	return s.repo.FindByErrand(ctx, errandID)
}
