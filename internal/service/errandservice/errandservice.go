package errandservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/notify"
	"github.com/dkhamitov/helpmate/internal/pg"
	"github.com/dkhamitov/helpmate/pkg/geo"
)

//go:generate mockgen -source=errandservice.go -destination=errandservice_mock.go -package=errandservice

const (
	// OpenStatus waits for applications.
	OpenStatus string = "OPEN"
	// MatchedStatus has an assigned helper, work not started.
	MatchedStatus string = "MATCHED"
	// InProgressStatus is being executed by the assigned helper.
	InProgressStatus string = "IN_PROGRESS"
	// CompletedStatus is terminal success; it triggers a settlement.
	CompletedStatus string = "COMPLETED"
	// CancelledStatus is terminal; errands are never deleted.
	CancelledStatus string = "CANCELLED"
)

// pricePerKm converts pickup->dropoff distance into the distance component.
const pricePerKm = 500

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrAlreadyMatched    = errors.New("errand already matched")
	ErrErrandNotFound    = errors.New("errand not found")
	ErrNotAssignedHelper = errors.New("caller is not the assigned helper")
	ErrNotParticipant    = errors.New("caller is not a participant of the errand")
)

// TransitionError names the rejected edge.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: %s -> %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type Repo interface {
	Save(ctx context.Context, errand *domain.Errand) error
	FindByID(ctx context.Context, id string) (*domain.Errand, error)
	FindByRequester(ctx context.Context, requesterID string) ([]domain.Errand, error)
	FindByHelper(ctx context.Context, helperID string) ([]domain.Errand, error)
	Match(ctx context.Context, errandID, helperID string) (bool, error)
	Start(ctx context.Context, errandID string, at time.Time) (bool, error)
	Complete(ctx context.Context, errandID string, at time.Time) (bool, error)
	Cancel(ctx context.Context, errandID, reason string, at time.Time) (bool, error)
	CancelExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

type ApplicationRepo interface {
	RejectPending(ctx context.Context, errandID string) error
}

type SettlementRepo interface {
	Create(ctx context.Context, settlement *domain.ErrandSettlement) error
}

type HelperRepo interface {
	FindByID(ctx context.Context, id string) (*domain.HelperProfile, error)
	FindByUserID(ctx context.Context, userID string) (*domain.HelperProfile, error)
	IncrementCompleted(ctx context.Context, helperID string) error
	IncrementCancelled(ctx context.Context, helperID string) error
}

type Service struct {
	repo        Repo
	appRepo     ApplicationRepo
	settlements SettlementRepo
	helpers     HelperRepo
	txManager   pg.TXManager
	notifier    notify.Publisher

	feePct     int
	maturation time.Duration
}

func New(repo Repo, appRepo ApplicationRepo, settlements SettlementRepo, helpers HelperRepo, txManager pg.TXManager, notifier notify.Publisher, feePct int, maturation time.Duration) *Service {
	return &Service{
		repo:        repo,
		appRepo:     appRepo,
		settlements: settlements,
		helpers:     helpers,
		txManager:   txManager,
		notifier:    notifier,
		feePct:      feePct,
		maturation:  maturation,
	}
}

type CreateInput struct {
	Category       string
	PickupLat      float64
	PickupLng      float64
	PickupAddress  string
	DropoffLat     float64
	DropoffLng     float64
	DropoffAddress string
	BasePrice      int64
	Tip            int64
	ScheduledAt    *time.Time
}

func (s *Service) Create(ctx context.Context, requesterID string, in CreateInput) (*domain.Errand, error) {
	if err := geo.Validate(in.PickupLat, in.PickupLng); err != nil {
		return nil, err
	}
	if err := geo.Validate(in.DropoffLat, in.DropoffLng); err != nil {
		return nil, err
	}

	distanceKm := geo.Haversine(in.PickupLat, in.PickupLng, in.DropoffLat, in.DropoffLng)
	distancePrice := int64(math.Round(distanceKm * pricePerKm))

	errand := &domain.Errand{
		ID:             uuid.New().String(),
		RequesterID:    requesterID,
		Category:       in.Category,
		PickupLat:      in.PickupLat,
		PickupLng:      in.PickupLng,
		PickupAddress:  in.PickupAddress,
		DropoffLat:     in.DropoffLat,
		DropoffLng:     in.DropoffLng,
		DropoffAddress: in.DropoffAddress,
		BasePrice:      in.BasePrice,
		DistancePrice:  distancePrice,
		Tip:            in.Tip,
		TotalPrice:     in.BasePrice + distancePrice + in.Tip,
		Status:         OpenStatus,
		ScheduledAt:    in.ScheduledAt,
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Save(ctx, errand); err != nil {
		zap.L().Error("can't save errand", zap.Error(err))
		return nil, err
	}
	return errand, nil
}

// Get returns the errand. Exact coordinates are reserved for the requester
// and the assigned helper; everyone else sees masked positions.
func (s *Service) Get(ctx context.Context, errandID, callerID string) (*domain.Errand, error) {
	errand, err := s.repo.FindByID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if errand == nil {
		return nil, ErrErrandNotFound
	}

	if !s.isParticipant(ctx, errand, callerID) {
		masked := *errand
		pickup := geo.Mask(geo.Point{Lat: errand.PickupLat, Lng: errand.PickupLng}, 1.0)
		dropoff := geo.Mask(geo.Point{Lat: errand.DropoffLat, Lng: errand.DropoffLng}, 1.0)
		masked.PickupLat, masked.PickupLng = pickup.Lat, pickup.Lng
		masked.DropoffLat, masked.DropoffLng = dropoff.Lat, dropoff.Lng
		return &masked, nil
	}
	return errand, nil
}

func (s *Service) isParticipant(ctx context.Context, errand *domain.Errand, callerID string) bool {
	if errand.RequesterID == callerID {
		return true
	}
	if errand.HelperID == nil {
		return false
	}
	profile, err := s.helpers.FindByUserID(ctx, callerID)
	if err != nil || profile == nil {
		return false
	}
	return *errand.HelperID == profile.ID
}

func (s *Service) ListByRequester(ctx context.Context, requesterID string) ([]domain.Errand, error) {
	return s.repo.FindByRequester(ctx, requesterID)
}

func (s *Service) ListByHelper(ctx context.Context, userID string) ([]domain.Errand, error) {
	profile, err := s.helpers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	return s.repo.FindByHelper(ctx, profile.ID)
}

// Match performs the atomic OPEN -> MATCHED transition. It is invoked from
// the application workflow inside its transaction; a lost race surfaces as
// ErrAlreadyMatched and rolls the whole unit back.
func (s *Service) Match(ctx context.Context, errandID, helperID string) error {
	ok, err := s.repo.Match(ctx, errandID, helperID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAlreadyMatched
	}
	return nil
}

func (s *Service) assignedProfile(ctx context.Context, errand *domain.Errand, userID string) (*domain.HelperProfile, error) {
	profile, err := s.helpers.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || errand.HelperID == nil || *errand.HelperID != profile.ID {
		return nil, ErrNotAssignedHelper
	}
	return profile, nil
}

func (s *Service) Start(ctx context.Context, errandID, userID string) (*domain.Errand, error) {
	errand, err := s.repo.FindByID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if errand == nil {
		return nil, ErrErrandNotFound
	}
	if _, err := s.assignedProfile(ctx, errand, userID); err != nil {
		return nil, err
	}

	ok, err := s.repo.Start(ctx, errandID, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &TransitionError{From: errand.Status, To: InProgressStatus}
	}
	return s.repo.FindByID(ctx, errandID)
}

// Complete closes the errand and posts the settlement in one unit of work.
// The settlement is a side effect of the transition itself, never a separate
// best-effort step.
func (s *Service) Complete(ctx context.Context, errandID, userID string) (*domain.Errand, error) {
	errand, err := s.repo.FindByID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if errand == nil {
		return nil, ErrErrandNotFound
	}
	profile, err := s.assignedProfile(ctx, errand, userID)
	if err != nil {
		return nil, err
	}

	completedAt := time.Now()
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Complete(ctx, errandID, completedAt)
		if err != nil {
			return err
		}
		if !ok {
			return &TransitionError{From: errand.Status, To: CompletedStatus}
		}

		fee := errand.TotalPrice * int64(s.feePct) / 100
		settlement := &domain.ErrandSettlement{
			ID:          uuid.New().String(),
			ErrandID:    errand.ID,
			HelperID:    profile.ID,
			TotalAmount: errand.TotalPrice - fee,
			Status:      "pending",
			AvailableAt: completedAt.Add(s.maturation),
		}
		if err := s.settlements.Create(ctx, settlement); err != nil {
			return err
		}
		return s.helpers.IncrementCompleted(ctx, profile.ID)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, notify.Event{
		Type:     notify.EventErrandCompleted,
		UserID:   errand.RequesterID,
		ErrandID: errand.ID,
	})

	return s.repo.FindByID(ctx, errandID)
}

// Cancel transitions from OPEN, MATCHED or IN_PROGRESS, fails still-pending
// applications and notifies the counterpart. Cancelling a COMPLETED errand
// is rejected and leaves it untouched.
func (s *Service) Cancel(ctx context.Context, errandID, callerID, reason string) (*domain.Errand, error) {
	errand, err := s.repo.FindByID(ctx, errandID)
	if err != nil {
		return nil, err
	}
	if errand == nil {
		return nil, ErrErrandNotFound
	}

	byRequester := errand.RequesterID == callerID
	var helperProfile *domain.HelperProfile
	if !byRequester {
		helperProfile, err = s.assignedProfile(ctx, errand, callerID)
		if err != nil {
			return nil, ErrNotParticipant
		}
	}

	assignedHelper := errand.HelperID

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.repo.Cancel(ctx, errandID, reason, time.Now())
		if err != nil {
			return err
		}
		if !ok {
			return &TransitionError{From: errand.Status, To: CancelledStatus}
		}
		if err := s.appRepo.RejectPending(ctx, errandID); err != nil {
			return err
		}
		if !byRequester && helperProfile != nil {
			return s.helpers.IncrementCancelled(ctx, helperProfile.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// notify whoever did not initiate
	recipient := errand.RequesterID
	if byRequester && assignedHelper != nil {
		if profile, err := s.helpers.FindByID(ctx, *assignedHelper); err == nil && profile != nil {
			recipient = profile.UserID
		}
	}
	if recipient != callerID {
		s.notifier.Publish(ctx, notify.Event{
			Type:     notify.EventErrandCancelled,
			UserID:   recipient,
			ErrandID: errand.ID,
			Extra:    map[string]string{"reason": reason},
		})
	}

	return s.repo.FindByID(ctx, errandID)
}

// ExpireOpen is invoked by the background sweeper.
func (s *Service) ExpireOpen(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.CancelExpired(ctx, cutoff)
}
