package geoservice

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/pkg/geo"
)

//go:generate mockgen -source=geoservice.go -destination=geoservice_mock.go -package=geoservice

// ErrInvalidLocation mirrors the validation failure for out-of-range input.
var ErrInvalidLocation = geo.ErrInvalidLocation

const (
	StrategySQL = "sql"
	StrategyApp = "app"
)

type HelperRepo interface {
	FindNearby(ctx context.Context, lat, lng, radiusKm float64, staleMinutes, limit int) ([]domain.NearbyHelper, error)
	FindLocatable(ctx context.Context, staleMinutes int) ([]domain.HelperProfile, error)
}

type ErrandRepo interface {
	FindNearbyOpen(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]domain.NearbyErrand, error)
	FindOpen(ctx context.Context, limit int) ([]domain.Errand, error)
}

type Service struct {
	helpers HelperRepo
	errands ErrandRepo

	strategy     string
	maxRadiusKm  float64
	staleMinutes int
}

func New(helpers HelperRepo, errands ErrandRepo, strategy string, maxRadiusKm float64, staleMinutes int) *Service {
	return &Service{
		helpers:      helpers,
		errands:      errands,
		strategy:     strategy,
		maxRadiusKm:  maxRadiusKm,
		staleMinutes: staleMinutes,
	}
}

type Query struct {
	Lat          float64
	Lng          float64
	RadiusKm     float64
	StaleMinutes int
	Limit        int
}

func (s *Service) normalize(q *Query) error {
	if err := geo.Validate(q.Lat, q.Lng); err != nil {
		return err
	}
	if q.RadiusKm <= 0 || q.RadiusKm > s.maxRadiusKm {
		q.RadiusKm = s.maxRadiusKm
	}
	if q.StaleMinutes <= 0 {
		q.StaleMinutes = s.staleMinutes
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	return nil
}

// NearbyHelpers returns eligible, fresh helpers within the radius, sorted
// ascending by haversine distance. Positions in the result are synthetic
// (random bearing and distance from the origin, bounded by the radius),
// recomputed per request and never persisted: true coordinates are only
// revealed to a matched counterpart.
func (s *Service) NearbyHelpers(ctx context.Context, q Query) ([]domain.NearbyHelper, error) {
	if err := s.normalize(&q); err != nil {
		return nil, err
	}

	var (
		helpers []domain.NearbyHelper
		err     error
	)
	if s.strategy == StrategyApp {
		helpers, err = s.scanHelpers(ctx, q)
	} else {
		helpers, err = s.helpers.FindNearby(ctx, q.Lat, q.Lng, q.RadiusKm, q.StaleMinutes, q.Limit)
	}
	if err != nil {
		zap.L().Error("nearby helpers query failed", zap.Error(err))
		return nil, err
	}

	origin := geo.Point{Lat: q.Lat, Lng: q.Lng}
	for i := range helpers {
		masked := geo.Mask(origin, q.RadiusKm)
		helpers[i].Lat = masked.Lat
		helpers[i].Lng = masked.Lng
	}
	return helpers, nil
}

// scanHelpers is the application-tier strategy: the store narrows by
// eligibility and freshness, distance is computed per candidate here.
// Acceptable at low cardinality only.
func (s *Service) scanHelpers(ctx context.Context, q Query) ([]domain.NearbyHelper, error) {
	candidates, err := s.helpers.FindLocatable(ctx, q.StaleMinutes)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-time.Duration(q.StaleMinutes) * time.Minute)
	var helpers []domain.NearbyHelper
	for _, p := range candidates {
		if p.Lat == nil || p.Lng == nil || p.LastLocationAt == nil {
			continue
		}
		if p.LastLocationAt.Before(cutoff) {
			continue
		}
		d := geo.Haversine(q.Lat, q.Lng, *p.Lat, *p.Lng)
		if d > q.RadiusKm {
			continue
		}
		helpers = append(helpers, domain.NearbyHelper{
			HelperID:   p.ID,
			DistanceKm: d,
			Grade:      p.Grade,
			Rating:     p.Rating,
		})
	}

	sort.Slice(helpers, func(i, j int) bool { return helpers[i].DistanceKm < helpers[j].DistanceKm })
	if len(helpers) > q.Limit {
		helpers = helpers[:q.Limit]
	}
	return helpers, nil
}

// NearbyErrands returns OPEN errands within the radius of the origin,
// measured to the pickup point, ascending by distance.
func (s *Service) NearbyErrands(ctx context.Context, q Query) ([]domain.NearbyErrand, error) {
	if err := s.normalize(&q); err != nil {
		return nil, err
	}

	if s.strategy == StrategyApp {
		return s.scanErrands(ctx, q)
	}

	errands, err := s.errands.FindNearbyOpen(ctx, q.Lat, q.Lng, q.RadiusKm, q.Limit)
	if err != nil {
		zap.L().Error("nearby errands query failed", zap.Error(err))
		return nil, err
	}
	return errands, nil
}

func (s *Service) scanErrands(ctx context.Context, q Query) ([]domain.NearbyErrand, error) {
	open, err := s.errands.FindOpen(ctx, 1000)
	if err != nil {
		return nil, err
	}

	var errands []domain.NearbyErrand
	for _, e := range open {
		d := geo.Haversine(q.Lat, q.Lng, e.PickupLat, e.PickupLng)
		if d > q.RadiusKm {
			continue
		}
		errands = append(errands, domain.NearbyErrand{
			ErrandID:      e.ID,
			DistanceKm:    d,
			Category:      e.Category,
			TotalPrice:    e.TotalPrice,
			PickupAddress: e.PickupAddress,
			PickupLat:     e.PickupLat,
			PickupLng:     e.PickupLng,
		})
	}

	sort.Slice(errands, func(i, j int) bool { return errands[i].DistanceKm < errands[j].DistanceKm })
	if len(errands) > q.Limit {
		errands = errands[:q.Limit]
	}
	return errands, nil
}
