package errandrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/pg"
	"go.uber.org/zap"
)

const errandColumns = `
	id, requester_id, helper_id, category,
	pickup_lat, pickup_lng, pickup_address,
	dropoff_lat, dropoff_lng, dropoff_address,
	base_price, distance_price, tip, total_price,
	status, scheduled_at, started_at, completed_at, cancelled_at,
	cancel_reason, created_at
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanErrand(row pgx.Row) (*domain.Errand, error) {
	var e domain.Errand
	err := row.Scan(
		&e.ID, &e.RequesterID, &e.HelperID, &e.Category,
		&e.PickupLat, &e.PickupLng, &e.PickupAddress,
		&e.DropoffLat, &e.DropoffLng, &e.DropoffAddress,
		&e.BasePrice, &e.DistancePrice, &e.Tip, &e.TotalPrice,
		&e.Status, &e.ScheduledAt, &e.StartedAt, &e.CompletedAt, &e.CancelledAt,
		&e.CancelReason, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Save(ctx context.Context, errand *domain.Errand) error {
	query := `
		INSERT INTO errands (
			id, requester_id, category,
			pickup_lat, pickup_lng, pickup_address,
			dropoff_lat, dropoff_lng, dropoff_address,
			base_price, distance_price, tip, total_price,
			status, scheduled_at, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := r.db.Exec(ctx, query,
		errand.ID, errand.RequesterID, errand.Category,
		errand.PickupLat, errand.PickupLng, errand.PickupAddress,
		errand.DropoffLat, errand.DropoffLng, errand.DropoffAddress,
		errand.BasePrice, errand.DistancePrice, errand.Tip, errand.TotalPrice,
		errand.Status, errand.ScheduledAt, errand.CreatedAt,
	)
	if err != nil {
		zap.L().Error("can't save errand", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Errand, error) {
	query := `SELECT ` + errandColumns + ` FROM errands WHERE id = $1`
	errand, err := scanErrand(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find errand", zap.Error(err))
		return nil, err
	}
	return errand, nil
}

func (r *Repository) findList(ctx context.Context, query string, arg any) ([]domain.Errand, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't query errands", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var errands []domain.Errand
	for rows.Next() {
		var e domain.Errand
		err := rows.Scan(
			&e.ID, &e.RequesterID, &e.HelperID, &e.Category,
			&e.PickupLat, &e.PickupLng, &e.PickupAddress,
			&e.DropoffLat, &e.DropoffLng, &e.DropoffAddress,
			&e.BasePrice, &e.DistancePrice, &e.Tip, &e.TotalPrice,
			&e.Status, &e.ScheduledAt, &e.StartedAt, &e.CompletedAt, &e.CancelledAt,
			&e.CancelReason, &e.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan errand row", zap.Error(err))
			return nil, err
		}
		errands = append(errands, e)
	}
	return errands, nil
}

func (r *Repository) FindByRequester(ctx context.Context, requesterID string) ([]domain.Errand, error) {
	query := `SELECT ` + errandColumns + ` FROM errands WHERE requester_id = $1 ORDER BY created_at DESC`
	return r.findList(ctx, query, requesterID)
}

func (r *Repository) FindByHelper(ctx context.Context, helperID string) ([]domain.Errand, error) {
	query := `SELECT ` + errandColumns + ` FROM errands WHERE helper_id = $1 ORDER BY created_at DESC`
	return r.findList(ctx, query, helperID)
}

// Match is the single atomic OPEN -> MATCHED transition. Exactly one caller
// can observe true for a given errand.
func (r *Repository) Match(ctx context.Context, errandID, helperID string) (bool, error) {
	query := `
		UPDATE errands
		SET status = 'MATCHED', helper_id = $2
		WHERE id = $1 AND status = 'OPEN'
	`
	tag, err := r.db.Exec(ctx, query, errandID, helperID)
	if err != nil {
		zap.L().Error("can't match errand", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Start(ctx context.Context, errandID string, at time.Time) (bool, error) {
	query := `
		UPDATE errands
		SET status = 'IN_PROGRESS', started_at = $2
		WHERE id = $1 AND status = 'MATCHED'
	`
	tag, err := r.db.Exec(ctx, query, errandID, at)
	if err != nil {
		zap.L().Error("can't start errand", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Complete(ctx context.Context, errandID string, at time.Time) (bool, error) {
	query := `
		UPDATE errands
		SET status = 'COMPLETED', completed_at = $2
		WHERE id = $1 AND status = 'IN_PROGRESS'
	`
	tag, err := r.db.Exec(ctx, query, errandID, at)
	if err != nil {
		zap.L().Error("can't complete errand", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Cancel(ctx context.Context, errandID, reason string, at time.Time) (bool, error) {
	query := `
		UPDATE errands
		SET status = 'CANCELLED', helper_id = NULL, cancelled_at = $2, cancel_reason = $3
		WHERE id = $1 AND status IN ('OPEN', 'MATCHED', 'IN_PROGRESS')
	`
	tag, err := r.db.Exec(ctx, query, errandID, at, reason)
	if err != nil {
		zap.L().Error("can't cancel errand", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CancelExpired sweeps OPEN errands whose scheduled time passed the cutoff.
func (r *Repository) CancelExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE errands
		SET status = 'CANCELLED', cancelled_at = now(), cancel_reason = 'expired'
		WHERE status = 'OPEN' AND scheduled_at IS NOT NULL AND scheduled_at < $1
	`
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't cancel expired errands", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) FindNearbyOpen(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]domain.NearbyErrand, error) {
	query := `
		SELECT id, category, total_price, pickup_address, pickup_lat, pickup_lng, distance_km
		FROM (
			SELECT id, category, total_price, pickup_address, pickup_lat, pickup_lng,
				2 * 6371 * asin(sqrt(
					power(sin(radians((pickup_lat - $1) / 2)), 2) +
					cos(radians($1)) * cos(radians(pickup_lat)) *
					power(sin(radians((pickup_lng - $2) / 2)), 2)
				)) AS distance_km
			FROM errands
			WHERE status = 'OPEN'
		) candidates
		WHERE distance_km <= $3
		ORDER BY distance_km ASC
		LIMIT $4
	`
	rows, err := r.db.Query(ctx, query, lat, lng, radiusKm, limit)
	if err != nil {
		zap.L().Error("can't query nearby errands", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var errands []domain.NearbyErrand
	for rows.Next() {
		var e domain.NearbyErrand
		if err := rows.Scan(&e.ErrandID, &e.Category, &e.TotalPrice, &e.PickupAddress, &e.PickupLat, &e.PickupLng, &e.DistanceKm); err != nil {
			zap.L().Error("can't scan nearby errand row", zap.Error(err))
			return nil, err
		}
		errands = append(errands, e)
	}
	return errands, nil
}

func (r *Repository) FindOpen(ctx context.Context, limit int) ([]domain.Errand, error) {
	query := `SELECT ` + errandColumns + ` FROM errands WHERE status = 'OPEN' ORDER BY created_at DESC LIMIT $1`
	return r.findList(ctx, query, limit)
}
