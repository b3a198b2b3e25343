package helperrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/pg"
	"go.uber.org/zap"
)

const profileColumns = `
	id, user_id, lat, lng, last_location_at, is_online, is_active,
	subscription_status, trial_ends_at, grade, rating, total_completed,
	total_cancelled, bank_name, bank_account, bank_holder,
	verification_status, created_at
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanProfile(row pgx.Row) (*domain.HelperProfile, error) {
	var p domain.HelperProfile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Lat, &p.Lng, &p.LastLocationAt, &p.IsOnline, &p.IsActive,
		&p.SubscriptionStatus, &p.TrialEndsAt, &p.Grade, &p.Rating, &p.TotalCompleted,
		&p.TotalCancelled, &p.BankName, &p.BankAccount, &p.BankHolder,
		&p.VerificationStatus, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.HelperProfile) error {
	query := `
		INSERT INTO helper_profiles (id, user_id, subscription_status, trial_ends_at, grade, verification_status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.UserID, profile.SubscriptionStatus, profile.TrialEndsAt,
		profile.Grade, profile.VerificationStatus,
	)
	if err != nil {
		zap.L().Error("can't create helper profile", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.HelperProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM helper_profiles WHERE id = $1`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find helper profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID string) (*domain.HelperProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM helper_profiles WHERE user_id = $1`
	profile, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find helper profile by user", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (r *Repository) UpdateLocation(ctx context.Context, helperID string, lat, lng float64, at time.Time) error {
	query := `
		UPDATE helper_profiles
		SET lat = $1, lng = $2, last_location_at = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, lat, lng, at, helperID)
	if err != nil {
		zap.L().Error("can't update helper location", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetOnline(ctx context.Context, helperID string, online bool) error {
	query := `
		UPDATE helper_profiles
		SET is_online = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, online, helperID)
	if err != nil {
		zap.L().Error("can't set helper online flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateBank(ctx context.Context, helperID, bankName, bankAccount, bankHolder string) error {
	query := `
		UPDATE helper_profiles
		SET bank_name = $1, bank_account = $2, bank_holder = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, bankName, bankAccount, bankHolder, helperID)
	if err != nil {
		zap.L().Error("can't update helper bank details", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetVerification(ctx context.Context, helperID, status string) error {
	query := `
		UPDATE helper_profiles
		SET verification_status = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, status, helperID)
	if err != nil {
		zap.L().Error("can't update helper verification", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementCompleted(ctx context.Context, helperID string) error {
	query := `
		UPDATE helper_profiles
		SET total_completed = total_completed + 1
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, helperID)
	if err != nil {
		zap.L().Error("can't increment completed counter", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IncrementCancelled(ctx context.Context, helperID string) error {
	query := `
		UPDATE helper_profiles
		SET total_cancelled = total_cancelled + 1
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, helperID)
	if err != nil {
		zap.L().Error("can't increment cancelled counter", zap.Error(err))
		return err
	}
	return nil
}

// Lock takes a row lock on the profile for the duration of the surrounding
// transaction. Serializes withdrawal requests per helper.
func (r *Repository) Lock(ctx context.Context, helperID string) error {
	var id string
	err := r.db.QueryRow(ctx, `SELECT id FROM helper_profiles WHERE id = $1 FOR UPDATE`, helperID).Scan(&id)
	if err != nil {
		zap.L().Error("can't lock helper profile", zap.Error(err))
		return err
	}
	return nil
}

// FindNearby pushes eligibility, freshness and the haversine distance into a
// single set-based query. Results come back ordered by distance, boundary
// inclusive, truncated to limit.
func (r *Repository) FindNearby(ctx context.Context, lat, lng, radiusKm float64, staleMinutes, limit int) ([]domain.NearbyHelper, error) {
	query := `
		SELECT id, grade, rating, distance_km
		FROM (
			SELECT id, grade, rating,
				2 * 6371 * asin(sqrt(
					power(sin(radians((lat - $1) / 2)), 2) +
					cos(radians($1)) * cos(radians(lat)) *
					power(sin(radians((lng - $2) / 2)), 2)
				)) AS distance_km
			FROM helper_profiles
			WHERE is_active
				AND is_online
				AND lat IS NOT NULL
				AND (subscription_status = 'active'
					OR (subscription_status = 'trial' AND trial_ends_at > now()))
				AND last_location_at >= now() - make_interval(mins => $3)
		) candidates
		WHERE distance_km <= $4
		ORDER BY distance_km ASC
		LIMIT $5
	`
	rows, err := r.db.Query(ctx, query, lat, lng, staleMinutes, radiusKm, limit)
	if err != nil {
		zap.L().Error("can't query nearby helpers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var helpers []domain.NearbyHelper
	for rows.Next() {
		var h domain.NearbyHelper
		if err := rows.Scan(&h.HelperID, &h.Grade, &h.Rating, &h.DistanceKm); err != nil {
			zap.L().Error("can't scan nearby helper row", zap.Error(err))
			return nil, err
		}
		helpers = append(helpers, h)
	}
	return helpers, nil
}

// FindLocatable returns eligible helpers with a fresh position; the
// application tier computes distances itself. Fallback for stores without
// trigonometric functions.
func (r *Repository) FindLocatable(ctx context.Context, staleMinutes int) ([]domain.HelperProfile, error) {
	query := `SELECT ` + profileColumns + `
		FROM helper_profiles
		WHERE is_active
			AND is_online
			AND lat IS NOT NULL
			AND (subscription_status = 'active'
				OR (subscription_status = 'trial' AND trial_ends_at > now()))
			AND last_location_at >= now() - make_interval(mins => $1)
	`
	rows, err := r.db.Query(ctx, query, staleMinutes)
	if err != nil {
		zap.L().Error("can't query locatable helpers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.HelperProfile
	for rows.Next() {
		var p domain.HelperProfile
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Lat, &p.Lng, &p.LastLocationAt, &p.IsOnline, &p.IsActive,
			&p.SubscriptionStatus, &p.TrialEndsAt, &p.Grade, &p.Rating, &p.TotalCompleted,
			&p.TotalCancelled, &p.BankName, &p.BankAccount, &p.BankHolder,
			&p.VerificationStatus, &p.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan locatable helper row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
