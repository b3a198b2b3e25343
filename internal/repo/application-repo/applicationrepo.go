package applicationrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/pg"
	"go.uber.org/zap"
)

const applicationColumns = `
	id, errand_id, helper_id, message, proposed_price, status, created_at, updated_at
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts a pending application. The (errand_id, helper_id) unique
// constraint closes the double-application race; callers detect it with
// pg.IsUniqueViolation.
func (r *Repository) Create(ctx context.Context, app *domain.ErrandApplication) error {
	query := `
		INSERT INTO errand_applications (id, errand_id, helper_id, message, proposed_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`
	_, err := r.db.Exec(ctx, query,
		app.ID, app.ErrandID, app.HelperID, app.Message, app.ProposedPrice, app.Status, app.CreatedAt,
	)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save application", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.ErrandApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM errand_applications WHERE id = $1`
	var app domain.ErrandApplication
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.ErrandID, &app.HelperID, &app.Message, &app.ProposedPrice,
		&app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find application", zap.Error(err))
		return nil, err
	}
	return &app, nil
}

func (r *Repository) FindByErrand(ctx context.Context, errandID string) ([]domain.ErrandApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM errand_applications WHERE errand_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, errandID)
	if err != nil {
		zap.L().Error("can't query applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var apps []domain.ErrandApplication
	for rows.Next() {
		var app domain.ErrandApplication
		err := rows.Scan(
			&app.ID, &app.ErrandID, &app.HelperID, &app.Message, &app.ProposedPrice,
			&app.Status, &app.CreatedAt, &app.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// AcceptOne flips a pending application to accepted. Returns false when the
// application was no longer pending.
func (r *Repository) AcceptOne(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE errand_applications
		SET status = 'accepted', updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't accept application", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RejectOthers closes every other pending application on the errand.
func (r *Repository) RejectOthers(ctx context.Context, errandID, acceptedID string) error {
	query := `
		UPDATE errand_applications
		SET status = 'rejected', updated_at = now()
		WHERE errand_id = $1 AND id <> $2 AND status = 'pending'
	`
	_, err := r.db.Exec(ctx, query, errandID, acceptedID)
	if err != nil {
		zap.L().Error("can't reject applications", zap.Error(err))
		return err
	}
	return nil
}

// RejectPending fails all still-pending applications, used on cancel.
func (r *Repository) RejectPending(ctx context.Context, errandID string) error {
	query := `
		UPDATE errand_applications
		SET status = 'rejected', updated_at = now()
		WHERE errand_id = $1 AND status = 'pending'
	`
	_, err := r.db.Exec(ctx, query, errandID)
	if err != nil {
		zap.L().Error("can't reject pending applications", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) WithdrawOne(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE errand_applications
		SET status = 'withdrawn', updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't withdraw application", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
