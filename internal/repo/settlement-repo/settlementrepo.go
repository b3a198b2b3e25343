package settlementrepo

import (
	"context"
	"time"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts the settlement for one completed errand. The unique
// constraint on errand_id keeps the ledger 1:1 with completions.
func (r *Repository) Create(ctx context.Context, s *domain.ErrandSettlement) error {
	query := `
		INSERT INTO errand_settlements (id, errand_id, helper_id, total_amount, status, available_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.ErrandID, s.HelperID, s.TotalAmount, s.Status, s.AvailableAt)
	if err != nil {
		zap.L().Error("can't save settlement", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByHelper(ctx context.Context, helperID string) ([]domain.ErrandSettlement, error) {
	query := `
		SELECT id, errand_id, helper_id, total_amount, status, available_at, created_at
		FROM errand_settlements
		WHERE helper_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, helperID)
	if err != nil {
		zap.L().Error("can't query settlements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var settlements []domain.ErrandSettlement
	for rows.Next() {
		var s domain.ErrandSettlement
		if err := rows.Scan(&s.ID, &s.ErrandID, &s.HelperID, &s.TotalAmount, &s.Status, &s.AvailableAt, &s.CreatedAt); err != nil {
			zap.L().Error("can't scan settlement row", zap.Error(err))
			return nil, err
		}
		settlements = append(settlements, s)
	}
	return settlements, nil
}

// BalanceByHelper computes the aggregate wallet view in one round trip.
// Available is matured settlement money minus everything a withdrawal has
// drawn or is holding.
func (r *Repository) BalanceByHelper(ctx context.Context, helperID string) (*domain.Balance, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_amount) FROM errand_settlements
				WHERE helper_id = $1 AND status IN ('available', 'withdrawn')), 0)
			- COALESCE((SELECT SUM(amount) FROM helper_withdrawals
				WHERE helper_id = $1 AND status IN ('pending', 'approved', 'completed')), 0)
				AS available,
			COALESCE((SELECT SUM(total_amount) FROM errand_settlements
				WHERE helper_id = $1 AND status = 'pending'), 0) AS pending_settlement,
			COALESCE((SELECT SUM(amount) FROM helper_withdrawals
				WHERE helper_id = $1 AND status IN ('pending', 'approved')), 0) AS open_withdrawal,
			COALESCE((SELECT SUM(amount) FROM helper_withdrawals
				WHERE helper_id = $1 AND status = 'completed'), 0) AS total_withdrawn
	`
	balance := domain.Balance{HelperID: helperID}
	err := r.db.QueryRow(ctx, query, helperID).Scan(
		&balance.Available, &balance.PendingSettlement, &balance.OpenWithdrawal, &balance.TotalWithdrawn,
	)
	if err != nil {
		zap.L().Error("can't compute balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// MatureDue releases every settlement whose maturation time has passed.
// Safe under concurrent invocation: the status guard makes it idempotent.
func (r *Repository) MatureDue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE errand_settlements
		SET status = 'available'
		WHERE status = 'pending' AND available_at <= $1
	`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("can't mature settlements", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Consume stamps oldest available settlements as withdrawn, up to the total
// already paid out to the helper. Bookkeeping only: the balance formula in
// BalanceByHelper is what enforces the money invariant.
func (r *Repository) Consume(ctx context.Context, helperID string) error {
	query := `
		WITH paid AS (
			SELECT COALESCE(SUM(amount), 0) AS total
			FROM helper_withdrawals
			WHERE helper_id = $1 AND status = 'completed'
		), consumed AS (
			SELECT COALESCE(SUM(total_amount), 0) AS total
			FROM errand_settlements
			WHERE helper_id = $1 AND status = 'withdrawn'
		), ranked AS (
			SELECT id, SUM(total_amount) OVER (ORDER BY available_at, id) AS running
			FROM errand_settlements
			WHERE helper_id = $1 AND status = 'available'
		)
		UPDATE errand_settlements s
		SET status = 'withdrawn'
		FROM ranked r, paid p, consumed c
		WHERE s.id = r.id AND r.running <= p.total - c.total
	`
	_, err := r.db.Exec(ctx, query, helperID)
	if err != nil {
		zap.L().Error("can't consume settlements", zap.Error(err))
		return err
	}
	return nil
}
