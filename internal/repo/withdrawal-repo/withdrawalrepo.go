package withdrawalrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dkhamitov/helpmate/internal/domain"
	"github.com/dkhamitov/helpmate/internal/pg"
	"go.uber.org/zap"
)

const withdrawalColumns = `
	id, helper_id, amount, bank_name, bank_account, bank_holder, status, requested_at, processed_at
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts a pending withdrawal with the bank snapshot. The partial
// unique index on open withdrawals backstops the single-in-flight rule;
// callers detect the violation with pg.IsUniqueViolation.
func (r *Repository) Create(ctx context.Context, w *domain.HelperWithdrawal) error {
	query := `
		INSERT INTO helper_withdrawals (id, helper_id, amount, bank_name, bank_account, bank_holder, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		w.ID, w.HelperID, w.Amount, w.BankName, w.BankAccount, w.BankHolder, w.Status, w.RequestedAt,
	)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save withdrawal", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.HelperWithdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM helper_withdrawals WHERE id = $1`
	var w domain.HelperWithdrawal
	err := r.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.HelperID, &w.Amount, &w.BankName, &w.BankAccount, &w.BankHolder,
		&w.Status, &w.RequestedAt, &w.ProcessedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) FindOpenByHelper(ctx context.Context, helperID string) (*domain.HelperWithdrawal, error) {
	query := `SELECT ` + withdrawalColumns + `
		FROM helper_withdrawals
		WHERE helper_id = $1 AND status IN ('pending', 'approved')
		LIMIT 1
	`
	var w domain.HelperWithdrawal
	err := r.db.QueryRow(ctx, query, helperID).Scan(
		&w.ID, &w.HelperID, &w.Amount, &w.BankName, &w.BankAccount, &w.BankHolder,
		&w.Status, &w.RequestedAt, &w.ProcessedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find open withdrawal", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) FindByHelper(ctx context.Context, helperID string) ([]domain.HelperWithdrawal, error) {
	query := `SELECT ` + withdrawalColumns + `
		FROM helper_withdrawals
		WHERE helper_id = $1
		ORDER BY requested_at DESC
	`
	rows, err := r.db.Query(ctx, query, helperID)
	if err != nil {
		zap.L().Error("can't query withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.HelperWithdrawal
	for rows.Next() {
		var w domain.HelperWithdrawal
		err := rows.Scan(
			&w.ID, &w.HelperID, &w.Amount, &w.BankName, &w.BankAccount, &w.BankHolder,
			&w.Status, &w.RequestedAt, &w.ProcessedAt,
		)
		if err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, nil
}

// Approve, Complete and Reject are conditional updates: repeating a call on
// an already-transitioned row affects zero rows and never double-applies.

func (r *Repository) Approve(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE helper_withdrawals
		SET status = 'approved'
		WHERE id = $1 AND status = 'pending'
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't approve withdrawal", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Complete(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE helper_withdrawals
		SET status = 'completed', processed_at = $2
		WHERE id = $1 AND status = 'approved'
	`
	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		zap.L().Error("can't complete withdrawal", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Reject(ctx context.Context, id string, at time.Time) (bool, error) {
	query := `
		UPDATE helper_withdrawals
		SET status = 'rejected', processed_at = $2
		WHERE id = $1 AND status IN ('pending', 'approved')
	`
	tag, err := r.db.Exec(ctx, query, id, at)
	if err != nil {
		zap.L().Error("can't reject withdrawal", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
