package applicationrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/dkhamitov/helpmate/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var applicationCols = []string{
	"id", "errand_id", "helper_id", "message", "proposed_price", "status", "created_at", "updated_at",
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	app := &domain.ErrandApplication{
		ID:        "app-1",
		ErrandID:  "errand-1",
		HelperID:  "helper-1",
		Status:    "pending",
		CreatedAt: now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create application successfully",
			mockSetup: func() {
				mock.ExpectExec("INSERT INTO errand_applications").
					WithArgs("app-1", "errand-1", "helper-1", (*string)(nil), (*int64)(nil), "pending", now).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec("INSERT INTO errand_applications").
					WithArgs("app-1", "errand-1", "helper-1", (*string)(nil), (*int64)(nil), "pending", now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Create(ctx, app)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByErrand(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(applicationCols).
		AddRow("app-1", "errand-1", "helper-1", nil, nil, "pending", now.Add(-time.Minute), now.Add(-time.Minute)).
		AddRow("app-2", "errand-1", "helper-2", nil, nil, "pending", now, now)
	mock.ExpectQuery("SELECT (.+) FROM errand_applications WHERE errand_id = \\$1").
		WithArgs("errand-1").
		WillReturnRows(rows)

	apps, err := repo.FindByErrand(ctx, "errand-1")
	assert.NoError(t, err)
	assert.Len(t, apps, 2)
	assert.Equal(t, "app-1", apps[0].ID)
}

func TestRepository_AcceptOne(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Pending application accepted", func(t *testing.T) {
		mock.ExpectExec("UPDATE errand_applications").
			WithArgs("app-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.AcceptOne(ctx, "app-1")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Resolved application is untouched", func(t *testing.T) {
		mock.ExpectExec("UPDATE errand_applications").
			WithArgs("app-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.AcceptOne(ctx, "app-1")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_RejectOthers(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE errand_applications").
		WithArgs("errand-1", "app-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 3))

	err := repo.RejectOthers(ctx, "errand-1", "app-1")
	assert.NoError(t, err)
}

func TestRepository_RejectPending(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	mock.ExpectExec("UPDATE errand_applications").
		WithArgs("errand-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	err := repo.RejectPending(ctx, "errand-1")
	assert.NoError(t, err)
}

func TestRepository_WithdrawOne(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	t.Run("Pending application withdrawn", func(t *testing.T) {
		mock.ExpectExec("UPDATE errand_applications").
			WithArgs("app-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.WithdrawOne(ctx, "app-1")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Rejected application stays rejected", func(t *testing.T) {
		mock.ExpectExec("UPDATE errand_applications").
			WithArgs("app-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.WithdrawOne(ctx, "app-1")
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
