package outcomerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/storefront/internal/domain"
)

var outcomeRowColumns = []string{"id", "order_id", "step", "status", "reason", "attempts", "created_at", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Save(t *testing.T) {
	now := time.Now()

	t.Run("New outcome gets an id", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (order_id, step) DO UPDATE")).
			WithArgs(pgxmock.AnyArg(), 7, "coupon", domain.OutcomeFailed, "coupon already consumed").
			WillReturnRows(pgxmock.NewRows([]string{"id", "attempts", "created_at", "updated_at"}).
				AddRow(uuid.MustParse("1c7d2a56-4f7e-4c1a-9b43-5f2b8b7f0a11"), 1, now, now))

		o := &domain.SettlementOutcome{OrderID: 7, Step: "coupon", Status: domain.OutcomeFailed, Reason: "coupon already consumed"}
		assert.NoError(t, repo.Save(context.Background(), o))
		assert.Equal(t, uuid.MustParse("1c7d2a56-4f7e-4c1a-9b43-5f2b8b7f0a11"), o.ID)
		assert.Equal(t, 1, o.Attempts)
	})

	t.Run("Retry keeps existing id and bumps attempts", func(t *testing.T) {
		repo, mock := NewMock(t)
		existing := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta("attempts = settlement_outcomes.attempts + 1")).
			WithArgs(pgxmock.AnyArg(), 7, "coupon", domain.OutcomeSucceeded, "").
			WillReturnRows(pgxmock.NewRows([]string{"id", "attempts", "created_at", "updated_at"}).AddRow(existing, 2, now, now))

		o := &domain.SettlementOutcome{OrderID: 7, Step: "coupon", Status: domain.OutcomeSucceeded}
		assert.NoError(t, repo.Save(context.Background(), o))
		assert.Equal(t, existing, o.ID)
		assert.Equal(t, 2, o.Attempts)
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO settlement_outcomes")).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Save(context.Background(), &domain.SettlementOutcome{OrderID: 7, Step: "coins"}))
	})
}

func TestRepository_ListFailed(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'failed' AND attempts < $1 ORDER BY updated_at LIMIT $2")).
		WithArgs(5, 100).
		WillReturnRows(pgxmock.NewRows(outcomeRowColumns).
			AddRow(id, 7, "commission", domain.OutcomeFailed, "timeout", 2, now, now))

	outcomes, err := repo.ListFailed(context.Background(), 100, 5)
	assert.NoError(t, err)
	assert.Equal(t, []domain.SettlementOutcome{{
		ID: id, OrderID: 7, Step: "commission", Status: domain.OutcomeFailed, Reason: "timeout",
		Attempts: 2, CreatedAt: now, UpdatedAt: now,
	}}, outcomes)

	mock.ExpectQuery(regexp.QuoteMeta("FROM settlement_outcomes")).
		WillReturnError(errors.New("database error"))
	_, err = repo.ListFailed(context.Background(), 100, 5)
	assert.Error(t, err)
}

func TestRepository_ListByOrder(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM settlement_outcomes WHERE order_id = $1")).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(outcomeRowColumns).
			AddRow(uuid.New(), 7, "coupon", domain.OutcomeSucceeded, "", 1, now, now).
			AddRow(uuid.New(), 7, "coins", domain.OutcomeFailed, "timeout", 1, now, now))

	outcomes, err := repo.ListByOrder(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, outcomes, 2)
	assert.Equal(t, "coins", outcomes[1].Step)
}
