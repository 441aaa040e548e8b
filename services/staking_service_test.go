package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyStakingMath(t *testing.T) {
	balances := []float64{0, 100, 250}
	expected := []float64{0, 110, 275}

	for i, balance := range balances {
		after := balance + balance*WeeklyStakingRate
		assert.Equal(t, expected[i], after, "balance %v", balance)
	}
}

func TestStakingWeekStamp(t *testing.T) {
	assert.Equal(t, "2026-W36", StakingWeek(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-W01", StakingWeek(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	// The same week yields the same stamp regardless of the day the scheduler
	// fires, which is what makes a duplicate delivery a no-op.
	assert.Equal(t,
		StakingWeek(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StakingWeek(time.Date(2026, 9, 6, 23, 0, 0, 0, time.UTC)))
}

func TestApplyWeeklyStakingSweep(t *testing.T) {
	mock := setupMockDB(t)
	now := time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC)

	ids := sqlmock.NewRows([]string{"id"})
	for i := 0; i < 3; i++ {
		ids.AddRow(uuid.New().String())
	}

	mock.ExpectQuery(`SELECT "id" FROM "accounts" WHERE balance > 0`).
		WithArgs("2026-W36").
		WillReturnRows(ids)
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance \+ balance \* \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	summary, err := ApplyWeeklyStaking(now)
	require.NoError(t, err)

	assert.Equal(t, "2026-W36", summary.Week)
	assert.Equal(t, 3, summary.Updated)
	assert.Equal(t, 0, summary.Failed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyWeeklyStakingNothingToDo(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT "id" FROM "accounts" WHERE balance > 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	summary, err := ApplyWeeklyStaking(time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed batch is skipped, later batches still run, and already-applied
// increments stand.
func TestApplyWeeklyStakingContinuesPastBatchFailure(t *testing.T) {
	mock := setupMockDB(t)
	now := time.Date(2026, 8, 31, 3, 0, 0, 0, time.UTC)

	total := stakingBatchSize + 1
	ids := sqlmock.NewRows([]string{"id"})
	for i := 0; i < total; i++ {
		ids.AddRow(uuid.New().String())
	}

	mock.ExpectQuery(`SELECT "id" FROM "accounts" WHERE balance > 0`).
		WillReturnRows(ids)
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance \+ balance \* \$1`).
		WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=balance \+ balance \* \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	summary, err := ApplyWeeklyStaking(now)
	require.NoError(t, err)

	assert.Equal(t, stakingBatchSize, summary.Failed)
	assert.Equal(t, 1, summary.Updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
