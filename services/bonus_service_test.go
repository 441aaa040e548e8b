package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimDailyBonusFirstClaim(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = .+FOR UPDATE`).
		WillReturnRows(accountRows(accountSeed{ID: userID.String(), Email: "a@example.com", Balance: 100}))
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := ClaimDailyBonus(userID, now)
	require.NoError(t, err)

	assert.Equal(t, float64(10), result.ClaimedAmount)
	assert.Equal(t, float64(110), result.NewBalance)
	assert.Equal(t, 1, result.NewStreak)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDailyBonusContinuesStreak(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = .+FOR UPDATE`).
		WillReturnRows(accountRows(accountSeed{
			ID: userID.String(), Email: "a@example.com", Balance: 500,
			LoginStreak: 3, LastBonusClaimAt: &yesterday,
		}))
	mock.ExpectExec(`UPDATE "accounts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := ClaimDailyBonus(userID, now)
	require.NoError(t, err)

	assert.Equal(t, float64(40), result.ClaimedAmount)
	assert.Equal(t, float64(540), result.NewBalance)
	assert.Equal(t, 4, result.NewStreak)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A second claim in the same calendar day is refused without touching the row.
// This is the serialized outcome of two racing claims: whichever transaction
// commits first records today's claim, the other reads it under the row lock
// and fails here.
func TestClaimDailyBonusSameDayRefused(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = .+FOR UPDATE`).
		WillReturnRows(accountRows(accountSeed{
			ID: userID.String(), Email: "a@example.com", Balance: 120,
			LoginStreak: 2, LastBonusClaimAt: &earlier,
		}))
	mock.ExpectRollback()

	_, err := ClaimDailyBonus(userID, now)
	require.Error(t, err)

	var claimed *AlreadyClaimedError
	require.ErrorAs(t, err, &claimed)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), claimed.NextEligibleAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDailyBonusMissingAccount(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = .+FOR UPDATE`).
		WillReturnRows(accountRows())
	mock.ExpectRollback()

	_, err := ClaimDailyBonus(userID, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDailyBonusStatusDoesNotMutate(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()
	now := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id =`).
		WillReturnRows(accountRows(accountSeed{
			ID: userID.String(), Email: "a@example.com", Balance: 120,
			LoginStreak: 2, LastBonusClaimAt: &earlier,
		}))

	status, err := GetDailyBonusStatus(userID, now)
	require.NoError(t, err)

	assert.False(t, status.CanClaim)
	assert.Equal(t, 2, status.Streak)
	require.NotNil(t, status.NextClaimTime)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *status.NextClaimTime)
	// No INSERT or UPDATE was expected; any write would fail the mock.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDailyBonusStatusMissingAccount(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id =`).
		WillReturnRows(accountRows())

	status, err := GetDailyBonusStatus(userID, time.Now())
	require.NoError(t, err)

	assert.True(t, status.CanClaim)
	assert.Equal(t, 0, status.Streak)
	assert.Equal(t, float64(10), status.BonusAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
