package services

import (
	"testing"

	"github.com/And937/liberty-cent-app/models"
	"github.com/And937/liberty-cent-app/utils"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccountView(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id =`).
		WillReturnRows(accountRows(accountSeed{
			ID: userID.String(), Email: "a@example.com", Balance: 420,
			ReferralCode: strPtr("abcd1234"), VerificationStatus: models.VerificationVerified,
		}))

	view, err := GetAccountView(userID, "a@example.com")
	require.NoError(t, err)

	assert.Equal(t, float64(420), view.Balance)
	assert.Equal(t, "abcd1234", view.ReferralCode)
	assert.Equal(t, models.VerificationVerified, view.VerificationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A read against a missing record repairs it with a conflict-tolerant insert
// and then serves the fresh row.
func TestGetAccountViewSelfHeals(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()
	code := utils.DeriveReferralCode(userID)

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id =`).
		WillReturnRows(accountRows())
	mock.ExpectExec(`INSERT INTO "accounts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id =`).
		WillReturnRows(accountRows(accountSeed{
			ID: userID.String(), Email: "a@example.com", ReferralCode: &code,
		}))

	view, err := GetAccountView(userID, "a@example.com")
	require.NoError(t, err)

	assert.Equal(t, float64(0), view.Balance)
	assert.Equal(t, code, view.ReferralCode)
	assert.Equal(t, models.VerificationUnverified, view.VerificationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountViewBackfillsLegacyCode(t *testing.T) {
	mock := setupMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id =`).
		WillReturnRows(accountRows(accountSeed{
			ID: userID.String(), Email: "a@example.com", Balance: 50,
		}))
	mock.ExpectExec(`UPDATE "accounts" SET "referral_code"=\$1 WHERE id = \$2 AND referral_code IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	view, err := GetAccountView(userID, "a@example.com")
	require.NoError(t, err)

	assert.Equal(t, utils.DeriveReferralCode(userID), view.ReferralCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
