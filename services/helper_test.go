package services

import (
	"testing"
	"time"

	"github.com/And937/liberty-cent-app/database"
	"github.com/And937/liberty-cent-app/models"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB swaps the package-level DB for a sqlmock-backed one for the
// duration of the test.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction:   true,
		DisableNestedTransaction: true,
		TranslateError:           true,
		Logger:                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	prev := database.DB
	database.DB = gdb
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})

	return mock
}

var accountColumns = []string{
	"id", "email", "password", "balance", "referral_code", "referred_by",
	"referral_credited", "login_streak", "last_bonus_claim_at",
	"verification_status", "last_staking_week", "created_at", "updated_at",
}

type accountSeed struct {
	ID                 string
	Email              string
	Balance            float64
	ReferralCode       *string
	ReferredBy         *string
	ReferralCredited   bool
	LoginStreak        int
	LastBonusClaimAt   *time.Time
	VerificationStatus string
}

func accountRows(seeds ...accountSeed) *sqlmock.Rows {
	rows := sqlmock.NewRows(accountColumns)
	now := time.Now()
	for _, s := range seeds {
		status := s.VerificationStatus
		if status == "" {
			status = models.VerificationUnverified
		}
		var code, referredBy interface{}
		if s.ReferralCode != nil {
			code = *s.ReferralCode
		}
		if s.ReferredBy != nil {
			referredBy = *s.ReferredBy
		}
		var lastClaim interface{}
		if s.LastBonusClaimAt != nil {
			lastClaim = *s.LastBonusClaimAt
		}
		rows.AddRow(
			s.ID, s.Email, "", s.Balance, code, referredBy,
			s.ReferralCredited, s.LoginStreak, lastClaim,
			status, nil, now, now,
		)
	}
	return rows
}
