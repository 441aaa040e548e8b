package services

import (
	"errors"
	"time"

	"github.com/And937/liberty-cent-app/database"
	"github.com/And937/liberty-cent-app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimResult struct {
	ClaimedAmount float64 `json:"claimed_amount"`
	NewBalance    float64 `json:"new_balance"`
	NewStreak     int     `json:"new_streak"`
}

// ClaimDailyBonus re-checks eligibility against the stored row while holding a
// row lock, so two concurrent claims serialize and the loser sees today's
// claim already recorded. Balance, streak and claim timestamp commit together.
func ClaimDailyBonus(userID uuid.UUID, now time.Time) (*ClaimResult, error) {
	var result ClaimResult

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&account, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		eligibility := ClaimEligibility(now, account.LastBonusClaimAt, account.LoginStreak, BonusLocation())
		if !eligibility.Eligible {
			return &AlreadyClaimedError{NextEligibleAt: eligibility.NextEligibleAt}
		}

		bonus := BonusAmountForStreak(eligibility.EffectiveStreak)
		newBalance := account.Balance + bonus
		newStreak := eligibility.EffectiveStreak + 1

		updates := map[string]interface{}{
			"balance":             newBalance,
			"login_streak":        newStreak,
			"last_bonus_claim_at": now,
		}
		if err := tx.Model(&account).Updates(updates).Error; err != nil {
			return err
		}

		result = ClaimResult{ClaimedAmount: bonus, NewBalance: newBalance, NewStreak: newStreak}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

type BonusStatus struct {
	CanClaim      bool       `json:"can_claim"`
	Streak        int        `json:"streak"`
	BonusAmount   float64    `json:"bonus_amount"`
	NextClaimTime *time.Time `json:"next_claim_time,omitempty"`
}

// GetDailyBonusStatus is the read-only projection of claim eligibility. It is
// polled by the countdown UI and never mutates anything.
func GetDailyBonusStatus(userID uuid.UUID, now time.Time) (*BonusStatus, error) {
	var account models.Account
	if err := database.DB.First(&account, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The record self-heals on the next account read; report the
			// state a fresh account would have.
			return &BonusStatus{CanClaim: true, Streak: 0, BonusAmount: BonusAmountForStreak(0)}, nil
		}
		return nil, err
	}

	eligibility := ClaimEligibility(now, account.LastBonusClaimAt, account.LoginStreak, BonusLocation())
	status := &BonusStatus{
		CanClaim:    eligibility.Eligible,
		Streak:      eligibility.EffectiveStreak,
		BonusAmount: BonusAmountForStreak(eligibility.EffectiveStreak),
	}
	if !eligibility.Eligible {
		next := eligibility.NextEligibleAt
		status.NextClaimTime = &next
	}
	return status, nil
}
