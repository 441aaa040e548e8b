package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/And937/liberty-cent-app/database"
	"github.com/And937/liberty-cent-app/models"
	"github.com/And937/liberty-cent-app/notifications"
	"github.com/And937/liberty-cent-app/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SignupReferralBonus  = 10.0
	ReferralRewardAmount = 300.0
)

// CreateAccountWithReferral creates the account record at signup and, when a
// valid referral code was supplied, credits both sides exactly once.
//
// The insert is create-if-absent, and the referral credit is gated on the
// account's one-shot referral_credited flag, so a retried signup with the same
// id cannot re-issue either credit. The referrer's balance is bumped with a
// SQL increment, never a read-then-write, because several referrals can land
// on the same referrer concurrently.
func CreateAccountWithReferral(id uuid.UUID, email, hashedPassword string, referralCode *string) (*models.Account, error) {
	code := utils.DeriveReferralCode(id)
	var account models.Account

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var referrer *models.Account
		if referralCode != nil {
			trimmed := strings.TrimSpace(*referralCode)
			if trimmed != "" {
				var found models.Account
				err := tx.Where("referral_code = ?", trimmed).First(&found).Error
				switch {
				case errors.Is(err, gorm.ErrRecordNotFound):
					// Unknown codes are ignored silently, not an error.
					log.Printf("Invalid referral code used at signup: %s", trimmed)
				case err != nil:
					return err
				case found.ID == id:
					// Self-referral guard. Unreachable at signup by
					// construction, but never credit either side.
					log.Printf("Self-referral attempt ignored for account %s", id)
				default:
					referrer = &found
				}
			}
		}

		account = models.Account{
			ID:                 id,
			Email:              email,
			Password:           hashedPassword,
			ReferralCode:       &code,
			VerificationStatus: models.VerificationUnverified,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&account)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				// The id insert is conflict-tolerant, so a duplicate key here
				// means the derived referral code is taken.
				return ErrCodeCollision
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Retried signup: the row already exists, keep whatever credit
			// state it carries.
			if err := tx.First(&account, "id = ?", id).Error; err != nil {
				return err
			}
		}

		if referrer == nil || account.ReferralCredited {
			return nil
		}

		updates := map[string]interface{}{
			"balance":           gorm.Expr("balance + ?", SignupReferralBonus),
			"referral_credited": true,
		}
		if account.ReferredBy == nil {
			updates["referred_by"] = referrer.ID
		}
		if err := tx.Model(&models.Account{}).Where("id = ?", id).UpdateColumns(updates).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Account{}).Where("id = ?", referrer.ID).
			UpdateColumn("balance", gorm.Expr("balance + ?", ReferralRewardAmount)).Error; err != nil {
			return err
		}

		account.Balance += SignupReferralBonus
		account.ReferredBy = &referrer.ID
		account.ReferralCredited = true

		go notifications.SendEmail(
			referrer.Email,
			referrer.Email,
			"You've Earned a Referral Reward!",
			fmt.Sprintf("<h1>Congratulations!</h1><p>Someone signed up with your referral code. %.0f CENT has been added to your balance.</p>", ReferralRewardAmount),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

type ReferredUser struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ReferredUsers lists the accounts that signed up with this account's code.
func ReferredUsers(userID uuid.UUID) ([]ReferredUser, error) {
	var referred []ReferredUser
	err := database.DB.Model(&models.Account{}).
		Select("email", "created_at").
		Where("referred_by = ?", userID).
		Order("created_at desc").
		Find(&referred).Error
	if err != nil {
		return nil, err
	}
	return referred, nil
}
