package services

import (
	"errors"
	"log"

	"github.com/And937/liberty-cent-app/database"
	"github.com/And937/liberty-cent-app/models"
	"github.com/And937/liberty-cent-app/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountView struct {
	Balance            float64 `json:"balance"`
	ReferralCode       string  `json:"referral_code"`
	VerificationStatus string  `json:"verification_status"`
}

// GetAccountView returns the balance projection for the account page. A
// missing record is repaired with a create-if-absent insert keyed by id, so a
// concurrent signup for the same id cannot be overwritten; a record without a
// referral code (legacy rows) gets one assigned exactly once.
func GetAccountView(userID uuid.UUID, email string) (*AccountView, error) {
	var account models.Account
	err := database.DB.First(&account, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Account record missing for %s, creating it now", userID)
		code := utils.DeriveReferralCode(userID)
		fresh := models.Account{
			ID:                 userID,
			Email:              email,
			ReferralCode:       &code,
			VerificationStatus: models.VerificationUnverified,
		}
		if err := database.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&fresh).Error; err != nil {
			return nil, err
		}
		if err := database.DB.First(&account, "id = ?", userID).Error; err != nil {
			// Auto-repair itself failed; the caller should retry.
			return nil, ErrNotFound
		}
	} else if err != nil {
		return nil, err
	}

	if account.ReferralCode == nil || *account.ReferralCode == "" {
		log.Printf("Referral code missing for account %s, assigning one now", userID)
		code := utils.DeriveReferralCode(account.ID)
		if err := database.DB.Model(&models.Account{}).
			Where("id = ? AND referral_code IS NULL", account.ID).
			UpdateColumn("referral_code", code).Error; err != nil {
			return nil, err
		}
		account.ReferralCode = &code
	}

	return &AccountView{
		Balance:            account.Balance,
		ReferralCode:       *account.ReferralCode,
		VerificationStatus: account.VerificationStatus,
	}, nil
}
