package services

import (
	"errors"

	"github.com/And937/liberty-cent-app/database"
	"github.com/And937/liberty-cent-app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseInput struct {
	CentAmount     float64
	USDCost        float64
	PaymentMethod  string
	PaymentAmount  string
	PaymentAddress string
	PaymentMemo    *string
}

// LogPurchase appends a purchase intent for a verified account. It never
// touches the balance; crediting purchased tokens is reconciled downstream
// once the payment is confirmed.
func LogPurchase(userID uuid.UUID, email string, input PurchaseInput) (*models.PurchaseTransaction, error) {
	var account models.Account
	if err := database.DB.First(&account, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if account.VerificationStatus != models.VerificationVerified {
		return nil, ErrVerificationRequired
	}

	txn := models.PurchaseTransaction{
		UserID:         userID,
		UserEmail:      email,
		CentAmount:     input.CentAmount,
		USDCost:        input.USDCost,
		PaymentMethod:  input.PaymentMethod,
		PaymentAmount:  input.PaymentAmount,
		PaymentAddress: input.PaymentAddress,
		PaymentMemo:    input.PaymentMemo,
		Status:         models.TransactionPendingVerification,
	}
	if err := database.DB.Create(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListPurchases returns the caller's purchase history, newest first.
func ListPurchases(userID uuid.UUID) ([]models.PurchaseTransaction, error) {
	var txns []models.PurchaseTransaction
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
