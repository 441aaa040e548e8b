package models

import (
	"time"

	"github.com/google/uuid"
)

const TransactionPendingVerification = "pending_verification"

// PurchaseTransaction is append-only. Settlement happens outside this service,
// so nothing here ever updates a row after it is created.
type PurchaseTransaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UserEmail string    `gorm:"size:255;not null" json:"user_email"`

	CentAmount float64 `gorm:"type:numeric(14,2);not null" json:"cent_amount"`
	USDCost    float64 `gorm:"type:numeric(14,2);not null" json:"usd_cost"`

	PaymentMethod  string  `gorm:"size:30;not null" json:"payment_method"`
	PaymentAmount  string  `gorm:"size:64;not null" json:"payment_amount"`
	PaymentAddress string  `gorm:"size:255;not null" json:"payment_address"`
	PaymentMemo    *string `gorm:"size:255" json:"payment_memo,omitempty"`

	Status    string    `gorm:"size:30;not null;default:'pending_verification'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
