package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	VerificationUnverified = "unverified"
	VerificationPending    = "pending"
	VerificationVerified   = "verified"
	VerificationRejected   = "rejected"
)

type Account struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	Balance          float64    `gorm:"type:numeric(14,2);not null" json:"balance"`
	ReferralCode     *string    `gorm:"size:10;unique" json:"referral_code"`
	ReferredBy       *uuid.UUID `gorm:"type:uuid" json:"referred_by,omitempty"`
	ReferralCredited bool       `gorm:"not null" json:"-"`

	LoginStreak      int        `gorm:"not null" json:"login_streak"`
	LastBonusClaimAt *time.Time `json:"last_bonus_claim_at"`

	VerificationStatus string `gorm:"size:20;not null" json:"verification_status"`

	// ISO week of the last staking sweep applied to this account, e.g. "2026-W35".
	LastStakingWeek *string `gorm:"size:10" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
