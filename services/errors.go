package services

import (
	"errors"
	"fmt"
	"time"
)

// Typed failures returned by the ledger services. Handlers map these to HTTP
// statuses; a failed check never leaves a partial mutation behind.
var (
	ErrInvalidToken         = errors.New("authentication token is invalid")
	ErrVerificationRequired = errors.New("account must be verified to make a transaction")
	ErrCodeCollision        = errors.New("referral code already in use")
	ErrNotFound             = errors.New("account record not found")
)

// AlreadyClaimedError is returned when the daily bonus was already claimed in
// the current calendar day. NextEligibleAt is the next local midnight, so the
// caller can render a countdown.
type AlreadyClaimedError struct {
	NextEligibleAt time.Time
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("bonus for today has already been claimed, next claim at %s", e.NextEligibleAt.Format(time.RFC3339))
}
