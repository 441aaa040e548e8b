package utils

import (
	"strings"

	"github.com/google/uuid"
)

const referralCodeLength = 8

// DeriveReferralCode derives the public referral code from an account id: the
// first characters of the id with hyphens stripped. Deterministic, so a
// retried signup regenerates the same code. Uniqueness is enforced by the
// database index; a collision surfaces to the caller as a signup retry.
func DeriveReferralCode(id uuid.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return compact[:referralCodeLength]
}
