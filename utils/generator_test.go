package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDeriveReferralCode(t *testing.T) {
	id := uuid.MustParse("3f2a9c1b-4d5e-6f70-8192-a3b4c5d6e7f8")

	code := DeriveReferralCode(id)

	assert.Equal(t, "3f2a9c1b", code)
	// Deterministic: a retried signup derives the same code.
	assert.Equal(t, code, DeriveReferralCode(id))
}

func TestDeriveReferralCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := DeriveReferralCode(uuid.New())
		assert.Len(t, code, referralCodeLength)
		assert.NotContains(t, code, "-")
		assert.Equal(t, strings.ToLower(code), code)
	}
}
