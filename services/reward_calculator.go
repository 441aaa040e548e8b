package services

import (
	"log"
	"sync"
	"time"

	config "github.com/And937/liberty-cent-app/configs"
)

// BonusAmountForStreak returns the daily bonus for the streak the user holds
// *before* this claim. The ladder caps at 100 CENT from day 7 onwards.
func BonusAmountForStreak(streak int) float64 {
	switch {
	case streak <= 0:
		return 10
	case streak == 1:
		return 20
	case streak == 2:
		return 30
	case streak == 3:
		return 40
	case streak == 4:
		return 50
	case streak == 5:
		return 60
	default:
		return 100
	}
}

type Eligibility struct {
	Eligible        bool
	EffectiveStreak int
	NextEligibleAt  time.Time
}

// ClaimEligibility decides whether a claim is allowed at `now` given the last
// successful claim. Calendar days are evaluated in loc; a fully skipped day
// resets the streak, a same-day claim is refused until the next midnight.
func ClaimEligibility(now time.Time, lastClaimAt *time.Time, currentStreak int, loc *time.Location) Eligibility {
	if lastClaimAt == nil {
		return Eligibility{Eligible: true, EffectiveStreak: 0}
	}

	today := startOfDay(now.In(loc))
	lastDay := startOfDay(lastClaimAt.In(loc))

	switch {
	case !lastDay.Before(today):
		return Eligibility{
			Eligible:        false,
			EffectiveStreak: currentStreak,
			NextEligibleAt:  today.AddDate(0, 0, 1),
		}
	case lastDay.Before(today.AddDate(0, 0, -1)):
		return Eligibility{Eligible: true, EffectiveStreak: 0}
	default:
		return Eligibility{Eligible: true, EffectiveStreak: currentStreak}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var (
	bonusLocOnce sync.Once
	bonusLoc     *time.Location
)

// BonusLocation is the reference timezone for day boundaries, from the
// BONUS_TIMEZONE env var. Defaults to UTC.
func BonusLocation() *time.Location {
	bonusLocOnce.Do(func() {
		name := config.ConfigDefault("BONUS_TIMEZONE", "UTC")
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("🔥 Invalid BONUS_TIMEZONE %q, falling back to UTC: %v", name, err)
			loc = time.UTC
		}
		bonusLoc = loc
	})
	return bonusLoc
}
