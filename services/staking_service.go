package services

import (
	"fmt"
	"log"
	"time"

	"github.com/And937/liberty-cent-app/database"
	"github.com/And937/liberty-cent-app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	WeeklyStakingRate = 0.10
	stakingBatchSize  = 500
)

// StakingWeek is the idempotency stamp for a sweep, the ISO week of `now` in
// the reference timezone.
func StakingWeek(now time.Time) string {
	year, week := now.In(BonusLocation()).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

type StakingSummary struct {
	Week    string `json:"week"`
	Updated int    `json:"updated"`
	Failed  int    `json:"failed"`
}

// ApplyWeeklyStaking pays every positive balance its weekly interest. Each row
// is bumped with a SQL increment so concurrent bonus claims and referral
// credits are never lost, and each row is stamped with the current week so an
// at-least-once scheduler cannot pay the same week twice. The sweep is
// best-effort: a failed batch is logged and skipped, applied batches stand.
func ApplyWeeklyStaking(now time.Time) (*StakingSummary, error) {
	week := StakingWeek(now)
	summary := &StakingSummary{Week: week}

	var ids []uuid.UUID
	err := database.DB.Model(&models.Account{}).
		Where("balance > 0 AND (last_staking_week IS NULL OR last_staking_week <> ?)", week).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		log.Printf("No accounts with a positive balance to update for %s.", week)
		return summary, nil
	}

	for start := 0; start < len(ids); start += stakingBatchSize {
		batch := ids[start:min(start+stakingBatchSize, len(ids))]

		res := database.DB.Model(&models.Account{}).
			Where("id IN ? AND balance > 0 AND (last_staking_week IS NULL OR last_staking_week <> ?)", batch, week).
			UpdateColumns(map[string]interface{}{
				"balance":           gorm.Expr("balance + balance * ?", WeeklyStakingRate),
				"last_staking_week": week,
			})
		if res.Error != nil {
			summary.Failed += len(batch)
			log.Printf("🔥 Staking batch of %d account(s) failed: %v", len(batch), res.Error)
			continue
		}
		summary.Updated += int(res.RowsAffected)
	}

	log.Printf("✅ Applied staking rewards to %d account(s) for %s.", summary.Updated, week)
	return summary, nil
}
