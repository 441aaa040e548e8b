package jobs

import (
	"log"
	"time"

	"github.com/And937/liberty-cent-app/services"
)

func ApplyStakingRewards() {
	log.Println("Running job: ApplyStakingRewards...")

	summary, err := services.ApplyWeeklyStaking(time.Now())
	if err != nil {
		log.Printf("🔥 Staking sweep failed: %v", err)
		return
	}

	log.Printf("Staking sweep for %s complete: %d updated, %d failed.", summary.Week, summary.Updated, summary.Failed)
}
