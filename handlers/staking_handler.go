package handlers

import (
	"fmt"
	"time"

	"github.com/And937/liberty-cent-app/services"
	"github.com/gofiber/fiber/v2"
)

// RunStakingSweep is the scheduler-facing trigger, guarded by the cron shared
// secret. Delivery is at-least-once; the per-account week stamp inside the
// sweep makes a repeat call for the same week a no-op.
func RunStakingSweep(c *fiber.Ctx) error {
	summary, err := services.ApplyWeeklyStaking(time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to apply staking rewards"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Successfully applied staking rewards to %d users.", summary.Updated),
		"summary": summary,
	})
}
