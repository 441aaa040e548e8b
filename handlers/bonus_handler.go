package handlers

import (
	"errors"
	"time"

	"github.com/And937/liberty-cent-app/middleware"
	"github.com/And937/liberty-cent-app/services"
	"github.com/gofiber/fiber/v2"
)

func GetDailyBonusStatus(c *fiber.Ctx) error {
	userID, _, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	status, err := services.GetDailyBonusStatus(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load bonus status"})
	}

	return c.JSON(status)
}

func ClaimDailyBonus(c *fiber.Ctx) error {
	userID, _, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	result, err := services.ClaimDailyBonus(userID, time.Now())
	if err != nil {
		var claimed *services.AlreadyClaimedError
		if errors.As(err, &claimed) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":           "Bonus for today has already been claimed",
				"next_claim_time": claimed.NextEligibleAt.UnixMilli(),
			})
		}
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found, please retry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to claim bonus"})
	}

	return c.JSON(result)
}
