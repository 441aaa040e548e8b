package handlers

import (
	"errors"

	"github.com/And937/liberty-cent-app/middleware"
	"github.com/And937/liberty-cent-app/services"
	"github.com/gofiber/fiber/v2"
)

func GetMyAccount(c *fiber.Ctx) error {
	userID, email, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	view, err := services.GetAccountView(userID, email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found, please retry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load account"})
	}

	return c.JSON(view)
}

func GetMyReferrals(c *fiber.Ctx) error {
	userID, _, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	referred, err := services.ReferredUsers(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load referrals"})
	}

	return c.JSON(referred)
}
