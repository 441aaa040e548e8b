package routes

import (
	"github.com/And937/liberty-cent-app/handlers"
	"github.com/And937/liberty-cent-app/middleware"
	"github.com/gofiber/fiber/v2"
)

func RewardsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	rewards := api.Group("/rewards", middleware.Protected())
	rewards.Get("/daily-bonus", handlers.GetDailyBonusStatus)
	rewards.Post("/daily-bonus/claim", handlers.ClaimDailyBonus)
}
