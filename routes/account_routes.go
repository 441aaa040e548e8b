package routes

import (
	"github.com/And937/liberty-cent-app/handlers"
	"github.com/And937/liberty-cent-app/middleware"
	"github.com/gofiber/fiber/v2"
)

func AccountRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	account := api.Group("/account", middleware.Protected())
	account.Get("/me", handlers.GetMyAccount)
	account.Get("/referrals", handlers.GetMyReferrals)
}
