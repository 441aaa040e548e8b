package routes

import (
	"github.com/And937/liberty-cent-app/handlers"
	"github.com/And937/liberty-cent-app/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.CronSecretRequired())
	admin.Post("/staking/run", handlers.RunStakingSweep)
}
