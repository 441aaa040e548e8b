package routes

import (
	"github.com/And937/liberty-cent-app/handlers"
	"github.com/And937/liberty-cent-app/middleware"
	"github.com/gofiber/fiber/v2"
)

func TransactionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	transactions := api.Group("/transactions", middleware.Protected())
	transactions.Post("", handlers.LogPurchase)
	transactions.Get("/me", handlers.ListMyTransactions)
}
