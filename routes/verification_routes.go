package routes

import (
	"github.com/And937/liberty-cent-app/handlers"
	"github.com/And937/liberty-cent-app/middleware"
	"github.com/gofiber/fiber/v2"
)

func VerificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	verification := api.Group("/verification", middleware.Protected())
	verification.Post("/request", handlers.SubmitVerificationRequest)
	verification.Get("/upload-signature", handlers.GenerateUploadSignature)
}
