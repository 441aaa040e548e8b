package handlers

import (
	"errors"

	"github.com/And937/liberty-cent-app/database"
	"github.com/And937/liberty-cent-app/middleware"
	"github.com/And937/liberty-cent-app/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VerificationRequestBody struct {
	DocumentURL string `json:"document_url" validate:"required,url"`
}

// SubmitVerificationRequest files the KYC document and moves the account to
// pending. The final verified/rejected decision is made by a reviewer outside
// this service.
func SubmitVerificationRequest(c *fiber.Ctx) error {
	userID, _, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req VerificationRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var request models.VerificationRequest
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, "id = ?", userID).Error; err != nil {
			return err
		}
		if account.VerificationStatus == models.VerificationVerified {
			return errAlreadyVerified
		}

		request = models.VerificationRequest{
			UserID:      userID,
			DocumentURL: req.DocumentURL,
			Status:      "pending",
		}
		if err := tx.Create(&request).Error; err != nil {
			return err
		}

		return tx.Model(&account).
			UpdateColumn("verification_status", models.VerificationPending).Error
	})
	if err != nil {
		if errors.Is(err, errAlreadyVerified) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Account is already verified"})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found, please retry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit verification request"})
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

var errAlreadyVerified = errors.New("account already verified")
