package handlers

import (
	"errors"

	"github.com/And937/liberty-cent-app/middleware"
	"github.com/And937/liberty-cent-app/services"
	"github.com/gofiber/fiber/v2"
)

type PurchaseRequest struct {
	CentAmount     float64 `json:"cent_amount" validate:"required,gt=0"`
	USDCost        float64 `json:"usd_cost" validate:"required,gt=0"`
	PaymentMethod  string  `json:"payment_method" validate:"required"`
	PaymentAmount  string  `json:"payment_amount" validate:"required"`
	PaymentAddress string  `json:"payment_address" validate:"required"`
	PaymentMemo    *string `json:"payment_memo,omitempty"`
}

func LogPurchase(c *fiber.Ctx) error {
	userID, email, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	txn, err := services.LogPurchase(userID, email, services.PurchaseInput{
		CentAmount:     req.CentAmount,
		USDCost:        req.USDCost,
		PaymentMethod:  req.PaymentMethod,
		PaymentAmount:  req.PaymentAmount,
		PaymentAddress: req.PaymentAddress,
		PaymentMemo:    req.PaymentMemo,
	})
	if err != nil {
		if errors.Is(err, services.ErrVerificationRequired) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account must be verified to make a transaction"})
		}
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found, please retry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(txn)
}

func ListMyTransactions(c *fiber.Ctx) error {
	userID, _, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	txns, err := services.ListPurchases(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load transactions"})
	}

	return c.JSON(txns)
}
