package middleware

import (
	config "github.com/And937/liberty-cent-app/configs"
	"github.com/And937/liberty-cent-app/services"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// CurrentUser resolves the verified caller from the JWT the Protected
// middleware already validated.
func CurrentUser(c *fiber.Ctx) (uuid.UUID, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, services.ErrInvalidToken.Error())
	}
	claims := token.Claims.(jwt.MapClaims)

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", fiber.NewError(fiber.StatusUnauthorized, services.ErrInvalidToken.Error())
	}
	email, _ := claims["email"].(string)
	return userID, email, nil
}

// CronSecretRequired guards the staking trigger with the scheduler's shared
// secret instead of a per-user token.
func CronSecretRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := config.Config("CRON_SECRET")
		if secret == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Staking trigger is not configured",
			})
		}
		if c.Get("Authorization") != "Bearer "+secret {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
