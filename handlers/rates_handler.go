package handlers

import (
	"github.com/And937/liberty-cent-app/services"
	ws "github.com/And937/liberty-cent-app/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func GetCryptoRates(c *fiber.Ctx) error {
	rates, err := services.FetchRates()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to fetch rates"})
	}
	return c.JSON(rates)
}

// ServeRatesTicker keeps the connection in the hub until the client hangs up.
func ServeRatesTicker(conn *websocket.Conn) {
	ws.Register <- conn
	defer func() {
		ws.Unregister <- conn
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
