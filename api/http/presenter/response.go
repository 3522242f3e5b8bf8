package presenter

import "github.com/gofiber/fiber/v2"

// Every response body in this API is JSON; failures and simple
// acknowledgements share the one-field message shape.
type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Message is the success counterpart of Error for operations whose only
// payload is an acknowledgement.
func Message(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, fiber.Map{"message": message})
}
