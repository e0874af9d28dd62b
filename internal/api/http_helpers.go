package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rizosfelices/rizotipo/internal/models"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentProfessional(c *fiber.Ctx) (*models.Professional, bool) {
	professional, ok := c.Locals(contextProfessionalKey).(*models.Professional)
	return professional, ok
}
