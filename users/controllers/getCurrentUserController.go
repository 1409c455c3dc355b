package controllers

import (
	"fleet-backend/token"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUserController returns the authenticated user's profile.
func (uc *UserController) GetCurrentUserController(c *fiber.Ctx) error {
	payload, ok := c.Locals("user").(*token.Payload)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"error":   "Authentication required",
		})
	}

	user, err := uc.UserRepo.GetUserByEmail(payload.Email)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(user)
}
