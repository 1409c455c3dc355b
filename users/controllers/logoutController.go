package controllers

import (
	"time"

	"fleet-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LogoutUserController revokes the session's refresh token and clears both
// cookies.
func (uc *UserController) LogoutUserController(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken != "" {
		if err := uc.RedisClient.Del(uc.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Error("Failed to delete refresh token from Redis during logout", zap.Error(err))
		}
	} else {
		config.Logger.Debug("No refresh token found in cookies during logout attempt")
	}

	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  expired,
		HTTPOnly: true,
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  expired,
		HTTPOnly: true,
		Path:     "/",
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}
