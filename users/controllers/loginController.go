package controllers

import (
	"time"

	"fleet-backend/config"
	"fleet-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// LoginUserController authenticates by email and password, issuing an access
// cookie and a Redis-registered refresh cookie.
func (uc *UserController) LoginUserController(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing login request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   "Invalid request format.",
		})
	}

	user, err := uc.UserRepo.GetUserByEmail(req.Email)
	if err != nil || !services.CheckPasswordHash(req.Password, user.Password) {
		config.Logger.Warn("Failed login attempt", zap.String("email", req.Email))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   "Invalid email or password.",
		})
	}
	if user.IsActive != nil && !*user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Account disabled",
			"error":   "This account has been deactivated.",
		})
	}

	accessToken, err := uc.PasetoMaker.CreateToken(user.Email, accessTokenTTL)
	if err != nil {
		config.Logger.Error("Error generating access token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred during token generation.",
		})
	}

	refreshToken, err := uc.PasetoMaker.CreateToken(user.Email, refreshTokenTTL)
	if err != nil {
		config.Logger.Error("Error generating refresh token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred during token generation.",
		})
	}

	if err := uc.RedisClient.Set(uc.Ctx, "refresh_token:"+refreshToken, user.ID.String(), refreshTokenTTL).Err(); err != nil {
		config.Logger.Error("Error storing refresh token in Redis",
			zap.String("user_id", user.ID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred during session management.",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   false,
		SameSite: "None",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   false,
		SameSite: "None",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"data":    fiber.Map{"user": user},
	})
}
