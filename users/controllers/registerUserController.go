package controllers

import (
	"fleet-backend/config"
	"fleet-backend/db/models"
	"fleet-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterUserController creates a new account. The password is bcrypt-hashed
// before it touches the database.
func (uc *UserController) RegisterUserController(c *fiber.Ctx) error {
	type RegisterRequest struct {
		FullName string      `json:"full_name"`
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"error":   "Invalid request format.",
		})
	}

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
			"error":   "full_name, email and password are required",
		})
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		config.Logger.Error("Error hashing password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "Could not process the password.",
		})
	}

	role := req.Role
	if role == "" {
		role = models.OperatorRole
	}

	user, err := uc.UserRepo.CreateUser(&models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Failed to create user",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered",
		"data":    user,
	})
}
