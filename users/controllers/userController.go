package controllers

import (
	"context"

	"fleet-backend/token"
	"fleet-backend/users/repositories"

	"github.com/redis/go-redis/v9"
)

type UserController struct {
	UserRepo    repositories.UserRepository
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
}
