package middleware

import (
	"context"

	"fleet-backend/token"

	"github.com/redis/go-redis/v9"
)

// AppContext bundles the dependencies route guards need.
type AppContext struct {
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
}
