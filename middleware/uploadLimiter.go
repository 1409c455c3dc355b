package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// BulkUploadLimiter throttles the spreadsheet ingestion endpoints per client
// IP. Uploads are heavier than ordinary CRUD calls and a stuck frontend retry
// loop should not be able to queue dozens of batch inserts.
func BulkUploadLimiter(r rate.Limit, burst int) fiber.Handler {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *fiber.Ctx) error {
		ip := c.IP()

		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(r, burst)
			limiters[ip] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many uploads, please wait before retrying",
			})
		}
		return c.Next()
	}
}
