package middleware

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-parser/internal/models"
	"alfredoptarigan/cv-parser/internal/ratelimiter"
)

// RateLimit guards every request with a per-IP fixed-window counter.
// The limiter runs before upload validation, so rejected uploads consume
// quota. X-RateLimit-* headers are set on every response.
func RateLimit(limiter *ratelimiter.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := limiter.Check(c.IP())

		c.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(res.Reset.Unix(), 10))

		if !res.Allowed {
			retryAfter := math.Ceil(res.RetryAfter.Seconds())
			c.Set("Retry-After", strconv.Itoa(int(retryAfter)))

			return c.Status(fiber.StatusTooManyRequests).JSON(models.RateLimitErrorResponse{
				Error:      "Too many requests. Please try again later.",
				RetryAfter: retryAfter,
			})
		}

		return c.Next()
	}
}
