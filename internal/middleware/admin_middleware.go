package middleware

import (
	"log"
	"strings"

	"blububb/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired is a Fiber middleware that checks for a valid admin session
// token.
func AdminRequired(auth *services.AdminAuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			log.Printf("Admin token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid or expired token",
			})
		}

		c.Locals("username", claims["username"])
		c.Locals("role", claims["role"])
		return c.Next()
	}
}
