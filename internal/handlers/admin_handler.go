package handlers

import (
	"errors"
	"log"

	"blububb/internal/middleware"
	"blububb/internal/models"
	"blububb/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin authentication.
type AdminHandler struct {
	auth     *services.AdminAuthService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(auth *services.AdminAuthService) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin routes with the Fiber app.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	admin := router.Group("/admin")
	admin.Post("/login", h.HandleLogin)
	admin.Get("/verify", middleware.AdminRequired(h.auth), h.HandleVerify)
}

// HandleLogin checks the admin credentials and issues a session token.
func (h *AdminHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing admin login body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Username and password are required",
		})
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid credentials",
			})
		}
		log.Printf("Error during admin login: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not log in",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"username": h.auth.Username(),
			"role":     "admin",
		},
	})
}

// HandleVerify confirms a session token is still valid and echoes its
// claims. The admin front-end calls this on page load.
func (h *AdminHandler) HandleVerify(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"username": c.Locals("username"),
			"role":     c.Locals("role"),
		},
	})
}
