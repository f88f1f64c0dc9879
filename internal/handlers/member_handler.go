package handlers

import (
	"errors"
	"log"

	"blububb/internal/models"
	"blububb/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles HTTP requests for members.
type MemberHandler struct {
	service  *services.MemberService
	validate *validator.Validate
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(service *services.MemberService) *MemberHandler {
	return &MemberHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the member routes with the Fiber app.
func (h *MemberHandler) RegisterRoutes(router fiber.Router) {
	members := router.Group("/members")
	members.Get("/", h.HandleList)
	members.Post("/register", h.HandleRegister)
	members.Post("/login", h.HandleLogin)
	members.Get("/:id", h.HandleGet)
}

// HandleList retrieves all members. Password hashes are never included.
func (h *MemberHandler) HandleList(c *fiber.Ctx) error {
	members, err := h.service.ListMembers()
	if err != nil {
		log.Printf("Error listing members: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not retrieve members",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    members,
		"count":   len(members),
	})
}

// HandleGet retrieves a single member by id, without the password hash.
func (h *MemberHandler) HandleGet(c *fiber.Ctx) error {
	member, err := h.service.GetMember(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Member not found",
			})
		}
		log.Printf("Error getting member %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not retrieve member",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    member,
	})
}

// HandleRegister registers a new member. The payload is an open mapping;
// only email and password are validated before storing.
func (h *MemberHandler) HandleRegister(c *fiber.Ctx) error {
	var member models.Record
	if err := c.BodyParser(&member); err != nil {
		log.Printf("Error parsing register body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	creds := models.Credentials{
		Email:    member.String("email"),
		Password: member.String("password"),
	}
	if err := h.validate.Struct(creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "A valid email and a password are required",
		})
	}

	created, err := h.service.Register(member)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Email already registered",
			})
		}
		log.Printf("Error registering member: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not register member",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    created,
	})
}

// HandleLogin authenticates a member by email and password.
func (h *MemberHandler) HandleLogin(c *fiber.Ctx) error {
	var creds models.Credentials
	if err := c.BodyParser(&creds); err != nil {
		log.Printf("Error parsing login body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	member, err := h.service.Login(creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid credentials",
			})
		}
		log.Printf("Error during member login: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not log in",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    member,
	})
}
