package handlers

import (
	"errors"
	"log"

	"blububb/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles image uploads.
type UploadHandler struct {
	service *services.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{
		service: service,
	}
}

// RegisterRoutes registers the upload route with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/upload", h.HandleUpload)
}

// HandleUpload stores a single image from the multipart "image" field and
// returns its stored filename plus a servable URL.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No image provided",
		})
	}
	if file.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No file selected",
		})
	}

	name, err := h.service.StoredName(file.Filename)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid file type",
			})
		}
		log.Printf("Error naming upload %s: %v", file.Filename, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not store file",
		})
	}

	if err := c.SaveFile(file, h.service.Path(name)); err != nil {
		log.Printf("Error saving upload %s: %v", name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not store file",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"filename": name,
		"url":      "/uploads/" + name,
	})
}
