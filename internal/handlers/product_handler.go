package handlers

import (
	"errors"
	"log"
	"strings"

	"blububb/internal/models"
	"blububb/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Get("/:id", h.HandleGet)
	products.Post("/", h.HandleCreate)
	products.Put("/:id", h.HandleUpdate)
	products.Delete("/:id", h.HandleDelete)
}

// HandleList retrieves products, with optional category and featured
// filters.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	category := c.Query("category")
	featuredOnly := strings.EqualFold(c.Query("featured"), "true")

	products, err := h.service.ListProducts(category, featuredOnly)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not retrieve products",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"count":   len(products),
	})
}

// HandleGet retrieves a single product by its id.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		log.Printf("Error getting product %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not retrieve product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}

// HandleCreate creates a new product from an arbitrary JSON object.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var product models.Record
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	created, err := h.service.CreateProduct(product)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    created,
	})
}

// HandleUpdate shallow-merges the supplied fields over an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var updates models.Record
	if err := c.BodyParser(&updates); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	updated, err := h.service.UpdateProduct(c.Params("id"), updates)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not update product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    updated,
	})
}

// HandleDelete removes a product by its id.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Product not found",
			})
		}
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not delete product",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted",
	})
}
