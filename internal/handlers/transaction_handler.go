package handlers

import (
	"errors"
	"log"

	"blububb/internal/models"
	"blububb/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles HTTP requests for orders.
type TransactionHandler struct {
	service *services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// RegisterRoutes registers the transaction routes with the Fiber app.
func (h *TransactionHandler) RegisterRoutes(router fiber.Router) {
	transactions := router.Group("/transactions")
	transactions.Get("/", h.HandleList)
	transactions.Post("/", h.HandleCreate)
	transactions.Put("/:id/status", h.HandleUpdateStatus)
}

// HandleList retrieves transactions sorted by date descending, with an
// optional status filter.
func (h *TransactionHandler) HandleList(c *fiber.Ctx) error {
	transactions, err := h.service.ListTransactions(c.Query("status"))
	if err != nil {
		log.Printf("Error listing transactions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not retrieve transactions",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    transactions,
		"count":   len(transactions),
	})
}

// HandleCreate creates a new order from an arbitrary JSON object.
func (h *TransactionHandler) HandleCreate(c *fiber.Ctx) error {
	var tx models.Record
	if err := c.BodyParser(&tx); err != nil {
		log.Printf("Error parsing transaction body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	created, err := h.service.CreateTransaction(tx)
	if err != nil {
		log.Printf("Error creating transaction: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    created,
	})
}

// HandleUpdateStatus replaces the status of an existing transaction.
func (h *TransactionHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req models.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Status is required",
		})
	}

	updated, err := h.service.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Transaction not found",
			})
		}
		log.Printf("Error updating transaction %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Could not update transaction",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    updated,
	})
}
