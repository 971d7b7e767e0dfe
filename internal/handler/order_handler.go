package handler

import (
	"errors"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// GetOrders lists every order with buyer identity
// GET /admin/orders
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

// UpdateOrderStatus sets the order status to any member of the status set
// PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.orderService.UpdateStatus(id, model.OrderStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error updating order status."})
	}

	return c.JSON(fiber.Map{"success": "Order status updated to " + req.Status + "."})
}
