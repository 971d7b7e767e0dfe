package handler

import (
	"errors"
	"fmt"

	"go-poultrigo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	shopService  service.ShopService
	orderService service.OrderService
}

func NewShopHandler(shopService service.ShopService, orderService service.OrderService) *ShopHandler {
	return &ShopHandler{shopService: shopService, orderService: orderService}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" form:"product_id"`
	Quantity  int    `json:"quantity" form:"quantity"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" form:"quantity"`
}

// GetProducts lists products available in the shop
// GET /guest/products
func (h *ShopHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.shopService.ListProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// AddToCart adds or merges a cart line
// POST /guest/cart
func (h *ShopHandler) AddToCart(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Please login first."})
	}

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	productID, err := parseUUID(req.ProductID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.shopService.AddToCart(userID, productID, req.Quantity); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": "Item added to cart!"})
}

// GetCart returns the cart joined with live product data
// GET /guest/cart
func (h *ShopHandler) GetCart(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Please login first."})
	}

	cart, err := h.shopService.GetCart(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(cart)
}

// UpdateCartItem changes a line's quantity
// PUT /guest/cart/:id
func (h *ShopHandler) UpdateCartItem(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Please login first."})
	}

	itemID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cart item ID"})
	}

	var req UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.shopService.UpdateCartItem(userID, itemID, req.Quantity); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": "Cart updated."})
}

// RemoveFromCart deletes one cart line
// DELETE /guest/cart/:id
func (h *ShopHandler) RemoveFromCart(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Please login first."})
	}

	itemID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid cart item ID"})
	}

	if err := h.shopService.RemoveFromCart(userID, itemID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error removing item."})
	}

	return c.JSON(fiber.Map{"success": "Item removed."})
}

// Checkout converts the cart into an order
// POST /guest/checkout
func (h *ShopHandler) Checkout(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Please login first."})
	}

	var req service.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := h.shopService.Checkout(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCheckoutFailed) {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":  fmt.Sprintf("Order placed! Order Number: %s", result.OrderNumber),
		"redirect": result.Redirect,
	})
}

// GetMyOrders lists the caller's orders, newest first
// GET /guest/orders
func (h *ShopHandler) GetMyOrders(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Please login first."})
	}

	orders, err := h.orderService.ListByUser(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}
