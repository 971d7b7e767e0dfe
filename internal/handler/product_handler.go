package handler

import (
	"errors"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type ProductRequest struct {
	Name        string `json:"name" form:"name"`
	Price       int64  `json:"price" form:"price"`
	Stock       int    `json:"stock" form:"stock"`
	ImageURL    string `json:"image_url" form:"image_url"`
	Description string `json:"description" form:"description"`
	Status      string `json:"status" form:"status"`
}

func (r *ProductRequest) toModel() *model.Product {
	return &model.Product{
		Name:        r.Name,
		Price:       r.Price,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Status:      r.Status,
	}
}

// GetProducts lists the full catalog including hidden products
// GET /admin/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// CreateProduct adds a catalog entry
// POST /admin/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	product := req.toModel()
	if err := h.productService.Create(product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct edits a catalog entry
// PUT /admin/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	updated, err := h.productService.Update(id, req.toModel())
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": updated})
}

// DeleteProduct removes a catalog entry
// DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.productService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete product"})
	}

	return c.JSON(fiber.Map{"success": true})
}
