package handler

import (
	"errors"

	"go-poultrigo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type KandangHandler struct {
	kandangService    service.KandangService
	predictionService service.PredictionService
}

func NewKandangHandler(kandangService service.KandangService, predictionService service.PredictionService) *KandangHandler {
	return &KandangHandler{kandangService: kandangService, predictionService: predictionService}
}

type KandangRequest struct {
	Name       string `json:"name" form:"name"`
	Population int    `json:"population" form:"population"`
	Age        int    `json:"age" form:"age"`
}

// GetKandangs lists all farm units
// GET /operator/kandang
func (h *KandangHandler) GetKandangs(c *fiber.Ctx) error {
	kandangs, err := h.kandangService.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(kandangs)
}

// CreateKandang adds a farm unit plus its "Created" history row
// POST /operator/kandang
func (h *KandangHandler) CreateKandang(c *fiber.Ctx) error {
	var req KandangRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	kandang, err := h.kandangService.Create(req.Name, req.Population, req.Age)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": "Kandang added successfully.", "data": kandang})
}

// UpdateKandang applies changes plus an "Updated" history row
// PUT /operator/kandang/:id
func (h *KandangHandler) UpdateKandang(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid kandang ID"})
	}

	var req KandangRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	kandang, err := h.kandangService.Update(id, req.Name, req.Population, req.Age)
	if err != nil {
		if errors.Is(err, service.ErrKandangNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": "Kandang updated successfully.", "data": kandang})
}

// DeleteKandang removes a unit and its history
// DELETE /operator/kandang/:id
func (h *KandangHandler) DeleteKandang(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid kandang ID"})
	}

	if err := h.kandangService.Delete(id); err != nil {
		if errors.Is(err, service.ErrKandangNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Error deleting kandang."})
	}

	return c.JSON(fiber.Map{"success": "Kandang deleted."})
}

// GetKandangHistory lists history rows for one unit, newest first
// GET /operator/kandang/:id/history
func (h *KandangHandler) GetKandangHistory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid kandang ID"})
	}

	history, err := h.kandangService.History(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(history)
}

// GetAllHistory lists history across all units
// GET /operator/history
func (h *KandangHandler) GetAllHistory(c *fiber.Ctx) error {
	history, err := h.kandangService.AllHistory()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(history)
}

// PredictFeed calls the external feed prediction service
// POST /operator/predict
func (h *KandangHandler) PredictFeed(c *fiber.Ctx) error {
	var req service.PredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	prediction, err := h.predictionService.Predict(&req)
	if err != nil {
		if errors.Is(err, service.ErrPredictionUnavailable) {
			return c.Status(502).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "prediction": prediction})
}
