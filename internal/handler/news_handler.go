package handler

import (
	"errors"
	"strings"

	"go-poultrigo/internal/model"
	"go-poultrigo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type NewsHandler struct {
	newsService service.NewsService
}

func NewNewsHandler(newsService service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

type NewsRequest struct {
	Title         string `json:"title" form:"title"`
	Excerpt       string `json:"excerpt" form:"excerpt"`
	Content       string `json:"content" form:"content"`
	Category      string `json:"category" form:"category"`
	Tags          string `json:"tags" form:"tags"` // comma separated
	Published     bool   `json:"published" form:"published"`
	FeaturedImage string `json:"featured_image" form:"featured_image"`
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// GetPublishedNews lists published articles, newest first
// GET /api/public/news
func (h *NewsHandler) GetPublishedNews(c *fiber.Ctx) error {
	news, err := h.newsService.ListPublished()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(news)
}

// GetNewsByID returns one article and bumps its view counter
// GET /api/public/news/:id
func (h *NewsHandler) GetNewsByID(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid news ID"})
	}

	news, err := h.newsService.GetByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "News article not found"})
	}

	// View counting is best effort
	_ = h.newsService.IncrementViews(id)

	return c.JSON(news)
}

// GetAllNews lists every article including drafts
// GET /admin/news
func (h *NewsHandler) GetAllNews(c *fiber.Ctx) error {
	news, err := h.newsService.ListAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(news)
}

// CreateNews publishes or drafts a new article
// POST /admin/news
func (h *NewsHandler) CreateNews(c *fiber.Ctx) error {
	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	userID, _ := getUserID(c)
	news := &model.News{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		Tags:          splitTags(req.Tags),
		Published:     req.Published,
		FeaturedImage: req.FeaturedImage,
		Author:        getUserName(c),
		AuthorID:      userID.String(),
	}

	if err := h.newsService.Create(news); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": news})
}

// UpdateNews edits an article; blank featured image keeps the existing one
// PUT /admin/news/:id
func (h *NewsHandler) UpdateNews(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid news ID"})
	}

	var req NewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	news, err := h.newsService.Update(id, &model.News{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Category:      req.Category,
		Tags:          splitTags(req.Tags),
		Published:     req.Published,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": news})
}

// DeleteNews removes an article
// DELETE /admin/news/:id
func (h *NewsHandler) DeleteNews(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid news ID"})
	}

	if err := h.newsService.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Error deleting news."})
	}

	return c.JSON(fiber.Map{"success": true})
}
