package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"skinner/resume-feedback/internal/models"
)

const rootMessage = "🚀 Resume feedback API is running!"

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / and never touches the LLM.
func (h *RootHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(models.RootResponse{Message: rootMessage})
}

func (h *RootHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}
