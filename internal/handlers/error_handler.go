package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skinner/resume-feedback/internal/models"
)

// ErrorHandler renders every error as {"detail": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(models.ErrorResponse{Detail: message})
}
