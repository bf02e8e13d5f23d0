package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"skinner/resume-feedback/internal/models"
	"skinner/resume-feedback/internal/services"
)

type AnalyzeHandler struct {
	uploadReader services.UploadReader
	analyzer     services.AnalyzerService
}

func NewAnalyzeHandler(
	uploadReader services.UploadReader,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploadReader: uploadReader,
		analyzer:     analyzer,
	}
}

// HandleAnalyze handles POST /analyzeResume
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return toFiberError(services.NewClientInputError("a file must be uploaded", services.ErrMissingFile))
	}

	jobType := c.FormValue("job_type")

	doc, err := h.uploadReader.Read(file)
	if err != nil {
		return toFiberError(err)
	}

	result, err := h.analyzer.Analyze(c.UserContext(), doc, jobType)
	if err != nil {
		return toFiberError(err)
	}

	return c.JSON(models.AnalyzeResponse{
		Feedback: result.Feedback,
	})
}

// toFiberError maps the service error taxonomy onto HTTP status codes.
func toFiberError(err error) error {
	var appErr *services.AppError
	if !errors.As(err, &appErr) {
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}

	switch appErr.Kind {
	case services.ErrorKindClientInput:
		return fiber.NewError(fiber.StatusBadRequest, appErr.Message)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, appErr.Message)
	}
}
