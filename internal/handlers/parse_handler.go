package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/cv-parser/internal/services"
)

type ParseHandler struct {
	parser      services.CVParserService
	maxFileSize int64
}

func NewParseHandler(parser services.CVParserService, maxFileSize int64) *ParseHandler {
	return &ParseHandler{
		parser:      parser,
		maxFileSize: maxFileSize,
	}
}

// HandleParse handles POST /api/v1/cv/parse. The request moves through
// validate → extract → structure; any stage failure terminates the request
// with its mapped status code.
func (h *ParseHandler) HandleParse(c *fiber.Ctx) error {
	requestID := uuid.New().String()
	c.Set("X-Request-ID", requestID)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing or malformed file upload; expected multipart field 'file'")
	}

	if fileHeader.Size > h.maxFileSize {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := services.ValidateUpload(fileHeader.Filename, contentType); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to read uploaded file")
	}

	log.Printf("📄 [%s] Parsing %q (%d bytes)\n", requestID, fileHeader.Filename, len(data))

	cv, err := h.parser.ParseCV(c.Context(), fileHeader.Filename, data)
	if err != nil {
		log.Printf("❌ [%s] Parse failed: %v\n", requestID, err)

		switch {
		case errors.Is(err, services.ErrExtraction):
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	log.Printf("✅ [%s] Parsed %q in %.2fs\n", requestID, fileHeader.Filename, cv.ProcessingTimes.Total)

	return c.JSON(cv)
}
