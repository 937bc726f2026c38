package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/service"
	"github.com/cadetnet/dutylog-api/internal/utils"
)

// ImageHandler exposes inspection image endpoints. Uploads are staged to the
// configured directory first; the handler owns cleanup of staged files.
type ImageHandler struct {
	service   service.ImageService
	uploadDir string
	logger    zerolog.Logger
}

// NewImageHandler constructs an inspection image handler.
func NewImageHandler(service service.ImageService, uploadDir string, logger zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		service:   service,
		uploadDir: uploadDir,
		logger:    logger.With().Str("component", "image_handler").Logger(),
	}
}

// Register wires inspection image routes.
func (h *ImageHandler) Register(router fiber.Router) {
	router.Post("/uploadimages", h.upload)
	router.Get("/getImages/:company/:date", h.list)
	router.Get("/getImage/:id", h.getByID)
}

func (h *ImageHandler) upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid multipart form")
	}

	company := ""
	if values := form.Value["company"]; len(values) > 0 {
		company = strings.TrimSpace(values[0])
	}
	if company == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "company is required")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "no images provided")
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		h.logger.Error().Err(err).Msg("failed to prepare upload staging directory")
		return utils.SendError(c, fiber.StatusInternalServerError, "error uploading images")
	}

	for _, file := range files {
		staged := filepath.Join(h.uploadDir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
		if err := c.SaveFile(file, staged); err != nil {
			h.logger.Error().Err(err).Str("name", file.Filename).Msg("failed to stage upload")
			return utils.SendError(c, fiber.StatusInternalServerError, "error uploading images")
		}

		err := h.service.Store(c.Context(), file.Filename, staged, company)
		if removeErr := os.Remove(staged); removeErr != nil {
			h.logger.Warn().Err(removeErr).Str("path", staged).Msg("failed to remove staged upload")
		}
		if err != nil {
			if errors.Is(err, service.ErrNotAnImage) {
				return utils.SendError(c, fiber.StatusBadRequest, "only image uploads are allowed")
			}
			h.logger.Error().Err(err).Str("name", file.Filename).Msg("failed to store image")
			return utils.SendError(c, fiber.StatusInternalServerError, "error uploading images")
		}
	}

	return utils.SendSuccess(c, "images uploaded successfully", nil)
}

func (h *ImageHandler) list(c *fiber.Ctx) error {
	company := strings.TrimSpace(c.Params("company"))
	date := strings.TrimSpace(c.Params("date"))
	if company == "" || date == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "company and date are required")
	}

	images := h.service.List(c.Context(), company, date)
	return utils.SendSuccess(c, "images retrieved", images)
}

func (h *ImageHandler) getByID(c *fiber.Ctx) error {
	id, err := parseParamUint(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid image id")
	}

	image, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "image not found")
		}
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch image")
	}

	c.Set(fiber.HeaderContentType, mimetype.Detect(image.ImageData).String())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", image.Name))

	return c.Send(image.ImageData)
}
