package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/dto"
	"github.com/cadetnet/dutylog-api/internal/service"
	"github.com/cadetnet/dutylog-api/internal/utils"
)

// CommentHandler exposes inspection comment endpoints.
type CommentHandler struct {
	service service.CommentService
	logger  zerolog.Logger
}

// NewCommentHandler constructs an inspection comment handler.
func NewCommentHandler(service service.CommentService, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		logger:  logger.With().Str("component", "comment_handler").Logger(),
	}
}

// Register wires inspection comment routes.
func (h *CommentHandler) Register(router fiber.Router) {
	router.Post("/uploadImageInspectionComments", h.create)
	router.Get("/getImageInspectionComments/:company/:date", h.list)
}

func (h *CommentHandler) create(c *fiber.Ctx) error {
	var req dto.CommentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Record(c.Context(), req); err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "missing required comment fields")
		}
		h.logger.Error().Err(err).Msg("failed to create inspection comment")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create comment")
	}

	return utils.SendSuccess(c, "inspection comment recorded", nil)
}

func (h *CommentHandler) list(c *fiber.Ctx) error {
	comments, err := h.service.List(c.Context(), c.Params("company"), c.Params("date"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch inspection comments")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to fetch comments")
	}

	return utils.SendSuccess(c, "inspection comments retrieved", comments)
}
