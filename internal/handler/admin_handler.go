package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/dto"
	"github.com/cadetnet/dutylog-api/internal/middleware"
	"github.com/cadetnet/dutylog-api/internal/service"
	"github.com/cadetnet/dutylog-api/internal/utils"
)

// AdminHandler answers admin allow-list checks for verified identities.
type AdminHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAdminHandler constructs an admin authorization handler.
func NewAdminHandler(service service.AuthService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register wires admin routes.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/validateAdmin", h.validate)
}

func (h *AdminHandler) validate(c *fiber.Ctx) error {
	email := middleware.VerifiedEmail(c)
	if email == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "unauthorized user")
	}

	isAdmin, err := h.service.IsAdmin(c.Context(), email)
	if err != nil {
		// A failed check must surface as an error, not as "not an admin".
		h.logger.Error().Err(err).Msg("failed to verify admin status")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to verify admin status")
	}

	return utils.SendSuccess(c, "admin status verified", dto.AdminCheckResponse{Email: email, IsAdmin: isAdmin})
}
