package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/dto"
	"github.com/cadetnet/dutylog-api/internal/service"
	"github.com/cadetnet/dutylog-api/internal/utils"
)

// LogHandler exposes duty log endpoints.
type LogHandler struct {
	service service.LogService
	logger  zerolog.Logger
}

// NewLogHandler constructs a duty log handler.
func NewLogHandler(service service.LogService, logger zerolog.Logger) *LogHandler {
	return &LogHandler{
		service: service,
		logger:  logger.With().Str("component", "log_handler").Logger(),
	}
}

// Register wires duty log routes.
func (h *LogHandler) Register(router fiber.Router) {
	router.Post("/uploadLog", h.create)
	router.Post("/uploadPresencePatrol", h.createPresencePatrol)
	router.Get("/getLogs/:company", h.listByCompany)
	router.Get("/getLogsInRange/:company/:date1/:date2", h.listInRange)
	router.Get("/getAllLogs", h.listAll)
	router.Get("/getLastLogForEachCompany", h.lastPerCompany)
}

func (h *LogHandler) create(c *fiber.Ctx) error {
	var req dto.LogCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.Record(c.Context(), req); err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "missing required log fields")
		}
		h.logger.Error().Err(err).Msg("failed to create log")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create log")
	}

	return utils.SendSuccess(c, "log entry recorded", nil)
}

func (h *LogHandler) createPresencePatrol(c *fiber.Ctx) error {
	var req dto.PresencePatrolRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.service.RecordPresencePatrol(c.Context(), req); err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "missing required log fields")
		}
		h.logger.Error().Err(err).Msg("failed to create presence patrol log")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to create log")
	}

	return utils.SendSuccess(c, "presence patrol recorded", nil)
}

func (h *LogHandler) listByCompany(c *fiber.Ctx) error {
	logs := h.service.ListByCompany(c.Context(), c.Params("company"))
	return utils.SendSuccess(c, "logs retrieved", logs)
}

func (h *LogHandler) listInRange(c *fiber.Ctx) error {
	logs := h.service.ListInRange(c.Context(), c.Params("company"), c.Params("date1"), c.Params("date2"))
	return utils.SendSuccess(c, "logs retrieved", logs)
}

func (h *LogHandler) listAll(c *fiber.Ctx) error {
	logs := h.service.ListAll(c.Context())
	return utils.SendSuccess(c, "logs retrieved", logs)
}

func (h *LogHandler) lastPerCompany(c *fiber.Ctx) error {
	logs := h.service.LastPerCompany(c.Context())
	return utils.SendSuccess(c, "last log per company retrieved", logs)
}
