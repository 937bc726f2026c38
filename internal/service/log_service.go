package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/dto"
	"github.com/cadetnet/dutylog-api/internal/models"
	"github.com/cadetnet/dutylog-api/internal/observability"
	"github.com/cadetnet/dutylog-api/internal/repository"
)

// LogService records and retrieves duty log entries. Reads follow the
// recover-with-empty policy: a query failure is logged and an empty slice
// returned, because callers treat absence as "nothing found". Writes swallow
// store failures the same way; only payload validation is surfaced.
type LogService interface {
	Record(ctx context.Context, req dto.LogCreateRequest) error
	RecordPresencePatrol(ctx context.Context, req dto.PresencePatrolRequest) error
	ListByCompany(ctx context.Context, company string) []dto.LogResponse
	ListInRange(ctx context.Context, company, date1, date2 string) []dto.LogResponse
	ListAll(ctx context.Context) []dto.LogResponse
	LastPerCompany(ctx context.Context) []dto.LogResponse
}

type logService struct {
	repo      repository.LogRepository
	validator *validator.Validate
	logger    zerolog.Logger
	location  *time.Location
	now       func() time.Time
}

// NewLogService constructs the duty log service. Timestamps are assigned
// server-side in the given location.
func NewLogService(repo repository.LogRepository, validate *validator.Validate, location *time.Location, logger zerolog.Logger) LogService {
	return &logService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "log_service").Logger(),
		location:  location,
		now:       time.Now,
	}
}

func (s *logService) Record(ctx context.Context, req dto.LogCreateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	now := s.now().In(s.location)
	entry := models.LogEntry{
		Date:    formatDate(now),
		Time:    formatClock(now),
		TimeOut: models.NoTimeOut,
		Name:    req.Name,
		Message: req.Message,
		Action:  req.Action,
		Company: req.Company,
	}

	s.persist(ctx, &entry)

	return nil
}

func (s *logService) RecordPresencePatrol(ctx context.Context, req dto.PresencePatrolRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	now := s.now().In(s.location)
	start := now.Add(-time.Duration(req.PatrolTime) * time.Second)
	entry := models.LogEntry{
		Date:    formatDate(now),
		Time:    formatClock(start),
		TimeOut: formatClock(now),
		Name:    req.Name,
		Message: req.Message,
		Action:  req.Action,
		Company: req.Company,
	}

	s.persist(ctx, &entry)

	return nil
}

func (s *logService) persist(ctx context.Context, entry *models.LogEntry) {
	if err := s.repo.Create(ctx, entry); err != nil {
		observability.LogWrites().WithLabelValues(entry.Action, "error").Inc()
		s.logger.Error().Err(err).Str("company", entry.Company).Msg("failed to insert log entry")
		return
	}

	observability.LogWrites().WithLabelValues(entry.Action, "success").Inc()
	s.logger.Info().Str("company", entry.Company).Str("action", entry.Action).Msg("log entry inserted")
}

func (s *logService) ListByCompany(ctx context.Context, company string) []dto.LogResponse {
	entries, err := s.repo.ListByCompany(ctx, company)
	if err != nil {
		observability.LogQueryFailures().WithLabelValues("list_by_company").Inc()
		s.logger.Error().Err(err).Str("company", company).Msg("failed to fetch logs")
		return []dto.LogResponse{}
	}

	return toLogResponses(entries)
}

func (s *logService) ListInRange(ctx context.Context, company, date1, date2 string) []dto.LogResponse {
	entries, err := s.repo.ListInRange(ctx, company, date1, date2)
	if err != nil {
		observability.LogQueryFailures().WithLabelValues("list_in_range").Inc()
		s.logger.Error().Err(err).Str("company", company).Msg("failed to fetch logs in range")
		return []dto.LogResponse{}
	}

	return toLogResponses(entries)
}

func (s *logService) ListAll(ctx context.Context) []dto.LogResponse {
	entries, err := s.repo.ListAll(ctx)
	if err != nil {
		observability.LogQueryFailures().WithLabelValues("list_all").Inc()
		s.logger.Error().Err(err).Msg("failed to fetch logs")
		return []dto.LogResponse{}
	}

	return toLogResponses(entries)
}

func (s *logService) LastPerCompany(ctx context.Context) []dto.LogResponse {
	entries, err := s.repo.LastPerCompany(ctx)
	if err != nil {
		observability.LogQueryFailures().WithLabelValues("last_per_company").Inc()
		s.logger.Error().Err(err).Msg("failed to fetch last log per company")
		return []dto.LogResponse{}
	}

	return toLogResponses(entries)
}

func toLogResponses(entries []models.LogEntry) []dto.LogResponse {
	responses := make([]dto.LogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.LogResponse{
			ID:      entry.ID,
			Date:    entry.Date,
			Time:    entry.Time,
			TimeOut: entry.TimeOut,
			Name:    entry.Name,
			Message: entry.Message,
			Action:  entry.Action,
			Company: entry.Company,
		})
	}
	return responses
}

func formatDate(t time.Time) string {
	return t.Format("20060102")
}

func formatClock(t time.Time) string {
	return t.Format("1504")
}
