package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/dto"
	"github.com/cadetnet/dutylog-api/internal/models"
	"github.com/cadetnet/dutylog-api/internal/repository"
)

// CommentService stores and retrieves inspection comments. Unlike log reads,
// List re-raises query failures: its callers need to tell "no comments" apart
// from "could not determine".
type CommentService interface {
	Record(ctx context.Context, req dto.CommentCreateRequest) error
	List(ctx context.Context, company, date string) ([]dto.CommentResponse, error)
}

type commentService struct {
	repo      repository.CommentRepository
	validator *validator.Validate
	logger    zerolog.Logger
	location  *time.Location
	now       func() time.Time
}

// NewCommentService constructs the inspection comment service.
func NewCommentService(repo repository.CommentRepository, validate *validator.Validate, location *time.Location, logger zerolog.Logger) CommentService {
	return &commentService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "comment_service").Logger(),
		location:  location,
		now:       time.Now,
	}
}

func (s *commentService) Record(ctx context.Context, req dto.CommentCreateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return err
	}

	now := s.now().In(s.location)
	comment := models.InspectionComment{
		Date:      formatDate(now),
		Time:      formatClock(now),
		CadetName: req.CadetName,
		Comment:   req.Comment,
		Company:   req.Company,
	}

	if err := s.repo.Create(ctx, &comment); err != nil {
		s.logger.Error().Err(err).Str("company", req.Company).Msg("failed to insert inspection comment")
		return nil
	}

	return nil
}

func (s *commentService) List(ctx context.Context, company, date string) ([]dto.CommentResponse, error) {
	comments, err := s.repo.ListByCompanyDate(ctx, company, date)
	if err != nil {
		s.logger.Error().Err(err).Str("company", company).Str("date", date).Msg("failed to fetch inspection comments")
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.CommentResponse{
			ID:        comment.ID,
			Date:      comment.Date,
			Time:      comment.Time,
			CadetName: comment.CadetName,
			Comment:   comment.Comment,
			Company:   comment.Company,
		})
	}

	return responses, nil
}
