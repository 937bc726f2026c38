package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/cadetnet/dutylog-api/internal/dto"
	"github.com/cadetnet/dutylog-api/internal/models"
	"github.com/cadetnet/dutylog-api/internal/observability"
	"github.com/cadetnet/dutylog-api/internal/repository"
)

var (
	// ErrImageNotFound indicates no image exists for the requested id.
	ErrImageNotFound = errors.New("image not found")
	// ErrNotAnImage indicates the staged payload is not an image.
	ErrNotAnImage = errors.New("file is not an image")
)

// ImageService stores and retrieves inspection images. Storage reads the
// staged upload from disk; cleanup of the staged file stays with the caller.
type ImageService interface {
	Store(ctx context.Context, name, stagedPath, company string) error
	List(ctx context.Context, company, date string) []dto.ImageResponse
	GetByID(ctx context.Context, id uint) (models.Image, error)
}

type imageService struct {
	repo     repository.ImageRepository
	logger   zerolog.Logger
	location *time.Location
	now      func() time.Time
	tracer   trace.Tracer
}

// NewImageService constructs the inspection image service.
func NewImageService(repo repository.ImageRepository, location *time.Location, logger zerolog.Logger) ImageService {
	return &imageService{
		repo:     repo,
		logger:   logger.With().Str("component", "image_service").Logger(),
		location: location,
		now:      time.Now,
		tracer:   otel.Tracer("github.com/cadetnet/dutylog-api/internal/service"),
	}
}

func (s *imageService) Store(ctx context.Context, name, stagedPath, company string) error {
	ctx, span := s.tracer.Start(ctx, "image.store")
	defer span.End()

	start := time.Now()
	defer func() {
		observability.ImageUploadLatency().Observe(time.Since(start).Seconds())
	}()

	span.SetAttributes(
		attribute.String("image.original_name", name),
		attribute.String("image.company", company),
	)

	payload, err := os.ReadFile(stagedPath)
	if err != nil {
		observability.ImageUploads().WithLabelValues("staging").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "staged file read failed")
		return fmt.Errorf("failed to read staged upload: %w", err)
	}

	mime := mimetype.Detect(payload)
	span.SetAttributes(
		attribute.Int("image.size_bytes", len(payload)),
		attribute.String("image.detected_mime", mime.String()),
	)
	if !strings.HasPrefix(mime.String(), "image/") {
		observability.ImageUploads().WithLabelValues("type").Inc()
		span.RecordError(ErrNotAnImage)
		span.SetStatus(codes.Error, "type not allowed")
		return ErrNotAnImage
	}

	now := s.now().In(s.location)
	image := models.Image{
		Name:      name,
		Company:   company,
		ImageData: payload,
		Date:      formatDate(now),
		Time:      formatClock(now),
	}

	if err := s.repo.Create(ctx, &image); err != nil {
		// Insert failures are swallowed like log writes.
		observability.ImageUploads().WithLabelValues("store_error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "persistence failed")
		s.logger.Error().Err(err).Str("company", company).Str("name", name).Msg("failed to insert image")
		return nil
	}

	observability.ImageUploads().WithLabelValues("success").Inc()
	span.SetStatus(codes.Ok, "stored")
	s.logger.Info().Str("company", company).Str("name", name).Int("size_bytes", len(payload)).Msg("image stored")

	return nil
}

func (s *imageService) List(ctx context.Context, company, date string) []dto.ImageResponse {
	images, err := s.repo.ListByCompanyDate(ctx, company, date)
	if err != nil {
		observability.LogQueryFailures().WithLabelValues("list_images").Inc()
		s.logger.Error().Err(err).Str("company", company).Str("date", date).Msg("failed to fetch images")
		return []dto.ImageResponse{}
	}

	responses := make([]dto.ImageResponse, 0, len(images))
	for _, image := range images {
		responses = append(responses, dto.ImageResponse{
			ID:   image.ID,
			Name: image.Name,
			Data: base64.StdEncoding.EncodeToString(image.ImageData),
		})
	}

	return responses
}

func (s *imageService) GetByID(ctx context.Context, id uint) (models.Image, error) {
	image, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Info().Uint("id", id).Msg("image not found")
		return models.Image{}, ErrImageNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Uint("id", id).Msg("failed to fetch image")
		return models.Image{}, err
	}

	return image, nil
}
