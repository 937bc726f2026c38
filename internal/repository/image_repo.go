package repository

import (
	"context"

	"github.com/cadetnet/dutylog-api/internal/database"
	"github.com/cadetnet/dutylog-api/internal/models"
)

// ImageRepository persists inspection images with their raw payloads.
type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	ListByCompanyDate(ctx context.Context, company, date string) ([]models.Image, error)
	GetByID(ctx context.Context, id uint) (models.Image, error)
}

type imageRepository struct {
	manager *database.Manager
}

// NewImageRepository constructs the image repository.
func NewImageRepository(manager *database.Manager) ImageRepository {
	return &imageRepository{manager: manager}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) ListByCompanyDate(ctx context.Context, company, date string) ([]models.Image, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var images []models.Image
	err = db.WithContext(ctx).
		Where("company = ? AND date = ?", company, date).
		Find(&images).Error
	if err != nil {
		return nil, err
	}

	return images, nil
}

// GetByID returns gorm.ErrRecordNotFound for missing rows so callers can tell
// "no such image" apart from a query failure.
func (r *imageRepository) GetByID(ctx context.Context, id uint) (models.Image, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return models.Image{}, err
	}

	var image models.Image
	err = db.WithContext(ctx).First(&image, id).Error
	return image, err
}
