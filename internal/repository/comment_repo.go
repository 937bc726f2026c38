package repository

import (
	"context"

	"github.com/cadetnet/dutylog-api/internal/database"
	"github.com/cadetnet/dutylog-api/internal/models"
)

// CommentRepository persists inspection comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.InspectionComment) error
	ListByCompanyDate(ctx context.Context, company, date string) ([]models.InspectionComment, error)
}

type commentRepository struct {
	manager *database.Manager
}

// NewCommentRepository constructs the inspection comment repository.
func NewCommentRepository(manager *database.Manager) CommentRepository {
	return &commentRepository{manager: manager}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.InspectionComment) error {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) ListByCompanyDate(ctx context.Context, company, date string) ([]models.InspectionComment, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var comments []models.InspectionComment
	err = db.WithContext(ctx).
		Where("company = ? AND date = ?", company, date).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	return comments, nil
}
