package repository

import (
	"context"

	"github.com/cadetnet/dutylog-api/internal/database"
	"github.com/cadetnet/dutylog-api/internal/models"
)

// AdminRepository reads the admin allow-list.
type AdminRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type adminRepository struct {
	manager *database.Manager
}

// NewAdminRepository constructs the admin allow-list repository.
func NewAdminRepository(manager *database.Manager) AdminRepository {
	return &adminRepository{manager: manager}
}

func (r *adminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return false, err
	}

	var count int64
	err = db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
