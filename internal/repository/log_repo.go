package repository

import (
	"context"

	"github.com/cadetnet/dutylog-api/internal/database"
	"github.com/cadetnet/dutylog-api/internal/models"
)

// lastPerCompanyQuery ranks log entries within each company by descending id
// and keeps rank 1. Ranking by id (not the date/time strings) makes the store's
// surrogate-key assignment order authoritative for "most recent", and a single
// set-oriented query means a row inserted mid-query is either fully ranked
// within its partition or not visible at all.
const lastPerCompanyQuery = `
SELECT id, date, time, time_out, name, message, action, company
FROM (
	SELECT log_entries.*,
	       ROW_NUMBER() OVER (PARTITION BY company ORDER BY id DESC) AS company_rank
	FROM log_entries
) ranked
WHERE company_rank = 1`

// LogRepository persists append-only duty log entries.
type LogRepository interface {
	Create(ctx context.Context, entry *models.LogEntry) error
	ListByCompany(ctx context.Context, company string) ([]models.LogEntry, error)
	ListInRange(ctx context.Context, company, date1, date2 string) ([]models.LogEntry, error)
	ListAll(ctx context.Context) ([]models.LogEntry, error)
	LastPerCompany(ctx context.Context) ([]models.LogEntry, error)
}

type logRepository struct {
	manager *database.Manager
}

// NewLogRepository constructs the log repository.
func NewLogRepository(manager *database.Manager) LogRepository {
	return &logRepository{manager: manager}
}

func (r *logRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Create(entry).Error
}

func (r *logRepository) ListByCompany(ctx context.Context, company string) ([]models.LogEntry, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var entries []models.LogEntry
	if err := db.WithContext(ctx).Where("company = ?", company).Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *logRepository) ListInRange(ctx context.Context, company, date1, date2 string) ([]models.LogEntry, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var entries []models.LogEntry
	err = db.WithContext(ctx).
		Where("company = ? AND date >= ? AND date <= ?", company, date1, date2).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *logRepository) ListAll(ctx context.Context) ([]models.LogEntry, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var entries []models.LogEntry
	if err := db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *logRepository) LastPerCompany(ctx context.Context) ([]models.LogEntry, error) {
	db, err := r.manager.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var entries []models.LogEntry
	if err := db.WithContext(ctx).Raw(lastPerCompanyQuery).Scan(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
