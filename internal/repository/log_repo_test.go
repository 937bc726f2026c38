package repository

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cadetnet/dutylog-api/internal/database"
	"github.com/cadetnet/dutylog-api/internal/models"
)

func setupTestManager(t *testing.T) *database.Manager {
	t.Helper()
	opener := func() (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&models.LogEntry{}, &models.Image{}, &models.InspectionComment{}, &models.AdminUser{}); err != nil {
			return nil, err
		}
		return db, nil
	}
	pool := database.PoolConfig{MaxOpen: 10, MinIdle: 0, IdleTimeout: 30 * time.Second}
	return database.NewManager(opener, pool, zerolog.New(io.Discard))
}

func seedLog(t *testing.T, repo LogRepository, company, date string) models.LogEntry {
	t.Helper()
	entry := models.LogEntry{
		Date:    date,
		Time:    "0800",
		TimeOut: models.NoTimeOut,
		Name:    "CDT Doe",
		Message: "all secure",
		Action:  "patrol",
		Company: company,
	}
	require.NoError(t, repo.Create(context.Background(), &entry))
	return entry
}

func TestLogRepositoryLastPerCompany(t *testing.T) {
	repo := NewLogRepository(setupTestManager(t))

	first := seedLog(t, repo, "A1", "20250101")
	second := seedLog(t, repo, "B2", "20250102")
	third := seedLog(t, repo, "A1", "20250103")

	entries, err := repo.LastPerCompany(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byCompany := make(map[string]models.LogEntry, len(entries))
	for _, entry := range entries {
		byCompany[entry.Company] = entry
	}
	require.Equal(t, third.ID, byCompany["A1"].ID, "expected newest entry for A1")
	require.Equal(t, second.ID, byCompany["B2"].ID)
	require.NotEqual(t, first.ID, byCompany["A1"].ID)
}

func TestLogRepositoryLastPerCompanyEmpty(t *testing.T) {
	repo := NewLogRepository(setupTestManager(t))

	entries, err := repo.LastPerCompany(context.Background())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLogRepositoryRangeIsInclusive(t *testing.T) {
	repo := NewLogRepository(setupTestManager(t))

	before := seedLog(t, repo, "A1", "20250109")
	lower := seedLog(t, repo, "A1", "20250110")
	middle := seedLog(t, repo, "A1", "20250115")
	upper := seedLog(t, repo, "A1", "20250120")
	after := seedLog(t, repo, "A1", "20250121")

	entries, err := repo.ListInRange(context.Background(), "A1", "20250110", "20250120")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	ids := make([]uint, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	require.Contains(t, ids, lower.ID)
	require.Contains(t, ids, middle.ID)
	require.Contains(t, ids, upper.ID)
	require.NotContains(t, ids, before.ID)
	require.NotContains(t, ids, after.ID)
}

func TestLogRepositoryListByCompanyExactMatch(t *testing.T) {
	repo := NewLogRepository(setupTestManager(t))

	seedLog(t, repo, "A1", "20250101")
	seedLog(t, repo, "B2", "20250101")

	entries, err := repo.ListByCompany(context.Background(), "A1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "A1", entries[0].Company)
}

func TestLogRepositoryQuotedCompanyMatchesNothing(t *testing.T) {
	repo := NewLogRepository(setupTestManager(t))

	seedLog(t, repo, "A1", "20250101")

	entries, err := repo.ListByCompany(context.Background(), "A1' OR '1'='1")
	require.NoError(t, err, "bound parameters must never break statement syntax")
	require.Empty(t, entries)
}

func TestLogRepositoryUnknownCompanyReturnsEmpty(t *testing.T) {
	repo := NewLogRepository(setupTestManager(t))

	entries, err := repo.ListByCompany(context.Background(), "Z9")
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLogRepositoryListAll(t *testing.T) {
	repo := NewLogRepository(setupTestManager(t))

	seedLog(t, repo, "A1", "20250101")
	seedLog(t, repo, "B2", "20250102")

	entries, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
}
