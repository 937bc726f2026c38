package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cadetnet/dutylog-api/internal/config"
)

// PostgresOpener returns an OpenFunc that dials the configured PostgreSQL instance.
func PostgresOpener(cfg config.Config) OpenFunc {
	sslMode := "disable"
	if cfg.DBEncrypt {
		sslMode = "require"
	}

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, sslMode,
	)

	return func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}

		return db, nil
	}
}
