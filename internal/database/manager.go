package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/cadetnet/dutylog-api/internal/observability"
)

// OpenFunc opens a fresh pooled connection handle to the relational store.
type OpenFunc func() (*gorm.DB, error)

// PoolConfig carries pass-through sizing for the underlying sql.DB pool.
type PoolConfig struct {
	MaxOpen     int
	MinIdle     int
	IdleTimeout time.Duration
}

// Manager owns the single shared connection handle used by every repository.
// It connects lazily on first use and re-establishes the handle whenever the
// pool reports itself disconnected. Acquisition is serialized so concurrent
// callers observing a dead handle await one reconnect attempt instead of
// racing to issue their own.
type Manager struct {
	open   OpenFunc
	pool   PoolConfig
	logger zerolog.Logger

	mu sync.Mutex
	db *gorm.DB
}

// NewManager constructs a connection manager around the given opener.
func NewManager(open OpenFunc, pool PoolConfig, logger zerolog.Logger) *Manager {
	return &Manager{
		open:   open,
		pool:   pool,
		logger: logger.With().Str("component", "database_manager").Logger(),
	}
}

// Acquire returns a live connection handle, opening or reopening the shared
// pool if needed. Callers must not retain the handle across operations; the
// pool has no push notification for drops, so every operation revalidates.
func (m *Manager) Acquire(ctx context.Context) (*gorm.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		if err := ping(ctx, m.db); err == nil {
			return m.db, nil
		}
		// A canceled caller says nothing about the health of the handle.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		m.logger.Warn().Msg("database handle no longer responds, reconnecting")
		if sqlDB, err := m.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		m.db = nil
	}

	observability.ReconnectAttempts().Inc()

	db, err := m.open()
	if err != nil {
		m.logger.Error().Err(err).Msg("database connection failed")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := m.configurePool(db); err != nil {
		m.logger.Error().Err(err).Msg("failed to configure connection pool")
		return nil, err
	}

	m.db = db
	m.logger.Info().Msg("connected to database")

	return db, nil
}

// Close releases the shared handle. Intended for the service shutdown hook.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	m.db = nil

	return sqlDB.Close()
}

func (m *Manager) configurePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access pool handle: %w", err)
	}

	// database/sql has no minimum-connection knob. A zero idle ceiling would
	// close every connection the moment it returns to the pool, so fall back
	// to MaxOpen and let SetConnMaxIdleTime do the draining.
	idle := m.pool.MinIdle
	if idle <= 0 {
		idle = m.pool.MaxOpen
	}
	if idle <= 0 {
		idle = 2
	}

	sqlDB.SetMaxOpenConns(m.pool.MaxOpen)
	sqlDB.SetMaxIdleConns(idle)
	sqlDB.SetConnMaxIdleTime(m.pool.IdleTimeout)

	return nil
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
