package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
)

// dialect holds the statements that differ between SQL backends
type dialect struct {
	name    string
	schema  []string
	upsert  string
	selectQ string
	deleteQ string
	expireQ string
}

// sqlCache implements ScoreCache on top of database/sql. Timestamps are
// stored as unix nanoseconds so both backends compare them the same way.
type sqlCache struct {
	db          *sql.DB
	dialect     dialect
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

func newSQLCache(ctx context.Context, db *sql.DB, d dialect, logger *zap.Logger, cleanupFreq time.Duration) (*sqlCache, error) {
	for _, stmt := range d.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("failed to prepare %s schema: %w", d.name, err)
		}
	}

	c := &sqlCache{
		db:          db,
		dialect:     d,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
		now:         time.Now,
	}

	go c.startCleanupTask()

	return c, nil
}

// Get retrieves an unexpired entry
func (c *sqlCache) Get(ctx context.Context, key string) (*core.ScoreEntry, error) {
	var (
		probability         float64
		lastSeen, expiresAt int64
	)

	err := c.db.QueryRowContext(ctx, c.dialect.selectQ, key, c.now().UnixNano()).
		Scan(&probability, &lastSeen, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query %s cache: %w", c.dialect.name, err)
	}

	return &core.ScoreEntry{
		Key:         key,
		Probability: probability,
		LastSeen:    time.Unix(0, lastSeen),
		ExpiresAt:   time.Unix(0, expiresAt),
	}, nil
}

// Set stores or replaces an entry
func (c *sqlCache) Set(ctx context.Context, entry *core.ScoreEntry) error {
	_, err := c.db.ExecContext(ctx, c.dialect.upsert,
		entry.Key, entry.Probability, entry.LastSeen.UnixNano(), entry.ExpiresAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert %s cache entry: %w", c.dialect.name, err)
	}
	return nil
}

// Delete removes an entry
func (c *sqlCache) Delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, c.dialect.deleteQ, key); err != nil {
		return fmt.Errorf("failed to delete %s cache entry: %w", c.dialect.name, err)
	}
	return nil
}

// Cleanup removes expired entries
func (c *sqlCache) Cleanup(ctx context.Context) error {
	result, err := c.db.ExecContext(ctx, c.dialect.expireQ, c.now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to clean up expired entries: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.logger.Warn("Failed to get rows affected during cleanup", zap.Error(err))
	} else {
		c.logger.Debug("Cleaned up expired cache entries",
			zap.String("backend", c.dialect.name),
			zap.Int64("expired_count", rowsAffected))
	}
	return nil
}

func (c *sqlCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task and closes the database
func (c *sqlCache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
		if err := c.db.Close(); err != nil {
			c.logger.Error("Failed to close cache database",
				zap.String("backend", c.dialect.name),
				zap.Error(err))
		}
	})
}
