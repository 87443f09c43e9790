package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

var sqliteDialect = dialect{
	name: "sqlite",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS score_cache (
			vector_key  TEXT PRIMARY KEY,
			probability REAL NOT NULL,
			last_seen   INTEGER NOT NULL,
			expires_at  INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_score_cache_expires_at ON score_cache(expires_at)`,
	},
	upsert: `INSERT OR REPLACE INTO score_cache (vector_key, probability, last_seen, expires_at)
		VALUES (?, ?, ?, ?)`,
	selectQ: `SELECT probability, last_seen, expires_at FROM score_cache
		WHERE vector_key = ? AND expires_at > ?`,
	deleteQ: `DELETE FROM score_cache WHERE vector_key = ?`,
	expireQ: `DELETE FROM score_cache WHERE expires_at <= ?`,
}

// SQLiteCache is a SQLite implementation of the ScoreCache interface
type SQLiteCache struct {
	*sqlCache
}

// NewSQLiteCache opens (or creates) the database at dbPath
func NewSQLiteCache(dbPath string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	c, err := newSQLCache(context.Background(), db, sqliteDialect, logger, cleanupFreq)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteCache{sqlCache: c}, nil
}
