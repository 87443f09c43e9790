package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

var mysqlDialect = dialect{
	name: "mysql",
	schema: []string{
		`CREATE TABLE IF NOT EXISTS score_cache (
			vector_key  CHAR(64) PRIMARY KEY,
			probability DOUBLE NOT NULL,
			last_seen   BIGINT NOT NULL,
			expires_at  BIGINT NOT NULL,
			INDEX idx_score_cache_expires_at (expires_at)
		)`,
	},
	upsert: `INSERT INTO score_cache (vector_key, probability, last_seen, expires_at)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			probability = VALUES(probability),
			last_seen = VALUES(last_seen),
			expires_at = VALUES(expires_at)`,
	selectQ: `SELECT probability, last_seen, expires_at FROM score_cache
		WHERE vector_key = ? AND expires_at > ?`,
	deleteQ: `DELETE FROM score_cache WHERE vector_key = ?`,
	expireQ: `DELETE FROM score_cache WHERE expires_at <= ?`,
}

// MySQLCache is a MySQL implementation of the ScoreCache interface
type MySQLCache struct {
	*sqlCache
}

// NewMySQLCache connects to dsn and creates the cache table if needed
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	c, err := newSQLCache(ctx, db, mysqlDialect, logger, cleanupFreq)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &MySQLCache{sqlCache: c}, nil
}
