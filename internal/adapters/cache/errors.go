package cache

import "github.com/mikey/spam-detector/internal/core"

var (
	// ErrNotFound is returned when a cache entry is not found
	ErrNotFound = core.ErrCacheMiss
	// ErrExpired is returned when a cache entry has expired
	ErrExpired = core.ErrCacheExpired
)
