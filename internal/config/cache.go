package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig controls the catalog result cache.  The public catalog
// keeps the enriched in-stock list for TTL before re-reading storage;
// a stale list within that window is acceptable.  When Enabled is
// false the loader runs on every request.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Key     string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "30s")),
		Key:     getenv("CACHE_KEY", "catalog:stock"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
