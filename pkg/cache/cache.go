// Package cache keeps rendered revenue reports in Redis until new sales
// arrive. Keys embed a generation number; invalidation bumps the generation
// so a report computed before a sale can never be served after it.
package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/sales-insights/pkg/logger"
)

// KeyPrefix namespaces every cached report
const KeyPrefix = "cache:sales:"

// GenerationKey holds the current report generation
const GenerationKey = KeyPrefix + "generation"

// DefaultTTL is used when a non-positive TTL is configured
const DefaultTTL = 5 * time.Minute

// ReportCache caches GET responses of report endpoints. A nil client turns
// every method into a pass-through.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a report cache on client
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Enabled reports whether responses are actually cached
func (c *ReportCache) Enabled() bool {
	return c != nil && c.client != nil
}

// Middleware serves cached report bodies and stores fresh 200 responses
func (c *ReportCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.Enabled() || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()

		// read the generation before the handler queries the database
		generation, err := c.generation(ctx)
		if err != nil {
			logger.Warn(ctx).Err(err).Msg("Cache generation lookup failed")
			next.ServeHTTP(w, r)
			return
		}
		key := Key(r, generation)

		cached, err := c.client.Get(ctx, key).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Debug(ctx).Str("path", r.URL.Path).Str("cache_key", key).Msg("Cache hit")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached)
			return
		}
		if err != nil && err != redis.Nil {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Cache lookup failed")
		}

		w.Header().Set("X-Cache", "MISS")
		capture := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(capture, r)

		if capture.status != http.StatusOK || capture.body.Len() == 0 {
			return
		}

		if err := c.client.Set(ctx, key, capture.body.Bytes(), c.ttl).Err(); err != nil {
			logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Failed to cache response")
			return
		}

		logger.Debug(ctx).
			Str("path", r.URL.Path).
			Str("cache_key", key).
			Dur("ttl", c.ttl).
			Int("size", capture.body.Len()).
			Msg("Response cached")
	})
}

// InvalidateReports moves to a new generation. Reports stored under older
// generations are never read again and expire with their TTL.
func (c *ReportCache) InvalidateReports(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	generation, err := c.client.Incr(ctx, GenerationKey).Result()
	if err != nil {
		return fmt.Errorf("bump report generation: %w", err)
	}

	logger.Info(ctx).Int64("generation", generation).Msg("Report cache invalidated")
	return nil
}

func (c *ReportCache) generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, GenerationKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return generation, err
}

// Key derives the cache key from the generation, method, path and raw query
func Key(r *http.Request, generation int64) string {
	components := fmt.Sprintf("%s:%s:%s", r.Method, r.URL.Path, r.URL.RawQuery)
	hash := sha256.Sum256([]byte(components))
	return KeyPrefix + strconv.FormatInt(generation, 10) + ":" + hex.EncodeToString(hash[:])
}

type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
