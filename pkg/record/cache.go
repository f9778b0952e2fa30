package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spinetrack/platform/pkg/common/logger"
	"github.com/spinetrack/platform/pkg/common/models"
)

// Cache keeps assembled patient views in Redis so repeated app loads skip
// the database and derivation work. Entries expire on TTL and are
// invalidated on PROM writes.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(patientNumber string) string {
	return fmt.Sprintf("patient:%s", patientNumber)
}

// Get returns the cached view, or (zero, false) on miss. Redis failures are
// treated as misses; the cache never blocks a read.
func (c *Cache) Get(ctx context.Context, patientNumber string) (models.PatientResponse, bool) {
	if c == nil || c.client == nil {
		return models.PatientResponse{}, false
	}

	data, err := c.client.Get(ctx, cacheKey(patientNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.PatientResponse{}, false
	}
	if err != nil {
		logger.Log.WithError(err).Warn("Patient cache read failed")
		return models.PatientResponse{}, false
	}

	var resp models.PatientResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.Log.WithError(err).Warn("Patient cache entry corrupt, discarding")
		c.Invalidate(ctx, patientNumber)
		return models.PatientResponse{}, false
	}
	return resp, true
}

func (c *Cache) Set(ctx context.Context, patientNumber string, resp models.PatientResponse) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		logger.Log.WithError(err).Warn("Patient cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, cacheKey(patientNumber), data, c.ttl).Err(); err != nil {
		logger.Log.WithError(err).Warn("Patient cache write failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context, patientNumber string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(patientNumber)).Err(); err != nil {
		logger.Log.WithError(err).Warn("Patient cache invalidation failed")
	}
}
