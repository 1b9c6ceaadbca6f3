package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NEMOzzzzzzzzzz/sms/config"
)

// Cache keys for per-entity list results.
const (
	CacheKeyResidents     = "sms:residents"
	CacheKeyPayments      = "sms:payments"
	CacheKeyAnnouncements = "sms:announcements"
)

// CacheService is a read-through cache for entity lists. It is optional:
// a nil receiver or nil client turns every operation into a no-op, so the
// services work identically with Redis absent.
type CacheService struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewCacheService builds the cache service, or nil when Redis is not
// configured.
func NewCacheService(cfg *config.Config, client *redis.Client) *CacheService {
	if client == nil {
		return nil
	}
	return &CacheService{Client: client, TTL: cfg.CacheTTL}
}

// GetList loads a cached list into dest, reporting whether it was present.
// Cache failures count as misses; the database stays the source of truth.
func (s *CacheService) GetList(ctx context.Context, key string, dest interface{}) bool {
	if s == nil || s.Client == nil {
		return false
	}
	val, err := s.Client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

// SetList stores a list result under key with the configured TTL.
func (s *CacheService) SetList(ctx context.Context, key string, value interface{}) {
	if s == nil || s.Client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.Client.Set(ctx, key, data, s.TTL)
}

// Invalidate drops a cached list after a mutation.
func (s *CacheService) Invalidate(ctx context.Context, key string) {
	if s == nil || s.Client == nil {
		return
	}
	s.Client.Del(ctx, key)
}
