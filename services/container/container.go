// Package container wires the services together so controllers depend on
// one constructor-injected object instead of globals.
package container

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/NEMOzzzzzzzzzz/sms/config"
	"github.com/NEMOzzzzzzzzzz/sms/services"
)

// ServiceContainer manages dependency injection for all services.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	cache               *services.CacheService
	residentService     services.InterfaceResidentService
	paymentService      services.InterfacePaymentService
	announcementService services.InterfaceAnnouncementService

	mu sync.RWMutex
}

// NewServiceContainer creates the container. db and cfg are required;
// redisClient may be nil, in which case the list cache is disabled.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("service container: nil database handle")
	}
	if cfg == nil {
		panic("service container: nil config")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			config.Warning("redis unreachable, list cache disabled: %v", err)
			redisClient = nil
		}
	}

	c := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	c.initializeServices()
	return c
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = services.NewCacheService(c.config, c.redis)
	c.residentService = services.NewResidentService(c.db, c.cache)
	c.paymentService = services.NewPaymentService(c.db, c.cache)
	c.announcementService = services.NewAnnouncementService(c.db, c.cache)
}

// GetResidentService returns the resident service.
func (c *ServiceContainer) GetResidentService() services.InterfaceResidentService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.residentService
}

// GetPaymentService returns the payment service.
func (c *ServiceContainer) GetPaymentService() services.InterfacePaymentService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paymentService
}

// GetAnnouncementService returns the announcement service.
func (c *ServiceContainer) GetAnnouncementService() services.InterfaceAnnouncementService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.announcementService
}
