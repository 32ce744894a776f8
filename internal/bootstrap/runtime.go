// Package bootstrap establishes shared runtime dependencies for commands.
package bootstrap

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"talento/internal/cache"
	"talento/internal/config"
	"talento/internal/database"
)

// Runtime bundles the connections a command needs to operate.
type Runtime struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
}

// InitRuntime loads configuration and connects to the database and Redis.
func InitRuntime() (*Runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	redisClient, err := cache.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &Runtime{Config: cfg, DB: db, Redis: redisClient}, nil
}

// Close releases the runtime's connections.
func (r *Runtime) Close() {
	if r.DB != nil {
		if sqlDB, err := r.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if r.Redis != nil {
		_ = r.Redis.Close()
	}
}
