package database

import (
	"fmt"

	"github.com/lshigami/Sunbittern/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the attempt-session store.
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})
}
