package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/genaicorelab/iam-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	RedisTypeSingle  = "redis"
	RedisTypeCluster = "redisCluster"
	pingTimeout      = time.Millisecond * 1500
)

// NewRedis connects to the instance or cluster that also backs the asynq mail
// queue (see queue/asynqserver.RedisOptions). Cached values are namespaced
// under keyPrefix so they never collide with asynq's own keys.
func NewRedis(cfg config.Cache) (redis.UniversalClient, error) {
	var client redis.UniversalClient
	switch cfg.Type {
	case RedisTypeSingle:
		client = redis.NewClient(&redis.Options{
			Addr:            cfg.Redis.Address,
			Password:        cfg.Redis.Password,
			PoolSize:        cfg.Redis.PoolSize,
			ConnMaxIdleTime: 170 * time.Second,
			DialTimeout:     time.Second,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
		})
	case RedisTypeCluster:
		// reference lists are tiny and read rarely; reads stay on masters so a
		// fresh Set is visible immediately
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           cfg.RedisCluster.Addresses,
			Password:        cfg.RedisCluster.Password,
			PoolSize:        cfg.RedisCluster.PoolSize,
			ConnMaxLifetime: 15 * time.Minute,
			DialTimeout:     time.Second,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
		})
	default:
		return nil, fmt.Errorf("wrong redis type %q", cfg.Type)
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return client, fmt.Errorf("redis ping %s: %w", cfg.Type, err)
	}

	return client, nil
}
