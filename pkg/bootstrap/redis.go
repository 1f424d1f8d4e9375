package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/Goden-Gun/fault-lib/pkg/config"
	log "github.com/Goden-Gun/fault-lib/pkg/logger"
)

// InitRedis connects the alert de-dup store and verifies the connection.
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: config.GetSecretOrEnv("REDIS_PASSWORD", cfg.Password),
		DB:       cfg.Db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Errorf("redis init failed: %v", err)
		return nil, err
	}

	log.Info("redis initialized successfully")
	return client, nil
}
