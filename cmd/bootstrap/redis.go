package bootstrap

import (
	"context"
	"time"

	"leaveflow/internal/infra/sessioncache"
	"leaveflow/internal/pkg/config"
	"leaveflow/internal/usecase/balance"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			NewSnapshotStore,
			fx.As(new(balance.SnapshotStore)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// Snapshot slots live as long as a session token can.
func NewSnapshotStore(client *redis.Client, cfg config.Config) *sessioncache.RedisStore {
	return sessioncache.NewRedisStore(client, cfg.JWT.Duration)
}
