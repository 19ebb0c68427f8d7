package broadcast

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisChannel carries events between instances.
const RedisChannel = "safelink:broadcast"

type RedisRelay struct {
	rdb *redis.Client
}

// NewRedisRelay connects and pings the server.
func NewRedisRelay(ctx context.Context, url string) (*RedisRelay, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisRelay{rdb: rdb}, nil
}

func (r *RedisRelay) Publish(ctx context.Context, payload []byte) error {
	return r.rdb.Publish(ctx, RedisChannel, payload).Err()
}

func (r *RedisRelay) Listen(ctx context.Context, handle func([]byte)) error {
	pubsub := r.rdb.Subscribe(ctx, RedisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			handle([]byte(msg.Payload))
		}
	}
}

func (r *RedisRelay) Close() error {
	return r.rdb.Close()
}
