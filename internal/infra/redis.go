package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis opens the go-redis client backing the error-report queue
// (worker.QueueErrorReports).
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	// Fail at startup rather than on the first enqueue
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
