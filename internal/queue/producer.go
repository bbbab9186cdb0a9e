package queue

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const (
	ReminderQueueKey = "reminder_queue"
	ReminderDLQKey   = "reminder_queue_dlq"
)

type Producer interface {
	Enqueue(ctx context.Context, job Job) error
}

type RedisProducer struct {
	Redis *redis.Client
}

func NewProducer(redis *redis.Client) Producer {
	return &RedisProducer{Redis: redis}
}

func (p *RedisProducer) Enqueue(ctx context.Context, job Job) error {
	jobBytes, err := json.Marshal(job)
	if err != nil {
		return err
	}

	return p.Redis.ZAdd(ctx, ReminderQueueKey, redis.Z{
		Score:  float64(job.RunAt),
		Member: jobBytes,
	}).Err()
}
