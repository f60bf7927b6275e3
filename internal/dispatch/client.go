package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Config holds the queue settings shared by the client and the worker
type Config struct {
	RedisURL    string
	Queue       string
	Concurrency int
	// DialsPerSecond paces dials on the worker; zero or less disables pacing
	DialsPerSecond float64
}

type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queueName(cfg.Queue),
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Ping checks the connection to Redis
func (c *Client) Ping() error {
	return c.client.Ping()
}

// EnqueueDial schedules a dial for a queued call. Each call is enqueued at most once
// while the task is retained.
func (c *Client) EnqueueDial(ctx context.Context, callID uint) error {
	task, err := NewDialCallTask(DialCallPayload{CallID: callID})
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(c.queue),
		asynq.TaskID(fmt.Sprintf("dial-%d", callID)),
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
		asynq.Retention(time.Hour),
	)
	return err
}

func redisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Username:  opt.Username,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}

func queueName(queue string) string {
	if queue == "" {
		return "default"
	}
	return queue
}
