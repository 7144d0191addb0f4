package broker

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"gcsfake/internal/domain/repository/broker"
	"gcsfake/pkg/fakegcs"
)

const bodyField = "body"

var (
	_ broker.Publisher = (*Publisher)(nil)
	_ fakegcs.Notifier = (*Publisher)(nil)
)

// Publisher appends notification events to the redis stream.
type Publisher struct {
	redis   *redis.Client
	stream  string
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		redis:   client.redis,
		stream:  client.stream,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) Publish(ctx context.Context, message string) error {
	if p.redis == nil {
		return errors.New("redis not initialized")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	return p.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{bodyField: message},
	}).Err()
}
