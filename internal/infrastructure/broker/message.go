package broker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"gcsfake/pkg/fakegcs"
)

type RedisMessage struct {
	stream      string
	group       string
	id          string
	body        string
	redisClient *redis.Client
}

func (m *RedisMessage) Body() string {
	return m.body
}

// Event decodes the message body as an object notification.
func (m *RedisMessage) Event() (fakegcs.Event, error) {
	var e fakegcs.Event
	err := json.Unmarshal([]byte(m.body), &e)

	return e, err
}

func (m *RedisMessage) Ack() error {
	return m.redisClient.XAck(context.Background(), m.stream, m.group, m.id).Err()
}
