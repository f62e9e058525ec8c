package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// EventLog append-only analytics event sink. Implementations are expected to
// be durable but callers on the primary request path must treat appends as
// best-effort (log and continue on failure).
type EventLog interface {
	Append(ctx context.Context, stream string, values map[string]interface{}) error
}

// RedisEventLog appends events to a Redis Stream via XADD.
type RedisEventLog struct {
	c *redis.Client
}

func NewRedisEventLog(c *redis.Client) *RedisEventLog { return &RedisEventLog{c: c} }

func (l *RedisEventLog) Append(ctx context.Context, stream string, values map[string]interface{}) error {
	streamValues := make(map[string]interface{}, len(values))
	for k, v := range values {
		s, err := stringify(v)
		if err != nil {
			return err
		}
		streamValues[k] = s
	}

	return l.c.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: streamValues,
	}).Err()
}

// stringify converts a value to the string form Redis Streams fields require.
func stringify(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case int:
		return fmt.Sprintf("%d", val), nil
	case int32:
		return fmt.Sprintf("%d", val), nil
	case int64:
		return fmt.Sprintf("%d", val), nil
	case float32:
		return fmt.Sprintf("%f", val), nil
	case float64:
		return fmt.Sprintf("%f", val), nil
	case bool:
		if val {
			return "true", nil
		}
		return "false", nil
	case time.Time:
		return val.UTC().Format(time.RFC3339), nil
	default:
		jsonBytes, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(jsonBytes), nil
	}
}

// MemoryEventLog in-memory event sink for dev (no Redis) and tests.
type MemoryEventLog struct {
	mu     sync.Mutex
	events map[string][]map[string]interface{}
}

func NewMemoryEventLog() *MemoryEventLog {
	return &MemoryEventLog{events: map[string][]map[string]interface{}{}}
}

func (l *MemoryEventLog) Append(_ context.Context, stream string, values map[string]interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events[stream] = append(l.events[stream], values)
	return nil
}

// Events returns a copy of the events appended to a stream.
func (l *MemoryEventLog) Events(stream string) []map[string]interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]map[string]interface{}, len(l.events[stream]))
	copy(out, l.events[stream])
	return out
}
