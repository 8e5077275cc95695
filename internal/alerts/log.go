package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	logKey     = "goham:alerts:log"
	logMaxSize = 100
)

// Entry is one record in the alert audit trail.
type Entry struct {
	Timestamp       time.Time `json:"timestamp"`
	BookingID       string    `json:"booking_id"`
	Service         string    `json:"service"`
	Customer        string    `json:"customer"`
	WorkersNotified []string  `json:"workers_notified"`
	Status          string    `json:"status"`
}

// Log records dispatch runs for later inspection.
type Log interface {
	Append(ctx context.Context, e Entry) error
	Recent(ctx context.Context, n int) ([]Entry, error)
}

// RedisLog keeps the most recent dispatch records in a capped Redis list,
// newest first.
type RedisLog struct {
	client *redis.Client
}

// NewRedisLog creates a Redis-backed alert log.
func NewRedisLog(client *redis.Client) *RedisLog {
	return &RedisLog{client: client}
}

// Append pushes an entry and trims the list to the cap.
func (l *RedisLog) Append(ctx context.Context, e Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("alerts: marshal log entry: %w", err)
	}
	pipe := l.client.TxPipeline()
	pipe.LPush(ctx, logKey, raw)
	pipe.LTrim(ctx, logKey, 0, logMaxSize-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("alerts: append log entry: %w", err)
	}
	return nil
}

// Recent returns up to n entries, newest first.
func (l *RedisLog) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 || n > logMaxSize {
		n = logMaxSize
	}
	raws, err := l.client.LRange(ctx, logKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("alerts: read log: %w", err)
	}
	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		var e Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("alerts: decode log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// NopLog discards entries. Used when Redis is not configured.
type NopLog struct{}

func (NopLog) Append(context.Context, Entry) error          { return nil }
func (NopLog) Recent(context.Context, int) ([]Entry, error) { return nil, nil }
