package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"shelfdesk/internal/util"
)

const defaultStreamMaxLen = 1000

// RedisNotifier appends notifications to a Redis stream so other surfaces
// (toast renderer, audit tail) can consume them. Delivery is best effort;
// failures are logged and dropped.
type RedisNotifier struct {
	client *redis.Client
	stream string
	maxLen int64
	log    *slog.Logger
}

// NewRedisNotifier builds a stream-backed sink.
func NewRedisNotifier(addr, password, stream string, log *slog.Logger) *RedisNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &RedisNotifier{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		stream: stream,
		maxLen: defaultStreamMaxLen,
		log:    log,
	}
}

// NewRedisNotifierWithClient wires an existing client, used by tests.
func NewRedisNotifierWithClient(client *redis.Client, stream string, log *slog.Logger) *RedisNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &RedisNotifier{client: client, stream: stream, maxLen: defaultStreamMaxLen, log: log}
}

// Notify appends one entry to the stream.
func (n *RedisNotifier) Notify(severity Severity, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: n.stream,
		MaxLen: n.maxLen,
		Approx: true,
		Values: map[string]any{
			"id":       util.NewID(8),
			"severity": string(severity),
			"message":  message,
			"at":       time.Now().UTC().Format(time.RFC3339),
		},
	}).Err()
	if err != nil {
		n.log.Warn("notification drop", "stream", n.stream, "err", err)
	}
}
