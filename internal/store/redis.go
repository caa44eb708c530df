package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/abhisek/scholar/internal/backend"
)

const redisKeyPrefix = "scholar:"

// RedisDocuments implements backend.DocumentStore on Redis (or Dragonfly).
//
// Layout: each document is a JSON string at scholar:doc:<collection>:<id>;
// scholar:col:<collection> is a sorted set of ids scored by the shared
// scholar:seq counter, which gives GetDocuments its insertion order.
type RedisDocuments struct {
	client *redis.Client
	now    func() time.Time
}

var _ backend.DocumentStore = (*RedisDocuments)(nil)

// ParseRedisURL validates a Redis connection URL.
func ParseRedisURL(url string) (*redis.Options, error) {
	if url == "" {
		return nil, fmt.Errorf("redis URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return opts, nil
}

// OpenRedisDocuments connects to Redis and verifies the connection.
// No read or write timeouts are set: remote calls fail only through the
// server or the connection.
func OpenRedisDocuments(ctx context.Context, url string) (*RedisDocuments, error) {
	opts, err := ParseRedisURL(url)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = 5 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return &RedisDocuments{client: client, now: time.Now}, nil
}

// Close shuts down the client.
func (r *RedisDocuments) Close() error {
	return r.client.Close()
}

func collectionKey(collection string) string {
	return redisKeyPrefix + "col:" + collection
}

func documentKey(collection, id string) string {
	return redisKeyPrefix + "doc:" + collection + ":" + id
}

func (r *RedisDocuments) AddDocument(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.New().String()
	if err := r.write(ctx, collection, id, fields); err != nil {
		return "", fmt.Errorf("add document to %s: %w", collection, err)
	}
	return id, nil
}

func (r *RedisDocuments) SetDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := r.write(ctx, collection, id, fields); err != nil {
		return fmt.Errorf("set document %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *RedisDocuments) write(ctx context.Context, collection, id string, fields map[string]any) error {
	body, err := json.Marshal(backend.ResolveFields(fields, r.now()))
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}

	seq, err := r.client.Incr(ctx, redisKeyPrefix+"seq").Result()
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, documentKey(collection, id), body, 0)
		// NX keeps the first score, so overwrites do not reorder.
		pipe.ZAddNX(ctx, collectionKey(collection), redis.Z{Score: float64(seq), Member: id})
		return nil
	})
	return err
}

func (r *RedisDocuments) GetDocuments(ctx context.Context, collection string) ([]backend.Record, error) {
	ids, err := r.client.ZRange(ctx, collectionKey(collection), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = documentKey(collection, id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", collection, err)
	}

	records := make([]backend.Record, 0, len(values))
	for i, v := range values {
		body, ok := v.(string)
		if !ok {
			continue
		}
		fields := map[string]any{}
		if err := json.Unmarshal([]byte(body), &fields); err != nil {
			return nil, fmt.Errorf("decode %s/%s: %w", collection, ids[i], err)
		}
		records = append(records, backend.Record{ID: ids[i], Fields: fields})
	}
	return records, nil
}
