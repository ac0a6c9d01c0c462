package artifact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"

	"github.com/SeamusWaldron/eograph"
)

// RedisStore keeps encoded graphs as string values, with a sorted set
// indexing them by save time.
type RedisStore struct {
	client *backend.Client
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix. Defaults to "eograph:".
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore connects to the Redis server at addr.
func NewRedisStore(addr string, db int, opts ...RedisOption) *RedisStore {
	return NewRedisStoreFromClient(backend.NewClient(&backend.Options{
		Addr: addr,
		DB:   db,
	}), opts...)
}

// NewRedisStoreFromClient creates a store on an existing client.
func NewRedisStoreFromClient(client *backend.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: "eograph:"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(id string) string {
	return s.prefix + "graph:" + id
}

func (s *RedisStore) indexKey() string {
	return s.prefix + "graphs"
}

// Save stores the encoded graph and records it in the index.
func (s *RedisStore) Save(ctx context.Context, g *eograph.Graph) (string, error) {
	data, err := Encode(g)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(id), data, 0)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(time.Now().UnixMicro()),
		Member: id,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to save to redis: %w", err)
	}
	return id, nil
}

// Load fetches and decodes the graph stored under id.
func (s *RedisStore) Load(ctx context.Context, id string) (*eograph.Graph, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load from redis: %w", err)
	}
	return Decode(data)
}

// Latest returns the highest-scored ID in the index.
func (s *RedisStore) Latest(ctx context.Context) (string, error) {
	ids, err := s.client.ZRevRange(ctx, s.indexKey(), 0, 0).Result()
	if err != nil {
		return "", fmt.Errorf("failed to read redis index: %w", err)
	}
	if len(ids) == 0 {
		return "", ErrNotFound
	}
	return ids[0], nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
