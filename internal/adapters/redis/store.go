package redis

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/lexgap/pkg/domain"
)

// Store implements ports.HistoryStore using Redis. The full list lives as
// one JSON value under a single key, matching the store contract of
// whole-list replacement per write.
type Store struct {
	client *backend.Client
	key    string
}

type Option func(*Store)

// WithKey overrides the Redis key holding the history list.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		key:    "lexgap:history",
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Read loads the history list. A missing key yields an empty list.
func (s *Store) Read(ctx context.Context) ([]domain.HistoryEntry, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err == backend.Nil {
			return []domain.HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return entries, nil
}

// Write replaces the history list.
func (s *Store) Write(ctx context.Context, entries []domain.HistoryEntry) error {
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
