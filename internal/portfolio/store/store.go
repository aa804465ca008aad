// Package store persists the portfolio aggregate in Redis as a single JSON
// value under one key: a full overwrite on every save, no partial writes.
package store

import (
	"context"
	"encoding/json"

	"moneta-backend/internal/portfolio"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "portfolio:aggregate"

// Store reads and writes the full aggregate under a single Redis key.
type Store struct {
	Rdb *redis.Client
	Key string
}

func New(rdb *redis.Client) *Store {
	return &Store{Rdb: rdb, Key: DefaultKey}
}

// Load returns the persisted aggregate, or nil when none has been saved yet.
func (s *Store) Load(ctx context.Context) (*portfolio.Portfolio, error) {
	raw, err := s.Rdb.Get(ctx, s.Key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := &portfolio.Portfolio{}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save overwrites the stored aggregate with p.
func (s *Store) Save(ctx context.Context, p *portfolio.Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.Rdb.Set(ctx, s.Key, raw, 0).Err()
}
