// internal/store/memory.go
//
// In-memory implementation of Store backed by go-cache.
// Characteristics:
//   - Concurrency-safe; go-cache guards its map and checks expiry on read.
//   - Entries expire after the configured TTL; a janitor sweeps expired ones.
//   - Values are cloned on the way in and out, so callers never alias stored state.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/robalobadob/pokedle/internal/game"
)

// memory is a go-cache backed Store implementation.
type memory struct {
	games *cache.Cache
}

// NewMemoryStore constructs an in-memory Store. ttl <= 0 means DefaultTTL.
func NewMemoryStore(ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &memory{games: cache.New(ttl, ttl)}
}

// Save stores a copy of g and restarts its TTL.
func (m *memory) Save(_ context.Context, g *game.Game) error {
	if g == nil {
		return errors.New("store: nil game")
	}
	m.games.Set(g.Key(), g.Clone(), cache.DefaultExpiration)
	return nil
}

// Get returns a copy of the stored session.
func (m *memory) Get(_ context.Context, key string) (*game.Game, error) {
	v, ok := m.games.Get(key)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*game.Game).Clone(), nil
}

func (m *memory) Delete(_ context.Context, key string) error {
	m.games.Delete(key)
	return nil
}
