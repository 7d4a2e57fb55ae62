// internal/store/store.go
//
// Persistence for in-progress daily sessions.
// Sessions are keyed by game.Game.Key() (player, mode, generations, date), so a
// player resumes the same session for the rest of the day. Reset is Delete.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/pokedle/internal/game"
)

// DefaultTTL keeps a session long enough to outlive its calendar day in any zone.
const DefaultTTL = 48 * time.Hour

// ErrNotFound is returned by Get when no live session exists for a key.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence interface for game sessions.
// Implementations must not share *game.Game values with callers.
type Store interface {
	// Save persists or updates a session under g.Key().
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a session by key, or ErrNotFound.
	Get(ctx context.Context, key string) (*game.Game, error)

	// Delete removes a session. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
