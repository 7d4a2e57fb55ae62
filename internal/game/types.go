// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - Color / Direction: per-attribute verdicts.
//   - Feedback / Result: the record produced for one guess.
//   - Mode / Status / Game: state for a single daily session.

package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Color is the verdict for one attribute of a guess.
type Color string

const (
	Green  Color = "green"  // exact match
	Yellow Color = "yellow" // partial: crossed type, or within the tolerance window
	Red    Color = "red"    // no match
)

// Direction hints whether the target value is larger or smaller than the guess.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
	None Direction = "none"
)

// Mode selects the kind of daily puzzle.
type Mode string

const (
	// Classic gives per-attribute feedback on every guess.
	Classic Mode = "classic"
	// Silhouette only tells the player whether the name is right.
	Silhouette Mode = "silhouette"
)

// Salt is the daily-selection salt for the mode, so each mode has its own answer.
func (m Mode) Salt() string { return string(m) }

// ParseMode maps a request string to a Mode. Empty means Classic.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Classic:
		return Classic, nil
	case Silhouette:
		return Silhouette, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Status is the coarse state of a session.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

var (
	// ErrEntityNotFound means a guessed or target name is not in the catalog.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrOutOfPool means the name exists but is outside the session's generations.
	ErrOutOfPool = errors.New("not in the selected generations")
	// ErrAlreadyGuessed means the player already tried this name in the session.
	ErrAlreadyGuessed = errors.New("already guessed")
	// ErrGameFinished means the session no longer accepts guesses.
	ErrGameFinished = errors.New("game finished")
	// ErrGameInProgress means the session has no final result yet.
	ErrGameInProgress = errors.New("game still in progress")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrBadGenerations = errors.New("generations out of range")
)

// Outcome is what a session returns for an accepted guess.
type Outcome struct {
	Guess   string  `json:"guess"`
	Correct bool    `json:"correct"`
	Result  *Result `json:"result,omitempty"` // classic mode only
}

// Game holds the state of a single daily session. It is serialized as JSON
// by the session stores.
type Game struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"playerId"`
	Mode        Mode      `json:"mode"`
	Generations int       `json:"generations"`
	Date        string    `json:"date"`   // YYYY-MM-DD
	Target      string    `json:"target"` // canonical catalog name
	MaxGuesses  int       `json:"maxGuesses"`
	Guesses     []string  `json:"guesses"` // canonical names, in submission order
	Outcomes    []Outcome `json:"outcomes"`
	Status      Status    `json:"status"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt,omitempty"`
}

// SessionKey identifies a player's session for one day, mode and pool.
func SessionKey(playerID string, mode Mode, generations int, date string) string {
	return fmt.Sprintf("%s:%s:%d:%s", playerID, mode, generations, date)
}

// Key is SessionKey for g.
func (g *Game) Key() string {
	return SessionKey(g.PlayerID, g.Mode, g.Generations, g.Date)
}

// Finished reports whether the session is over.
func (g *Game) Finished() bool { return g.Status != StatusPlaying }

// Elapsed is the time from start to finish (or zero while playing).
func (g *Game) Elapsed() time.Duration {
	if g.FinishedAt.IsZero() {
		return 0
	}
	return g.FinishedAt.Sub(g.StartedAt)
}

// Clone returns a deep copy of g.
func (g *Game) Clone() *Game {
	c := *g
	c.Guesses = append([]string(nil), g.Guesses...)
	c.Outcomes = make([]Outcome, len(g.Outcomes))
	for i, o := range g.Outcomes {
		c.Outcomes[i] = o
		if o.Result != nil {
			r := *o.Result
			c.Outcomes[i].Result = &r
		}
	}
	return &c
}
