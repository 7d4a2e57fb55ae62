// internal/game/engine.go
//
// Session engine for a single daily puzzle.
// Responsibilities:
//   - Create sessions with the day's target for a mode and generation pool.
//   - Validate and apply guesses (known name, inside the pool, not repeated).
//   - Track state transitions: playing → won, or → lost when a cap is set.
//
// Rejected guesses never change the session and never count as an attempt.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/daily"
)

// NewGame starts a session for playerID on date's calendar day.
func (s *Service) NewGame(playerID string, mode Mode, generations int, date time.Time) (*Game, error) {
	if mode != Classic && mode != Silhouette {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if err := s.ValidateGenerations(generations); err != nil {
		return nil, err
	}
	return &Game{
		ID:          randomID(),
		PlayerID:    playerID,
		Mode:        mode,
		Generations: generations,
		Date:        daily.DateKey(date),
		Target:      s.SelectDailyName(date, s.DailySalt(mode), generations),
		MaxGuesses:  s.maxGuesses,
		Guesses:     []string{},
		Outcomes:    []Outcome{},
		Status:      StatusPlaying,
		StartedAt:   date,
	}, nil
}

// ApplyGuess validates and scores a guess, mutating g on success.
//
// Validation order:
//   - Game must not be finished.
//   - Guess must name a catalog entity (ErrEntityNotFound).
//   - The entity must be inside the session's generations (ErrOutOfPool).
//   - It must not repeat an earlier guess (ErrAlreadyGuessed).
//
// Classic sessions get a full Result; silhouette sessions only learn whether
// the name is right.
func (s *Service) ApplyGuess(g *Game, guess string, at time.Time) (*Outcome, error) {
	if g.Finished() {
		return nil, ErrGameFinished
	}
	guessed, err := s.FindEntityByName(strings.TrimSpace(guess))
	if err != nil {
		return nil, err
	}
	if !catalog.InPool(guessed, g.Generations) {
		return nil, fmt.Errorf("%w: %q", ErrOutOfPool, guessed.Name)
	}
	for _, prev := range g.Guesses {
		if strings.EqualFold(prev, guessed.Name) {
			return nil, fmt.Errorf("%w: %q", ErrAlreadyGuessed, guessed.Name)
		}
	}
	target, err := s.FindEntityByName(g.Target)
	if err != nil {
		return nil, err
	}

	out := Outcome{
		Guess:   guessed.Name,
		Correct: guessed.ID == target.ID,
	}
	if g.Mode == Classic {
		out.Result = s.result(guessed, target)
	}

	g.Guesses = append(g.Guesses, guessed.Name)
	g.Outcomes = append(g.Outcomes, out)

	switch {
	case out.Correct:
		g.Status, g.FinishedAt = StatusWon, at
	case g.MaxGuesses > 0 && len(g.Guesses) >= g.MaxGuesses:
		g.Status, g.FinishedAt = StatusLost, at
	}
	return &out, nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
