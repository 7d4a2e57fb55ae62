// internal/game/service.go
//
// Service is the entry point callers use to play:
//   - FindEntityByName / ListEntityNames: catalog access.
//   - SelectDailyName / SelectPreviousDayName: the date-seeded target.
//   - SubmitGuess: lookup + Compare + FormatGuessed for a guess/target pair.
//   - NewGame / ApplyGuess (engine.go): session bookkeeping on top of SubmitGuess.

package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/daily"
)

// ServiceConfig holds the dependencies of a Service.
type ServiceConfig struct {
	Catalog    *catalog.Catalog
	SpriteHost string // empty: DefaultSpriteHost
	Salt       string // prepended to every mode salt
	MaxGuesses int    // per session; 0: unlimited
}

// Validate ensures all required dependencies are provided.
func (c *ServiceConfig) Validate() error {
	if c == nil {
		return errors.New("game: config cannot be nil")
	}
	if c.Catalog == nil {
		return errors.New("game: catalog is required")
	}
	if c.MaxGuesses < 0 {
		return errors.New("game: negative MaxGuesses")
	}
	return nil
}

// Service composes the catalog, comparison, formatting and daily selection.
// It is safe for concurrent use.
type Service struct {
	catalog    *catalog.Catalog
	formatter  Formatter
	salt       string
	maxGuesses int
}

// NewService validates cfg and builds a Service.
func NewService(cfg *ServiceConfig) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Service{
		catalog:    cfg.Catalog,
		formatter:  NewFormatter(cfg.SpriteHost),
		salt:       cfg.Salt,
		maxGuesses: cfg.MaxGuesses,
	}, nil
}

// Catalog exposes the underlying catalog.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Formatter exposes the display formatter.
func (s *Service) Formatter() Formatter { return s.formatter }

// FindEntityByName resolves a name case-insensitively.
func (s *Service) FindEntityByName(name string) (catalog.Entity, error) {
	e, ok := s.catalog.FindByName(name)
	if !ok {
		return catalog.Entity{}, fmt.Errorf("%w: %q", ErrEntityNotFound, name)
	}
	return e, nil
}

// ListEntityNames lists names up to maxGeneration (0: all) in catalog order.
func (s *Service) ListEntityNames(maxGeneration int) []string {
	return s.catalog.ListNames(maxGeneration)
}

// DailySalt is the selection salt used for mode's sessions.
func (s *Service) DailySalt(mode Mode) string { return s.salt + mode.Salt() }

// ValidateGenerations checks a requested pool against the catalog.
func (s *Service) ValidateGenerations(generations int) error {
	if generations < 1 || generations > s.catalog.MaxGeneration() {
		return fmt.Errorf("%w: %d (1..%d)", ErrBadGenerations, generations, s.catalog.MaxGeneration())
	}
	return nil
}

// SelectDailyName returns the target for date's calendar day, salt and
// generation pool. The same inputs always give the same name.
func (s *Service) SelectDailyName(date time.Time, salt string, maxGeneration int) string {
	return daily.SelectName(s.catalog.ListNames(maxGeneration), date, salt)
}

// SelectPreviousDayName is SelectDailyName for the day before date.
func (s *Service) SelectPreviousDayName(date time.Time, salt string, maxGeneration int) string {
	return s.SelectDailyName(daily.PreviousDay(date), salt, maxGeneration)
}

// SubmitGuess compares guessedName against targetName. Either name missing
// from the catalog yields ErrEntityNotFound and no result.
func (s *Service) SubmitGuess(guessedName, targetName string) (*Result, error) {
	guessed, err := s.FindEntityByName(guessedName)
	if err != nil {
		return nil, err
	}
	target, err := s.FindEntityByName(targetName)
	if err != nil {
		return nil, err
	}
	return s.result(guessed, target), nil
}

func (s *Service) result(guessed, target catalog.Entity) *Result {
	return &Result{
		Feedback:       Compare(guessed, target),
		GuessedPokemon: s.formatter.FormatGuessed(guessed),
	}
}
