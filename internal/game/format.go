package game

import (
	"strconv"
	"strings"

	"github.com/robalobadob/pokedle/internal/catalog"
)

// DefaultSpriteHost serves front sprites as {host}/{id}.png.
const DefaultSpriteHost = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"

// NoSecondaryType is shown when the guessed creature has a single type.
const NoSecondaryType = "N/A"

// GuessedPokemon is the display payload for the guessed creature.
type GuessedPokemon struct {
	Name           string `json:"name"`
	PhotoURL       string `json:"photoUrl"`
	Type           string `json:"type"`
	SecondaryType  string `json:"secondaryType"`
	Habitat        string `json:"habitat"`
	EvolutionStage string `json:"evolutionStage"`
	Height         string `json:"height"`
	Weight         string `json:"weight"`
}

// Result is the full record returned for one classic guess.
type Result struct {
	Feedback
	GuessedPokemon GuessedPokemon `json:"guessedPokemon"`
}

// Formatter builds display payloads.
type Formatter struct {
	SpriteHost string
}

// NewFormatter returns a Formatter for host, or DefaultSpriteHost when empty.
func NewFormatter(host string) Formatter {
	if host == "" {
		host = DefaultSpriteHost
	}
	return Formatter{SpriteHost: strings.TrimRight(host, "/")}
}

// SpriteURL is the external image reference for an entity id.
func (f Formatter) SpriteURL(id int) string {
	return f.SpriteHost + "/" + strconv.Itoa(id) + ".png"
}

// FormatGuessed renders e for display.
func (f Formatter) FormatGuessed(e catalog.Entity) GuessedPokemon {
	secondary := NoSecondaryType
	if e.HasSecondaryType() {
		secondary = string(e.SecondaryType)
	}
	return GuessedPokemon{
		Name:           e.Name,
		PhotoURL:       f.SpriteURL(e.ID),
		Type:           string(e.PrimaryType),
		SecondaryType:  secondary,
		Habitat:        string(e.Habitat),
		EvolutionStage: "Stage " + strconv.Itoa(e.EvolutionStage),
		Height:         formatNumber(e.Height) + "m",
		Weight:         formatNumber(e.Weight) + "kg",
	}
}

// formatNumber prints the shortest decimal that round-trips, so stored
// values come back as written (0.7, 6.9, 10).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
