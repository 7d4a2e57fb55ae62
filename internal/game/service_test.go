package game_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/game"
)

func newService(t *testing.T, maxGuesses int) *game.Service {
	t.Helper()
	svc, err := game.NewService(&game.ServiceConfig{Catalog: catalog.Default(), MaxGuesses: maxGuesses})
	require.NoError(t, err)
	return svc
}

func TestNewServiceValidatesConfig(t *testing.T) {
	_, err := game.NewService(nil)
	assert.Error(t, err)
	_, err = game.NewService(&game.ServiceConfig{})
	assert.ErrorContains(t, err, "catalog is required")
	_, err = game.NewService(&game.ServiceConfig{Catalog: catalog.Default(), MaxGuesses: -1})
	assert.Error(t, err)
}

func TestSubmitGuess(t *testing.T) {
	svc := newService(t, 0)

	res, err := svc.SubmitGuess("raichu", "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "Raichu", res.GuessedPokemon.Name)
	assert.Equal(t, game.Green, res.TypeFeedback)
	assert.Equal(t, game.Down, res.HeightDirection)
	assert.False(t, res.Solved())

	res, err = svc.SubmitGuess("PIKACHU", "pikachu")
	require.NoError(t, err)
	assert.True(t, res.Solved())
}

func TestSubmitGuessNotFound(t *testing.T) {
	svc := newService(t, 0)

	res, err := svc.SubmitGuess("NotARealName", "Pikachu")
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, game.ErrEntityNotFound))
	assert.EqualError(t, err, `entity not found: "NotARealName"`)

	res, err = svc.SubmitGuess("Pikachu", "Missingno")
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, game.ErrEntityNotFound))
	assert.EqualError(t, err, `entity not found: "Missingno"`)
}

func TestSubmitGuessAcrossGenerations(t *testing.T) {
	svc := newService(t, 0)

	res, err := svc.SubmitGuess("Rattata", "Pikachu")
	require.NoError(t, err)
	assert.Equal(t, "Rattata", res.GuessedPokemon.Name)
	assert.Equal(t, game.Red, res.TypeFeedback)

	for _, name := range []string{"Nidoran-F", "Mr. Mime", "Farfetch'd", "Ho-Oh", "Deoxys"} {
		e, err := svc.FindEntityByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, e.Name)
	}
}

func TestSelectDailyName(t *testing.T) {
	svc := newService(t, 0)
	day := time.Date(2024, time.July, 29, 9, 0, 0, 0, time.UTC)

	for gens := 1; gens <= 3; gens++ {
		pool := svc.ListEntityNames(gens)
		name := svc.SelectDailyName(day, "", gens)
		assert.Contains(t, pool, name)
		assert.Equal(t, name, svc.SelectDailyName(day, "", gens))
		assert.Equal(t, name, svc.SelectDailyName(day.Add(10*time.Hour), "", gens), "same calendar day")
		assert.Equal(t, daily.SelectName(pool, day, ""), name)

		sil := svc.SelectDailyName(day, "silhouette", gens)
		assert.Contains(t, pool, sil)
	}
}

func TestSelectPreviousDayName(t *testing.T) {
	svc := newService(t, 0)
	today := time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)
	yesterday := time.Date(2024, time.July, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, svc.SelectDailyName(yesterday, "", 3), svc.SelectPreviousDayName(today, "", 3))
	assert.Equal(t, svc.SelectDailyName(yesterday, "silhouette", 1), svc.SelectPreviousDayName(today, "silhouette", 1))
}

func TestValidateGenerations(t *testing.T) {
	svc := newService(t, 0)
	for _, g := range []int{1, 2, 3} {
		assert.NoError(t, svc.ValidateGenerations(g))
	}
	for _, g := range []int{0, -1, 4} {
		assert.True(t, errors.Is(svc.ValidateGenerations(g), game.ErrBadGenerations))
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]game.Mode{
		"": game.Classic, "classic": game.Classic, " Silhouette ": game.Silhouette,
	} {
		got, err := game.ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := game.ParseMode("hardcore")
	assert.True(t, errors.Is(err, game.ErrUnknownMode))

	assert.Equal(t, "classic", game.Classic.Salt())
	assert.Equal(t, "silhouette", game.Silhouette.Salt())
}

func TestServiceSalt(t *testing.T) {
	svc, err := game.NewService(&game.ServiceConfig{Catalog: catalog.Default(), Salt: "pepper"})
	require.NoError(t, err)
	assert.Equal(t, "pepperclassic", svc.DailySalt(game.Classic))
	assert.Equal(t, "peppersilhouette", svc.DailySalt(game.Silhouette))

	day := time.Date(2024, time.July, 29, 9, 0, 0, 0, time.UTC)
	g, err := svc.NewGame("p", game.Silhouette, 3, day)
	require.NoError(t, err)
	assert.Equal(t, svc.SelectDailyName(day, "peppersilhouette", 3), g.Target)

	g, err = svc.NewGame("p", game.Classic, 3, day)
	require.NoError(t, err)
	assert.Equal(t, svc.SelectDailyName(day, "pepperclassic", 3), g.Target)
}

func TestClassicSaltSelectsOwnAnswer(t *testing.T) {
	svc := newService(t, 0)
	pool := svc.ListEntityNames(3)
	d := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	differs := false
	for i := 0; i < 30; i++ {
		at := d.AddDate(0, 0, i)
		g, err := svc.NewGame("p", game.Classic, 3, at)
		require.NoError(t, err)
		assert.Equal(t, daily.SelectName(pool, at, "classic"), g.Target)
		differs = differs || g.Target != daily.SelectName(pool, at, "")
	}
	assert.True(t, differs, "classic salt must change the unsalted pick")
}
