package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/game"
)

func mon(primary, secondary catalog.Type) catalog.Entity {
	return catalog.Entity{
		ID:             1,
		Name:           "Testmon",
		PrimaryType:    primary,
		SecondaryType:  secondary,
		Habitat:        catalog.Forest,
		EvolutionStage: 1,
		Height:         1.0,
		Weight:         10.0,
		Generation:     1,
	}
}

func TestCompareSelfIsAllGreen(t *testing.T) {
	for _, e := range catalog.Default().ListEntities(0) {
		f := game.Compare(e, e)
		assert.True(t, f.Solved(), e.Name)
		assert.Equal(t, game.None, f.HeightDirection, e.Name)
		assert.Equal(t, game.None, f.WeightDirection, e.Name)
	}
}

func TestComparePrimaryType(t *testing.T) {
	tests := []struct {
		name          string
		guess, target catalog.Entity
		want          game.Color
		wantSecondary game.Color
	}{
		{"same primary", mon(catalog.Water, catalog.NoType), mon(catalog.Water, catalog.Flying), game.Green, game.Red},
		{"guess primary is target secondary", mon(catalog.Flying, catalog.Grass), mon(catalog.Water, catalog.Flying), game.Yellow, game.Red},
		{"no overlap", mon(catalog.Fire, catalog.NoType), mon(catalog.Water, catalog.Flying), game.Red, game.Red},
		{"swapped pair", mon(catalog.Flying, catalog.Water), mon(catalog.Water, catalog.Flying), game.Yellow, game.Yellow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := game.Compare(tc.guess, tc.target)
			assert.Equal(t, tc.want, f.TypeFeedback)
			assert.Equal(t, tc.wantSecondary, f.SecondaryTypeFeedback)
		})
	}
}

func TestCompareSecondaryType(t *testing.T) {
	tests := []struct {
		name          string
		guess, target catalog.Entity
		want          game.Color
	}{
		{"both absent", mon(catalog.Fire, catalog.NoType), mon(catalog.Water, catalog.NoType), game.Green},
		{"guess has one, target none", mon(catalog.Fire, catalog.Flying), mon(catalog.Water, catalog.NoType), game.Red},
		{"guess secondary is target primary, target single", mon(catalog.Fire, catalog.Water), mon(catalog.Water, catalog.NoType), game.Yellow},
		{"guess none, target has one", mon(catalog.Water, catalog.NoType), mon(catalog.Water, catalog.Flying), game.Red},
		{"same secondary", mon(catalog.Normal, catalog.Flying), mon(catalog.Water, catalog.Flying), game.Green},
		{"secondary matches target primary only", mon(catalog.Normal, catalog.Water), mon(catalog.Water, catalog.Flying), game.Yellow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, game.Compare(tc.guess, tc.target).SecondaryTypeFeedback)
		})
	}
}

func TestCompareSecondaryAbsenceAgainstCatalog(t *testing.T) {
	all := catalog.Default().ListEntities(0)
	for _, target := range all {
		if target.HasSecondaryType() {
			continue
		}
		for _, guess := range all {
			got := game.Compare(guess, target).SecondaryTypeFeedback
			if guess.HasSecondaryType() {
				assert.NotEqual(t, game.Green, got, "%s vs %s", guess.Name, target.Name)
			} else {
				assert.Equal(t, game.Green, got, "%s vs %s", guess.Name, target.Name)
			}
		}
	}
}

func TestCompareTwoTierAttributes(t *testing.T) {
	target := mon(catalog.Water, catalog.NoType)
	guess := target
	guess.Habitat = catalog.Cave
	guess.EvolutionStage = 2

	f := game.Compare(guess, target)
	assert.Equal(t, game.Red, f.HabitatFeedback)
	assert.Equal(t, game.Red, f.EvolutionStageFeedback)

	guess.EvolutionStage = 1
	guess.Habitat = catalog.Forest
	f = game.Compare(guess, target)
	assert.Equal(t, game.Green, f.HabitatFeedback)
	assert.Equal(t, game.Green, f.EvolutionStageFeedback)
}

func TestCompareHeightTolerance(t *testing.T) {
	target := mon(catalog.Water, catalog.NoType) // height 1.0
	tests := []struct {
		guess float64
		color game.Color
		dir   game.Direction
	}{
		{1.0, game.Green, game.None},
		{1.2, game.Yellow, game.Down},
		{1.21, game.Red, game.Down},
		{0.8, game.Yellow, game.Up},
		{0.79, game.Red, game.Up},
		{0.1, game.Red, game.Up},
		{8.8, game.Red, game.Down},
	}
	for _, tc := range tests {
		guess := target
		guess.Height = tc.guess
		f := game.Compare(guess, target)
		assert.Equal(t, tc.color, f.HeightFeedback, "height %v", tc.guess)
		assert.Equal(t, tc.dir, f.HeightDirection, "height %v", tc.guess)
	}
}

func TestCompareWeightDirection(t *testing.T) {
	target := mon(catalog.Water, catalog.NoType) // weight 10.0
	tests := []struct {
		guess float64
		color game.Color
		dir   game.Direction
	}{
		{5.0, game.Red, game.Up},
		{12.0, game.Yellow, game.Down},
		{8.0, game.Yellow, game.Up},
		{10.0, game.Green, game.None},
		{12.5, game.Red, game.Down},
	}
	for _, tc := range tests {
		guess := target
		guess.Weight = tc.guess
		f := game.Compare(guess, target)
		assert.Equal(t, tc.color, f.WeightFeedback, "weight %v", tc.guess)
		assert.Equal(t, tc.dir, f.WeightDirection, "weight %v", tc.guess)
	}
}

func TestToleranceIsRelativeToTarget(t *testing.T) {
	// |10 - 8| = 2 is within 20% of a target of 10, but not of a target of 8.
	small := mon(catalog.Water, catalog.NoType)
	small.Weight = 8
	big := mon(catalog.Water, catalog.NoType)
	big.Weight = 10

	assert.Equal(t, game.Yellow, game.Compare(small, big).WeightFeedback)
	assert.Equal(t, game.Red, game.Compare(big, small).WeightFeedback)
}

func TestCompareRealPair(t *testing.T) {
	c := catalog.Default()
	raichu, _ := c.FindByName("Raichu")
	pikachu, _ := c.FindByName("Pikachu")

	assert.Equal(t, game.Feedback{
		TypeFeedback:           game.Green,
		SecondaryTypeFeedback:  game.Green,
		HabitatFeedback:        game.Green,
		EvolutionStageFeedback: game.Red,
		HeightFeedback:         game.Red,
		WeightFeedback:         game.Red,
		HeightDirection:        game.Down,
		WeightDirection:        game.Down,
	}, game.Compare(raichu, pikachu))
}

func TestAttributesOrderAndSolved(t *testing.T) {
	f := game.Feedback{
		TypeFeedback:           game.Green,
		SecondaryTypeFeedback:  game.Yellow,
		HabitatFeedback:        game.Red,
		EvolutionStageFeedback: game.Green,
		HeightFeedback:         game.Yellow,
		WeightFeedback:         game.Red,
	}
	assert.Equal(t, []game.AttributeFeedback{
		{Attribute: game.AttrType, Color: game.Green},
		{Attribute: game.AttrSecondaryType, Color: game.Yellow},
		{Attribute: game.AttrHabitat, Color: game.Red},
		{Attribute: game.AttrEvolutionStage, Color: game.Green},
		{Attribute: game.AttrHeight, Color: game.Yellow},
		{Attribute: game.AttrWeight, Color: game.Red},
	}, f.Attributes())
	assert.False(t, f.Solved())
}
