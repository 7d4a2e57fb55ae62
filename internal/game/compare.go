package game

import (
	"math"

	"github.com/robalobadob/pokedle/internal/catalog"
)

// tolerance is the yellow window for height and weight, as a fraction of the
// target's value.
const tolerance = 0.2

// Attribute names a compared property, in display order.
type Attribute string

const (
	AttrType           Attribute = "type"
	AttrSecondaryType  Attribute = "secondaryType"
	AttrHabitat        Attribute = "habitat"
	AttrEvolutionStage Attribute = "evolutionStage"
	AttrHeight         Attribute = "height"
	AttrWeight         Attribute = "weight"
)

// AttributeFeedback pairs an attribute with its verdict.
type AttributeFeedback struct {
	Attribute Attribute `json:"attribute"`
	Color     Color     `json:"color"`
}

// Feedback is the per-attribute comparison of a guess against the target.
// Habitat and evolution stage are only ever Green or Red.
type Feedback struct {
	TypeFeedback           Color     `json:"typeFeedback"`
	SecondaryTypeFeedback  Color     `json:"secondaryTypeFeedback"`
	HabitatFeedback        Color     `json:"habitatFeedback"`
	EvolutionStageFeedback Color     `json:"evolutionStageFeedback"`
	HeightFeedback         Color     `json:"heightFeedback"`
	WeightFeedback         Color     `json:"weightFeedback"`
	HeightDirection        Direction `json:"heightDirection"`
	WeightDirection        Direction `json:"weightDirection"`
}

// Attributes lists every verdict in display order. Presentation code should
// iterate this rather than the struct fields.
func (f Feedback) Attributes() []AttributeFeedback {
	return []AttributeFeedback{
		{AttrType, f.TypeFeedback},
		{AttrSecondaryType, f.SecondaryTypeFeedback},
		{AttrHabitat, f.HabitatFeedback},
		{AttrEvolutionStage, f.EvolutionStageFeedback},
		{AttrHeight, f.HeightFeedback},
		{AttrWeight, f.WeightFeedback},
	}
}

// Solved reports whether every attribute is green.
func (f Feedback) Solved() bool {
	for _, a := range f.Attributes() {
		if a.Color != Green {
			return false
		}
	}
	return true
}

// Compare scores guessed against target. It is pure and total: both entities
// are assumed valid catalog records.
//
// Types cross-match: a guessed primary equal to the target's secondary (or the
// reverse) is yellow. Absent secondaries compare equal to each other and never
// to a real tag.
func Compare(guessed, target catalog.Entity) Feedback {
	var f Feedback

	switch guessed.PrimaryType {
	case target.PrimaryType:
		f.TypeFeedback = Green
	case target.SecondaryType:
		f.TypeFeedback = Yellow
	default:
		f.TypeFeedback = Red
	}

	switch guessed.SecondaryType {
	case target.SecondaryType:
		f.SecondaryTypeFeedback = Green
	case target.PrimaryType:
		f.SecondaryTypeFeedback = Yellow
	default:
		f.SecondaryTypeFeedback = Red
	}

	f.HabitatFeedback = exact(guessed.Habitat == target.Habitat)
	f.EvolutionStageFeedback = exact(guessed.EvolutionStage == target.EvolutionStage)
	f.HeightFeedback, f.HeightDirection = measure(guessed.Height, target.Height)
	f.WeightFeedback, f.WeightDirection = measure(guessed.Weight, target.Weight)
	return f
}

func exact(eq bool) Color {
	if eq {
		return Green
	}
	return Red
}

// measure grades a numeric attribute. The window is relative to the target,
// and the direction is filled in for yellow as well as red.
func measure(guessed, target float64) (Color, Direction) {
	if guessed == target {
		return Green, None
	}
	dir := Down
	if target > guessed {
		dir = Up
	}
	if withinTolerance(guessed, target) {
		return Yellow, dir
	}
	return Red, dir
}

// withinTolerance reports |guessed-target| <= 0.2*target. The catalog stores
// decimals such as 1.2 that are not exact in binary, so a difference that
// lands on the boundary is compared with a few ulps of slack.
func withinTolerance(guessed, target float64) bool {
	diff := math.Abs(guessed - target)
	limit := target * tolerance
	return diff <= limit || diff-limit <= 4*ulp(limit)
}

func ulp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1)) - x
}
