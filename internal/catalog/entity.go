// internal/catalog/entity.go
//
// Entity is a single guessable creature. Values are plain structs with no
// reference fields, so copies handed out by the catalog cannot alias or
// mutate catalog state.

package catalog

import "strings"

// Type is an elemental type tag such as "Water" or "Flying".
type Type string

// NoType marks an absent secondary type. It is never a valid real tag, so two
// absent secondaries compare equal and an absent one never matches a real tag.
const NoType Type = ""

const (
	Normal   Type = "Normal"
	Fire     Type = "Fire"
	Water    Type = "Water"
	Grass    Type = "Grass"
	Electric Type = "Electric"
	Ice      Type = "Ice"
	Fighting Type = "Fighting"
	Poison   Type = "Poison"
	Ground   Type = "Ground"
	Flying   Type = "Flying"
	Psychic  Type = "Psychic"
	Bug      Type = "Bug"
	Rock     Type = "Rock"
	Ghost    Type = "Ghost"
	Dragon   Type = "Dragon"
	Dark     Type = "Dark"
	Steel    Type = "Steel"
	Fairy    Type = "Fairy"
)

var knownTypes = map[Type]struct{}{
	Normal: {}, Fire: {}, Water: {}, Grass: {}, Electric: {}, Ice: {},
	Fighting: {}, Poison: {}, Ground: {}, Flying: {}, Psychic: {}, Bug: {},
	Rock: {}, Ghost: {}, Dragon: {}, Dark: {}, Steel: {}, Fairy: {},
}

// Valid reports whether t is one of the known real type tags.
func (t Type) Valid() bool {
	_, ok := knownTypes[t]
	return ok
}

// Habitat is where a creature is usually found.
type Habitat string

const (
	Cave         Habitat = "cave"
	Forest       Habitat = "forest"
	Grassland    Habitat = "grassland"
	Mountain     Habitat = "mountain"
	Rare         Habitat = "rare"
	RoughTerrain Habitat = "rough-terrain"
	Sea          Habitat = "sea"
	Urban        Habitat = "urban"
	WatersEdge   Habitat = "waters-edge"
)

// Valid reports whether h is part of the habitat enumeration.
func (h Habitat) Valid() bool {
	switch h {
	case Cave, Forest, Grassland, Mountain, Rare, RoughTerrain, Sea, Urban, WatersEdge:
		return true
	}
	return false
}

// Entity is an immutable catalog record.
type Entity struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	PrimaryType    Type    `json:"primaryType"`
	SecondaryType  Type    `json:"secondaryType,omitempty"` // NoType when absent
	Habitat        Habitat `json:"habitat"`
	EvolutionStage int     `json:"evolutionStage"`
	Height         float64 `json:"height"` // meters
	Weight         float64 `json:"weight"` // kilograms
	Generation     int     `json:"generation"`
}

// Types returns the 1 or 2 type tags, primary first.
func (e Entity) Types() []Type {
	if e.SecondaryType == NoType {
		return []Type{e.PrimaryType}
	}
	return []Type{e.PrimaryType, e.SecondaryType}
}

// HasSecondaryType reports whether the entity carries a second type tag.
func (e Entity) HasSecondaryType() bool { return e.SecondaryType != NoType }

// normalizeName is the case-insensitive lookup key for a name.
func normalizeName(name string) string { return strings.ToLower(name) }
