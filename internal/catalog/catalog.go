// internal/catalog/catalog.go
//
// Provides the creature catalog used by the game engine.
//
// Responsibilities:
//   - Parse and validate the catalog (embedded pokedex.json, or a file override).
//   - Lookup by name (case-insensitive exact match).
//   - Filter by maximum generation, preserving declaration order.
//
// Initialization behavior (Init):
//   1. If a path is given (POKEDEX_FILE), load the catalog from that file.
//   2. Otherwise fall back to the embedded assets/pokedex.json.
//
// Constraints enforced at load time:
//   • ids are positive and unique; names are non-empty and unique ignoring case.
//   • 1 or 2 known types, primary != secondary.
//   • habitat in the fixed enumeration, evolution stage in 1..3.
//   • height, weight > 0; generation >= 1.
//
// A Catalog is never mutated after construction and is safe for concurrent use.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/robalobadob/pokedle/assets"
)

// ErrNotFound is returned when no entity matches a name.
var ErrNotFound = errors.New("catalog: entity not found")

// Catalog is a read-only, ordered set of entities.
type Catalog struct {
	entities []Entity
	byName   map[string]int // normalized name -> index into entities
	maxGen   int
}

// rawEntity mirrors the on-disk JSON record.
type rawEntity struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Types          []string `json:"types"`
	Habitat        string   `json:"habitat"`
	EvolutionStage int      `json:"evolutionStage"`
	Height         float64  `json:"height"`
	Weight         float64  `json:"weight"`
	Generation     int      `json:"generation"`
}

// Parse decodes a JSON array of entity records and validates it.
func Parse(data []byte) (*Catalog, error) {
	var raw []rawEntity
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	entities := make([]Entity, 0, len(raw))
	for i, r := range raw {
		if len(r.Types) < 1 || len(r.Types) > 2 {
			return nil, fmt.Errorf("catalog: record %d (%q): want 1 or 2 types, got %d", i, r.Name, len(r.Types))
		}
		e := Entity{
			ID:             r.ID,
			Name:           r.Name,
			PrimaryType:    Type(r.Types[0]),
			Habitat:        Habitat(r.Habitat),
			EvolutionStage: r.EvolutionStage,
			Height:         r.Height,
			Weight:         r.Weight,
			Generation:     r.Generation,
		}
		if len(r.Types) == 2 {
			e.SecondaryType = Type(r.Types[1])
		}
		entities = append(entities, e)
	}
	return New(entities)
}

// Load reads and parses a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return Parse(data)
}

// New validates entities and builds a Catalog over a private copy of them.
func New(entities []Entity) (*Catalog, error) {
	if len(entities) == 0 {
		return nil, errors.New("catalog: no entities")
	}
	c := &Catalog{
		entities: make([]Entity, len(entities)),
		byName:   make(map[string]int, len(entities)),
	}
	copy(c.entities, entities)

	ids := make(map[int]string, len(entities))
	for i, e := range c.entities {
		if err := validate(e); err != nil {
			return nil, err
		}
		if prev, dup := ids[e.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %d (%q and %q)", e.ID, prev, e.Name)
		}
		ids[e.ID] = e.Name
		key := normalizeName(e.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("catalog: duplicate name %q", e.Name)
		}
		c.byName[key] = i
		if e.Generation > c.maxGen {
			c.maxGen = e.Generation
		}
	}
	return c, nil
}

func validate(e Entity) error {
	switch {
	case e.ID <= 0:
		return fmt.Errorf("catalog: %q: id must be positive, got %d", e.Name, e.ID)
	case e.Name == "":
		return fmt.Errorf("catalog: id %d: empty name", e.ID)
	case !e.PrimaryType.Valid():
		return fmt.Errorf("catalog: %q: unknown primary type %q", e.Name, e.PrimaryType)
	case e.SecondaryType != NoType && !e.SecondaryType.Valid():
		return fmt.Errorf("catalog: %q: unknown secondary type %q", e.Name, e.SecondaryType)
	case e.SecondaryType == e.PrimaryType:
		return fmt.Errorf("catalog: %q: primary and secondary type are both %q", e.Name, e.PrimaryType)
	case !e.Habitat.Valid():
		return fmt.Errorf("catalog: %q: unknown habitat %q", e.Name, e.Habitat)
	case e.EvolutionStage < 1 || e.EvolutionStage > 3:
		return fmt.Errorf("catalog: %q: evolution stage %d out of range 1..3", e.Name, e.EvolutionStage)
	case e.Height <= 0 || e.Weight <= 0:
		return fmt.Errorf("catalog: %q: height and weight must be positive", e.Name)
	case e.Generation < 1:
		return fmt.Errorf("catalog: %q: generation must be >= 1", e.Name)
	}
	return nil
}

// FindByName returns the entity whose name equals name ignoring case.
func (c *Catalog) FindByName(name string) (Entity, bool) {
	i, ok := c.byName[normalizeName(name)]
	if !ok {
		return Entity{}, false
	}
	return c.entities[i], true
}

// Lookup is FindByName returning ErrNotFound on a miss.
func (c *Catalog) Lookup(name string) (Entity, error) {
	e, ok := c.FindByName(name)
	if !ok {
		return Entity{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e, nil
}

// ListNames returns the names of all entities with Generation <= maxGeneration,
// in declaration order. maxGeneration <= 0 means the whole catalog.
func (c *Catalog) ListNames(maxGeneration int) []string {
	out := make([]string, 0, len(c.entities))
	for _, e := range c.entities {
		if inPool(e, maxGeneration) {
			out = append(out, e.Name)
		}
	}
	return out
}

// ListEntities is ListNames returning full records.
func (c *Catalog) ListEntities(maxGeneration int) []Entity {
	out := make([]Entity, 0, len(c.entities))
	for _, e := range c.entities {
		if inPool(e, maxGeneration) {
			out = append(out, e)
		}
	}
	return out
}

// InPool reports whether e is eligible under maxGeneration.
func InPool(e Entity, maxGeneration int) bool { return inPool(e, maxGeneration) }

func inPool(e Entity, maxGeneration int) bool {
	return maxGeneration <= 0 || e.Generation <= maxGeneration
}

// Len is the total number of entities.
func (c *Catalog) Len() int { return len(c.entities) }

// MaxGeneration is the highest generation present in the catalog.
func (c *Catalog) MaxGeneration() int { return c.maxGen }

// --- process-wide default catalog ---

var (
	initOnce       sync.Once
	defaultCatalog *Catalog
	initErr        error
)

// Init loads the default catalog exactly once. An empty path selects the
// embedded pokedex. Later calls return the first result regardless of path.
func Init(path string) error {
	initOnce.Do(func() {
		var data []byte
		if path != "" {
			data, initErr = os.ReadFile(path)
		} else {
			data, initErr = assets.Pokedex()
		}
		if initErr != nil {
			initErr = fmt.Errorf("catalog: load %q: %w", path, initErr)
			return
		}
		defaultCatalog, initErr = Parse(data)
	})
	return initErr
}

// Default returns the process-wide catalog, initializing it from the embedded
// data if Init was never called. It is nil if initialization failed.
func Default() *Catalog {
	_ = Init("")
	return defaultCatalog
}
