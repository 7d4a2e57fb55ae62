// assets/embed.go
//
// Static data compiled into the binary:
//   - pokedex.json: the creature catalog (id, name, types, habitat, stage, size, generation).
//   - migrations/*.sql: schema for the daily results database.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed pokedex.json migrations/*.sql
var FS embed.FS

// Pokedex returns the raw embedded catalog JSON.
func Pokedex() ([]byte, error) {
	return FS.ReadFile("pokedex.json")
}

// Migrations returns the embedded migrations directory rooted at "migrations".
func Migrations() (fs.FS, error) {
	return fs.Sub(FS, "migrations")
}
