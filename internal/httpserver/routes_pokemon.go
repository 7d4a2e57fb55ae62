// internal/httpserver/routes_pokemon.go
//
// Catalog routes and the stateless comparison endpoint:
//   - GET  /pokemon?generations=N → names in the pool (all when omitted)
//   - GET  /pokemon/{name}        → one entity with its display fields
//   - POST /guess                 → compare any guess/target pair

package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/game"
)

func (s *Server) mountPokemon(r chi.Router) {
	r.Get("/pokemon", s.handleListPokemon)
	r.Get("/pokemon/{name}", s.handleGetPokemon)
	r.Post("/guess", s.handleCompare)
}

type listRes struct {
	Generations int      `json:"generations"`
	Names       []string `json:"names"`
}

func (s *Server) handleListPokemon(w http.ResponseWriter, r *http.Request) {
	gens := 0
	if v := r.URL.Query().Get("generations"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, fmt.Errorf("%w: generations %q", errBadRequest, v))
			return
		}
		if err := s.svc.ValidateGenerations(n); err != nil {
			writeError(w, err)
			return
		}
		gens = n
	}
	writeJSON(w, http.StatusOK, listRes{Generations: gens, Names: s.svc.ListEntityNames(gens)})
}

type pokemonRes struct {
	catalog.Entity
	Display game.GuessedPokemon `json:"display"`
}

func (s *Server) handleGetPokemon(w http.ResponseWriter, r *http.Request) {
	e, err := s.svc.FindEntityByName(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pokemonRes{Entity: e, Display: s.svc.Formatter().FormatGuessed(e)})
}

type compareReq struct {
	Guess  string `json:"guess"`
	Target string `json:"target"`
}

// handleCompare runs SubmitGuess on an explicit pair. Useful for practice
// boards and for checking the engine without a session.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}
	res, err := s.svc.SubmitGuess(req.Guess, req.Target)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
