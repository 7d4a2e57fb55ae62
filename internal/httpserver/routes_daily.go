// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge".
// Exposes endpoints under /daily:
//   - POST /daily/new         → start today's session (or resume the existing one)
//   - GET  /daily/state       → current session without the answer while playing
//   - POST /daily/guess       → submit a guess to today's session
//   - POST /daily/reset       → discard today's session
//   - GET  /daily/share       → emoji summary of a finished session
//   - GET  /daily/yesterday   → yesterday's answer
//   - GET  /daily/leaderboard → top results for today (or a given date) and pool
//
// Every route takes a mode ("classic" | "silhouette") and a generation pool.
// Sessions live in the session store; results are persisted to SQLite on win.

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/game"
	"github.com/robalobadob/pokedle/internal/store"
)

const leaderboardSize = 20

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Get("/state", s.handleDailyState)
		r.Post("/guess", s.handleDailyGuess)
		r.Post("/reset", s.handleDailyReset)
		r.Get("/share", s.handleDailyShare)
		r.Get("/yesterday", s.handleDailyYesterday)
		r.Get("/leaderboard", s.handleDailyLeaderboard)
	})
}

// sessionReq is the common body of POST /daily/* requests.
type sessionReq struct {
	Mode        string `json:"mode"`
	Generations int    `json:"generations"`
	Guess       string `json:"guess,omitempty"`
}

// resolve validates mode and pool; a zero pool means the server default.
func (s *Server) resolve(mode string, generations int) (game.Mode, int, error) {
	m, err := game.ParseMode(mode)
	if err != nil {
		return "", 0, err
	}
	if generations == 0 {
		generations = s.defGens
	}
	if err := s.svc.ValidateGenerations(generations); err != nil {
		return "", 0, err
	}
	return m, generations, nil
}

func (s *Server) decodeSession(r *http.Request) (sessionReq, game.Mode, int, error) {
	var req sessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, "", 0, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	m, gens, err := s.resolve(req.Mode, req.Generations)
	return req, m, gens, err
}

func (s *Server) querySession(r *http.Request) (game.Mode, int, error) {
	q := r.URL.Query()
	gens := 0
	if v := q.Get("generations"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return "", 0, fmt.Errorf("%w: generations %q", errBadRequest, v)
		}
		gens = n
	}
	if gens < 0 {
		return "", 0, fmt.Errorf("%w: generations %d", game.ErrBadGenerations, gens)
	}
	return s.resolve(q.Get("mode"), gens)
}

// todayKey is the session key for the requesting player.
func (s *Server) todayKey(r *http.Request, mode game.Mode, generations int) string {
	return game.SessionKey(playerID(r), mode, generations, s.cal.TodayKey())
}

// sessionView is a session as the client sees it. Answer is only filled
// once the session is finished.
type sessionView struct {
	GameID      string         `json:"gameId"`
	Date        string         `json:"date"`
	Mode        game.Mode      `json:"mode"`
	Generations int            `json:"generations"`
	Status      game.Status    `json:"status"`
	MaxGuesses  int            `json:"maxGuesses,omitempty"`
	Guesses     []string       `json:"guesses"`
	Outcomes    []game.Outcome `json:"outcomes"`
	Answer      string         `json:"answer,omitempty"`
	ElapsedMs   int64          `json:"elapsedMs,omitempty"`
	Played      bool           `json:"played"` // a result for this day is already recorded
}

func newSessionView(g *game.Game) sessionView {
	v := sessionView{
		GameID:      g.ID,
		Date:        g.Date,
		Mode:        g.Mode,
		Generations: g.Generations,
		Status:      g.Status,
		MaxGuesses:  g.MaxGuesses,
		Guesses:     g.Guesses,
		Outcomes:    g.Outcomes,
	}
	if g.Finished() {
		v.Answer = g.Target
		v.ElapsedMs = g.Elapsed().Milliseconds()
	}
	return v
}

// -----------------------------------------------------------------------------
// /daily/new

// handleDailyNew creates or reuses today's session for the mode and pool.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	_, mode, gens, err := s.decodeSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	key := s.todayKey(r, mode, gens)
	defer s.locks.lock(key)()

	g, err := s.sessions.Get(r.Context(), key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		g, err = s.svc.NewGame(playerID(r), mode, gens, s.cal.Today())
		if err != nil {
			writeError(w, err)
			return
		}
		if err := s.sessions.Save(r.Context(), g); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("save session")
			writeError(w, err)
			return
		}
		s.metrics.GamesStarted.WithLabelValues(string(mode)).Inc()
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("load session")
		writeError(w, err)
		return
	}

	v := newSessionView(g)
	played, err := s.results.AlreadyPlayed(r.Context(), g.PlayerID, g.Date, string(g.Mode), g.Generations)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("check daily result")
	}
	v.Played = played
	writeJSON(w, http.StatusOK, v)
}

// -----------------------------------------------------------------------------
// /daily/state

func (s *Server) handleDailyState(w http.ResponseWriter, r *http.Request) {
	mode, gens, err := s.querySession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	g, err := s.sessions.Get(r.Context(), s.todayKey(r, mode, gens))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newSessionView(g))
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Outcome *game.Outcome `json:"outcome"`
	Status  game.Status   `json:"status"`
	Guesses int           `json:"guesses"`
	Answer  string        `json:"answer,omitempty"` // once finished
}

// handleDailyGuess validates and applies a guess to today's session.
// Rejected guesses leave the session untouched. A win is recorded in the
// results store (best effort).
func (s *Server) handleDailyGuess(w http.ResponseWriter, r *http.Request) {
	req, mode, gens, err := s.decodeSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	key := s.todayKey(r, mode, gens)
	defer s.locks.lock(key)()

	g, err := s.sessions.Get(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := s.svc.ApplyGuess(g, req.Guess, s.cal.Today())
	if err != nil {
		s.metrics.Guesses.WithLabelValues(string(mode), outcomeRejected).Inc()
		writeError(w, err)
		return
	}
	if err := s.sessions.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, err)
		return
	}

	outcome := outcomeIncorrect
	if out.Correct {
		outcome = outcomeCorrect
	}
	s.metrics.Guesses.WithLabelValues(string(mode), outcome).Inc()

	res := dailyGuessRes{Outcome: out, Status: g.Status, Guesses: len(g.Guesses)}
	if g.Finished() {
		res.Answer = g.Target
	}
	if g.Status == game.StatusWon {
		s.metrics.GamesWon.WithLabelValues(string(mode)).Inc()
		err := s.results.InsertResult(r.Context(), daily.Result{
			PlayerID:    g.PlayerID,
			Date:        g.Date,
			Mode:        string(g.Mode),
			Generations: g.Generations,
			Target:      g.Target,
			Guesses:     len(g.Guesses),
			ElapsedMs:   g.Elapsed().Milliseconds(),
		})
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Str("gameId", g.ID).Msg("insert daily result")
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// /daily/reset

func (s *Server) handleDailyReset(w http.ResponseWriter, r *http.Request) {
	_, mode, gens, err := s.decodeSession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	key := s.todayKey(r, mode, gens)
	unlock := s.locks.lock(key)
	err = s.sessions.Delete(r.Context(), key)
	unlock()
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("delete session")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// -----------------------------------------------------------------------------
// /daily/share

func (s *Server) handleDailyShare(w http.ResponseWriter, r *http.Request) {
	mode, gens, err := s.querySession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	g, err := s.sessions.Get(r.Context(), s.todayKey(r, mode, gens))
	if err != nil {
		writeError(w, err)
		return
	}
	text, err := game.ShareText(g)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// -----------------------------------------------------------------------------
// /daily/yesterday

type yesterdayRes struct {
	Date        string              `json:"date"`
	Mode        game.Mode           `json:"mode"`
	Generations int                 `json:"generations"`
	Name        string              `json:"name"`
	Pokemon     game.GuessedPokemon `json:"pokemon"`
}

func (s *Server) handleDailyYesterday(w http.ResponseWriter, r *http.Request) {
	mode, gens, err := s.querySession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	today := s.cal.Today()
	name := s.svc.SelectPreviousDayName(today, s.svc.DailySalt(mode), gens)
	e, err := s.svc.FindEntityByName(name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, yesterdayRes{
		Date:        daily.DateKey(daily.PreviousDay(today)),
		Mode:        mode,
		Generations: gens,
		Name:        e.Name,
		Pokemon:     s.svc.Formatter().FormatGuessed(e),
	})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date        string        `json:"date"`
	Mode        game.Mode     `json:"mode"`
	Generations int           `json:"generations"`
	Top         []daily.LBRow `json:"top"`
}

// handleDailyLeaderboard returns the leaderboard for the given date (default
// today). Pools are ranked separately.
func (s *Server) handleDailyLeaderboard(w http.ResponseWriter, r *http.Request) {
	mode, gens, err := s.querySession(r)
	if err != nil {
		writeError(w, err)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = s.cal.TodayKey()
	}
	rows, err := s.results.Leaderboard(r.Context(), date, string(mode), gens, leaderboardSize)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("leaderboard")
		writeError(w, err)
		return
	}
	if rows == nil {
		rows = []daily.LBRow{}
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Mode: mode, Generations: gens, Top: rows})
}
