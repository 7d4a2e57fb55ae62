// internal/httpserver/server.go
//
// HTTP server wiring for the Pokedle backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery, timeouts, JSON, CORS).
//   - Anonymous player identity via a signed cookie (see internal/player).
//   - Public endpoints: "/", "/health", "/metrics".
//   - Catalog endpoints: GET /pokemon, GET /pokemon/{name}, POST /guess.
//   - Daily Challenge endpoints: mounted under /daily (routes_daily.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Errors are JSON: {"error": code, "message": text}.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/game"
	"github.com/robalobadob/pokedle/internal/player"
	"github.com/robalobadob/pokedle/internal/store"
)

const (
	playerCookieName = "pokedle_player"
	requestTimeout   = 10 * time.Second
)

// Config holds the dependencies of a Server.
type Config struct {
	Service            *game.Service
	Sessions           store.Store
	Results            *daily.Store
	Players            *player.Issuer
	Calendar           *daily.Calendar // nil: system clock, UTC
	Metrics            *Metrics        // nil: private registry
	ClientOrigin       string          // empty: http://localhost:5173
	SecureCookies      bool
	DefaultGenerations int // 0: every generation in the catalog
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("httpserver: config cannot be nil")
	}
	if c.Service == nil {
		return errors.New("httpserver: game service is required")
	}
	if c.Sessions == nil {
		return errors.New("httpserver: session store is required")
	}
	if c.Results == nil {
		return errors.New("httpserver: results store is required")
	}
	if c.Players == nil {
		return errors.New("httpserver: player issuer is required")
	}
	return nil
}

// Server bundles the router and the game dependencies.
type Server struct {
	r        *chi.Mux
	svc      *game.Service
	sessions store.Store
	results  *daily.Store
	players  *player.Issuer
	cal      *daily.Calendar
	metrics  *Metrics
	origin   string
	secure   bool
	defGens  int
	locks    keyLocks
}

// keyLocks serializes read-modify-write of one session key without
// blocking unrelated players.
type keyLocks [64]sync.Mutex

func (l *keyLocks) stripe(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &l[h.Sum32()%uint32(len(l))]
}

// lock acquires key's stripe and returns its unlock.
func (l *keyLocks) lock(key string) func() {
	m := l.stripe(key)
	m.Lock()
	return m.Unlock
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		r:        chi.NewRouter(),
		svc:      cfg.Service,
		sessions: cfg.Sessions,
		results:  cfg.Results,
		players:  cfg.Players,
		cal:      cfg.Calendar,
		metrics:  cfg.Metrics,
		origin:   cfg.ClientOrigin,
		secure:   cfg.SecureCookies,
		defGens:  cfg.DefaultGenerations,
	}
	if s.cal == nil {
		s.cal = daily.NewCalendar(nil, nil)
	}
	if s.metrics == nil {
		m, err := NewMetrics(nil)
		if err != nil {
			return nil, err
		}
		s.metrics = m
	}
	if s.origin == "" {
		s.origin = "http://localhost:5173"
	}
	if s.defGens <= 0 || s.defGens > s.svc.Catalog().MaxGeneration() {
		s.defGens = s.svc.Catalog().MaxGeneration()
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(accessLog)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(requestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "pokedle",
			"endpoints": []string{"/health", "/metrics", "/pokemon", "POST /guess", "/daily/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	// Catalog and stateless comparison
	s.mountPokemon(s.r)

	// Daily Challenge; every route needs a player
	s.r.Group(func(r chi.Router) {
		r.Use(s.withPlayer)
		s.mountDaily(r)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Handler exposes the router as an http.Handler.
func (s *Server) Handler() http.Handler { return s.r }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

// accessLog writes one line per request through the request-scoped logger.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	lvl := zerolog.DebugLevel
	if status >= http.StatusInternalServerError {
		lvl = zerolog.WarnLevel
	}
	hlog.FromRequest(r).WithLevel(lvl).
		Str("reqId", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- players -----------------------------------

type ctxPlayerKey struct{}

// withPlayer resolves the player from a bearer token or the player cookie,
// minting a new anonymous identity when neither is valid.
func (s *Server) withPlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if tok := bearerOrCookie(r); tok != "" {
			if pid, err := s.players.Verify(tok); err == nil {
				id = pid
			} else {
				hlog.FromRequest(r).Debug().Err(err).Msg("discarding player token")
			}
		}
		if id == "" {
			id = player.NewID()
			tok, exp, err := s.players.Issue(id)
			if err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("issue player token")
				writeError(w, err)
				return
			}
			s.setPlayerCookie(w, tok, exp)
		}
		ctx := context.WithValue(r.Context(), ctxPlayerKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// playerID returns the player attached by withPlayer.
func playerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxPlayerKey{}).(string)
	return id
}

// setPlayerCookie writes the identity cookie with appropriate security attributes.
func (s *Server) setPlayerCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the player cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(playerCookieName); err == nil {
		return c.Value
	}
	return ""
}

// ------------------------------- responses ---------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

type errorRes struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// statusFor maps domain errors to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "no_session"
	case errors.Is(err, game.ErrEntityNotFound):
		return http.StatusUnprocessableEntity, "unknown_pokemon"
	case errors.Is(err, game.ErrOutOfPool):
		return http.StatusUnprocessableEntity, "out_of_pool"
	case errors.Is(err, game.ErrAlreadyGuessed):
		return http.StatusConflict, "already_guessed"
	case errors.Is(err, game.ErrGameFinished):
		return http.StatusConflict, "game_finished"
	case errors.Is(err, game.ErrGameInProgress):
		return http.StatusConflict, "game_in_progress"
	case errors.Is(err, game.ErrUnknownMode), errors.Is(err, game.ErrBadGenerations), errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "bad_request"
	}
	return http.StatusInternalServerError, "internal"
}

var errBadRequest = errors.New("bad request")

// writeError renders err. Internal errors keep their text out of the response.
func writeError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	res := errorRes{Error: code}
	if status != http.StatusInternalServerError {
		res.Message = err.Error()
	}
	writeJSON(w, status, res)
}
