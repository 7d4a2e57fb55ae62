package daily

import (
	"context"
	"database/sql"
)

// Result is one player's solved daily puzzle.
type Result struct {
	PlayerID    string `json:"playerId"`
	Date        string `json:"date"`
	Mode        string `json:"mode"`
	Generations int    `json:"generations"`
	Target      string `json:"target"`
	Guesses     int    `json:"guesses"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Store persists daily results in the daily_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the player has a recorded result for the
// date, mode and generation pool.
func (s *Store) AlreadyPlayed(ctx context.Context, playerID, date, mode string, generations int) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results
		WHERE player_id=? AND date=? AND mode=? AND generations=?`,
		playerID, date, mode, generations,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a result. A second result for the same
// player/date/mode/pool is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results
			(player_id, date, mode, generations, target, guesses, elapsed_ms)
		VALUES (?,?,?,?,?,?,?)`,
		r.PlayerID, r.Date, r.Mode, r.Generations, r.Target, r.Guesses, r.ElapsedMs,
	)
	return err
}

// LBRow is a leaderboard entry.
type LBRow struct {
	PlayerID    string `json:"playerId"`
	Generations int    `json:"generations"`
	Guesses     int    `json:"guesses"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Leaderboard returns the best results for a date, mode and generation pool:
// fewest guesses first, then fastest, then earliest. limit <= 0 means 20.
func (s *Store) Leaderboard(ctx context.Context, date, mode string, generations, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, generations, guesses, elapsed_ms
		FROM daily_results
		WHERE date=? AND mode=? AND generations=?
		ORDER BY guesses ASC, elapsed_ms ASC, created_at ASC
		LIMIT ?`, date, mode, generations, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.PlayerID, &r.Generations, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
