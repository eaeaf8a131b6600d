package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// WatchlistEntry is a discovery show saved for later.
type WatchlistEntry struct {
	ShowID       int64
	Name         string
	Overview     string
	Poster       string
	FirstAirDate string
	VoteAverage  *float64
	TVDBID       *int64
	AddedAt      time.Time
}

// AddToWatchlist saves an entry. Adding a show twice refreshes its details
// but keeps the original AddedAt.
func (s *Store) AddToWatchlist(ctx context.Context, e WatchlistEntry) error {
	var vote sql.NullFloat64
	if e.VoteAverage != nil {
		vote = sql.NullFloat64{Float64: *e.VoteAverage, Valid: true}
	}
	var tvdb sql.NullInt64
	if e.TVDBID != nil {
		tvdb = sql.NullInt64{Int64: *e.TVDBID, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO watchlist (show_id, name, overview, poster, first_air_date, vote_average, tvdb_id, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(show_id) DO UPDATE SET
			name = excluded.name,
			overview = excluded.overview,
			poster = excluded.poster,
			first_air_date = excluded.first_air_date,
			vote_average = excluded.vote_average,
			tvdb_id = excluded.tvdb_id`,
		e.ShowID, e.Name, e.Overview, e.Poster, e.FirstAirDate, vote, tvdb, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("add %q to watchlist: %w", e.Name, err)
	}
	return nil
}

// RemoveFromWatchlist deletes an entry. Returns ErrNotFound if absent.
func (s *Store) RemoveFromWatchlist(ctx context.Context, showID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM watchlist WHERE show_id = ?`, showID)
	if err != nil {
		return fmt.Errorf("remove %d from watchlist: %w", showID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove %d from watchlist: %w", showID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Watchlist returns every entry, oldest first.
func (s *Store) Watchlist(ctx context.Context) ([]WatchlistEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT show_id, name, overview, poster, first_air_date, vote_average, tvdb_id, added_at
		FROM watchlist
		ORDER BY added_at ASC, show_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query watchlist: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []WatchlistEntry{}
	for rows.Next() {
		var e WatchlistEntry
		var vote sql.NullFloat64
		var tvdb sql.NullInt64
		if err := rows.Scan(&e.ShowID, &e.Name, &e.Overview, &e.Poster, &e.FirstAirDate, &vote, &tvdb, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scan watchlist entry: %w", err)
		}
		if vote.Valid {
			v := vote.Float64
			e.VoteAverage = &v
		}
		if tvdb.Valid {
			id := tvdb.Int64
			e.TVDBID = &id
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
