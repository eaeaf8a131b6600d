package settings

import (
	"context"
	"fmt"
)

// SetNotifications records whether reminders are wanted for a series.
func (s *Store) SetNotifications(ctx context.Context, seriesID int64, enabled bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notification_prefs (series_id, enabled, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(series_id) DO UPDATE SET
			enabled = excluded.enabled,
			updated_at = excluded.updated_at`,
		seriesID, enabled, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set notifications for series %d: %w", seriesID, err)
	}
	return nil
}

// NotificationPrefs returns the ids of every series with reminders on.
func (s *Store) NotificationPrefs(ctx context.Context) (map[int64]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT series_id FROM notification_prefs WHERE enabled = 1 ORDER BY series_id`)
	if err != nil {
		return nil, fmt.Errorf("query notification prefs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	prefs := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan notification pref: %w", err)
		}
		prefs[id] = true
	}
	return prefs, rows.Err()
}
