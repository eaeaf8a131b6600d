package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Credentials is the saved library server session.
type Credentials struct {
	BaseURL   string
	APIKey    string
	UpdatedAt time.Time
}

// SaveCredentials replaces the saved session.
func (s *Store) SaveCredentials(ctx context.Context, baseURL, apiKey string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (id, base_url, api_key, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			base_url = excluded.base_url,
			api_key = excluded.api_key,
			updated_at = excluded.updated_at`,
		baseURL, apiKey, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// Credentials returns the saved session, or ErrNotFound.
func (s *Store) Credentials(ctx context.Context) (*Credentials, error) {
	var c Credentials
	err := s.db.QueryRowContext(ctx,
		`SELECT base_url, api_key, updated_at FROM credentials WHERE id = 1`,
	).Scan(&c.BaseURL, &c.APIKey, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	return &c, nil
}

// ClearCredentials forgets the saved session.
func (s *Store) ClearCredentials(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
