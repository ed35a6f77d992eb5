package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// IntentCount is how often a chat category has been answered. Message text is
// never stored.
type IntentCount struct {
	Category   string    `json:"category"`
	Count      int64     `json:"count"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

func (s *Store) RecordIntent(ctx context.Context, category string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO intent_hits (category, count, last_seen_at) VALUES (?, 1, ?)
		ON CONFLICT (category) DO UPDATE SET
			count = count + 1,
			last_seen_at = excluded.last_seen_at
	`, category, at.Unix())
	return errors.Wrap(err, "record intent")
}

func (s *Store) IntentCounts(ctx context.Context) ([]IntentCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, count, last_seen_at
		FROM intent_hits
		ORDER BY count DESC, category ASC
	`)
	if err != nil {
		return nil, errors.Wrap(err, "query intents")
	}
	defer rows.Close()

	out := []IntentCount{}
	for rows.Next() {
		var c IntentCount
		var seen int64
		if err := rows.Scan(&c.Category, &c.Count, &seen); err != nil {
			return nil, errors.Wrap(err, "scan intent")
		}
		c.LastSeenAt = time.Unix(seen, 0).UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}
