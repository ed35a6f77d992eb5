package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type Stats struct {
	TotalVisitors    int64            `json:"total_visitors"`
	UniqueVisitors   int64            `json:"unique_visitors"`
	VisitorsToday    int64            `json:"visitors_today"`
	VisitorsThisWeek int64            `json:"visitors_this_week"`
	TotalContacts    int64            `json:"total_contacts"`
	ContactsByStatus map[string]int64 `json:"contacts_by_status"`
	IntentHits       []IntentCount    `json:"intent_hits"`
	RecentVisitors   []Visit          `json:"recent_visitors"`
}

// Stats gathers the admin dashboard numbers relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{ContactsByStatus: map[string]int64{}}

	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{weekAgo.Unix()}},
		{&stats.TotalContacts, `SELECT COUNT(*) FROM contact_messages`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, errors.Wrap(err, "count")
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM contact_messages GROUP BY status`)
	if err != nil {
		return nil, errors.Wrap(err, "count contacts by status")
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, errors.Wrap(err, "scan contact status")
		}
		stats.ContactsByStatus[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if stats.IntentHits, err = s.IntentCounts(ctx); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisits(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}
