package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")

	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestVisitorsAndCleanup(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-400 * 24 * time.Hour)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "bbb", Path: "/privacy", UserAgent: "curl", Timestamp: now.Add(-time.Hour)}))

	visits, err := s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 3)
	assert.Equal(t, "bbb", visits[0].HashedIP)
	assert.Equal(t, "curl", visits[0].UserAgent)
	assert.True(t, visits[0].Timestamp.Equal(now.Add(-time.Hour)))

	removed, err := s.CleanupVisitors(ctx, now.Add(-365*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	visits, err = s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, visits, 2)
}

func TestContacts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	msg := ContactMessage{
		ID:        "c1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Subject:   "Hi",
		Message:   "Let's talk",
		Status:    ContactPending,
		CreatedAt: created,
	}
	require.NoError(t, s.SaveContact(ctx, msg))
	require.NoError(t, s.UpdateContactStatus(ctx, "c1", ContactSent))

	err := s.UpdateContactStatus(ctx, "missing", ContactSent)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.RecentContacts(ctx, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	msg.Status = ContactSent
	assert.Equal(t, msg, got[0])
}

func TestEmptyListsAreNotNil(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	contacts, err := s.RecentContacts(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)

	counts, err := s.IntentCounts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, counts)
	assert.Empty(t, counts)
}

func TestRecordIntentCounts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	t0 := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordIntent(ctx, "skills", t0))
	require.NoError(t, s.RecordIntent(ctx, "projects", t0))
	require.NoError(t, s.RecordIntent(ctx, "skills", t0.Add(time.Minute)))

	counts, err := s.IntentCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "skills", counts[0].Category)
	assert.Equal(t, int64(2), counts[0].Count)
	assert.True(t, counts[0].LastSeenAt.Equal(t0.Add(time.Minute)))
	assert.Equal(t, "projects", counts[1].Category)
	assert.Equal(t, int64(1), counts[1].Count)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "a", Timestamp: now.Add(-time.Hour)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "a", Timestamp: now.Add(-13 * time.Hour)}))
	require.NoError(t, s.RecordVisit(ctx, Visit{HashedIP: "b", Timestamp: now.Add(-30 * 24 * time.Hour)}))
	require.NoError(t, s.SaveContact(ctx, ContactMessage{ID: "1", Name: "n", Email: "e@x", Message: "m", Status: ContactSent, CreatedAt: now}))
	require.NoError(t, s.SaveContact(ctx, ContactMessage{ID: "2", Name: "n", Email: "e@x", Message: "m", Status: ContactFailed, CreatedAt: now}))
	require.NoError(t, s.RecordIntent(ctx, "default", now))

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalVisitors)
	assert.Equal(t, int64(2), stats.UniqueVisitors)
	assert.Equal(t, int64(1), stats.VisitorsToday)
	assert.Equal(t, int64(2), stats.VisitorsThisWeek)
	assert.Equal(t, int64(2), stats.TotalContacts)
	assert.Equal(t, map[string]int64{ContactSent: 1, ContactFailed: 1}, stats.ContactsByStatus)
	require.Len(t, stats.IntentHits, 1)
	assert.Len(t, stats.RecentVisitors, 3)
}
