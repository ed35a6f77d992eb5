package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/Zachkp/folio/internal/config"
)

func TestStartPrunesExpiredVisitors(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "boot.db")
	now := time.Now()

	seed, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, seed.RecordVisit(ctx, Visit{HashedIP: "old", Path: "/", Timestamp: now.Add(-48 * time.Hour)}))
	require.NoError(t, seed.RecordVisit(ctx, Visit{HashedIP: "new", Path: "/", Timestamp: now.Add(-time.Hour)}))
	require.NoError(t, seed.Close())

	lc := fxtest.NewLifecycle(t)
	s, err := New(lc, Params{
		Config: &config.Config{DatabasePath: path, VisitorRetention: 24 * time.Hour},
		Logger: zerolog.Nop(),
	})
	require.NoError(t, err)

	lc.RequireStart()
	visits, err := s.RecentVisits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "new", visits[0].HashedIP)

	lc.RequireStop()
	assert.Error(t, s.Ping(ctx), "database should be closed after stop")
}
