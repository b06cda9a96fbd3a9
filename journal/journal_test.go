package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/ecoring/constellation"
)

func openTemp(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "sub", "journal.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndGet(t *testing.T) {
	j := openTemp(t)
	ctx := context.Background()

	start := time.UnixMilli(1_700_000_000_000)
	s := NewSession(GameConstellation, "sequence", constellation.RingSize, start)
	s.Progress = 2
	s.FinishedAt = start.Add(90 * time.Second)
	s.Connections = []constellation.Connection{
		{Pair: constellation.NewPair(6, 0), Category: constellation.Water},
		{Pair: constellation.NewPair(1, 7), Category: constellation.Water},
	}
	require.NoError(t, j.Record(ctx, s))

	got, err := j.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, GameConstellation, got.Game)
	assert.Equal(t, "sequence", got.Variant)
	assert.Equal(t, 2, got.Progress)
	assert.Equal(t, constellation.RingSize, got.Goal)
	assert.False(t, got.Completed)
	assert.True(t, got.StartedAt.Equal(start))
	assert.True(t, got.FinishedAt.Equal(s.FinishedAt))

	if diff := cmp.Diff(s.Connections, got.Connections); diff != "" {
		t.Errorf("connections (-want +got):\n%s", diff)
	}
}

func TestGetMissing(t *testing.T) {
	j := openTemp(t)

	_, err := j.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	j := openTemp(t)
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000)

	for i := 0; i < 3; i++ {
		s := NewSession(GameSorting, "", 10, base)
		s.Score = i
		s.ImpactKg = float64(i) * 0.5
		s.Completed = i == 2
		s.FinishedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, j.Record(ctx, s))
	}

	list, err := j.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 2, list[0].Score)
	assert.True(t, list[0].Completed)
	assert.Equal(t, 1.0, list[0].ImpactKg)
	assert.Equal(t, 1, list[1].Score)
	assert.Empty(t, list[0].Connections)

	all, err := j.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRecordDuplicateIDFails(t *testing.T) {
	j := openTemp(t)
	ctx := context.Background()

	s := NewSession(GameSorting, "", 10, time.Now())
	s.FinishedAt = time.Now()
	require.NoError(t, j.Record(ctx, s))
	assert.Error(t, j.Record(ctx, s))
}

func TestNewSessionIDsAreUnique(t *testing.T) {
	a := NewSession(GameSorting, "", 10, time.Now())
	b := NewSession(GameSorting, "", 10, time.Now())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
}
