package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s, ctx
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestEnsureDefaultProject(t *testing.T) {
	s, ctx := openTestStore(t)

	id, err := s.EnsureDefaultProject(ctx)
	require.NoError(t, err)
	require.Positive(t, id)

	again, err := s.EnsureDefaultProject(ctx)
	require.NoError(t, err)
	require.Equal(t, id, again)

	projects, err := s.GetProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, DefaultProjectSlug, projects[0].Slug)
}

func TestViewStateRoundTrip(t *testing.T) {
	s, ctx := openTestStore(t)

	if _, ok := s.LoadViewState(ctx); ok {
		t.Fatal("fresh store should have no view state")
	}

	want := ViewState{ZoomScale: 2.5, ScrollLeft: 4321.5, ScrollTop: 17}
	require.NoError(t, s.SaveViewState(ctx, want))

	got, ok := s.LoadViewState(ctx)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestSettingUpsert(t *testing.T) {
	s, ctx := openTestStore(t)

	require.NoError(t, s.SetSetting(ctx, "theme", "default"))
	require.NoError(t, s.SetSetting(ctx, "theme", "dark"))

	v, ok := s.GetSetting(ctx, "theme")
	require.True(t, ok)
	require.Equal(t, "dark", v)
}
