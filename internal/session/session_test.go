package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/duynguyendang/gitguide/pkg/common/errors"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(nil)
}

func TestSession_PreferenceOrderAndDedup(t *testing.T) {
	mgr := newTestManager(t)
	sess, err := mgr.Create(context.Background())
	require.NoError(t, err)

	sess.AddLanguages("python", "go")
	sess.AddLanguages("go", "rust")
	assert.Equal(t, []string{"python", "go", "rust"}, sess.Languages())

	sess.AddInterests("web")
	sess.AddInterests("web", "ai")
	assert.Equal(t, []string{"web", "ai"}, sess.Interests())
}

func TestSession_RecentReposBounded(t *testing.T) {
	mgr := newTestManager(t)
	sess, err := mgr.Create(context.Background())
	require.NoError(t, err)

	for i := 1; i <= 11; i++ {
		sess.TrackRepo(fmt.Sprintf("owner/repo%d", i))
	}

	repos := sess.RecentRepos()
	require.Len(t, repos, 10)
	// Oldest evicted first: repo1 is gone, repo2..repo11 remain in order.
	assert.Equal(t, "owner/repo2", repos[0])
	assert.Equal(t, "owner/repo11", repos[9])
	assert.Equal(t, "owner/repo11", sess.LastRepo())

	// Re-tracking a known repository neither duplicates nor reorders.
	sess.TrackRepo("owner/repo5")
	assert.Len(t, sess.RecentRepos(), 10)
	assert.Equal(t, "owner/repo11", sess.LastRepo())
}

func TestSession_HistoryBounded(t *testing.T) {
	mgr := newTestManager(t)
	sess, err := mgr.Create(context.Background())
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		sess.AddTurn(fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	history := sess.History()
	require.Len(t, history, 10)
	assert.Equal(t, "q2", history[0].Question)
	assert.Equal(t, "a11", history[9].Answer)
}

func TestManager_Lifecycle(t *testing.T) {
	mgr := newTestManager(t)

	sess, err := mgr.Create(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID())
	assert.Positive(t, sess.Knowledge().Len(), "knowledge index is seeded at creation")

	got, err := mgr.Get(sess.ID())
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = mgr.Get("unknown-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	mgr.Remove(sess.ID())
	_, err = mgr.Get(sess.ID())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestManager_Reset(t *testing.T) {
	mgr := newTestManager(t)

	sess, err := mgr.Create(context.Background())
	require.NoError(t, err)
	id := sess.ID()

	sess.AddLanguages("python")
	sess.AddInterests("web")
	sess.TrackRepo("a/b")
	sess.AddTurn("q", "a")

	require.NoError(t, mgr.Reset(context.Background(), id))

	fresh, err := mgr.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, fresh.ID())
	assert.NotSame(t, sess, fresh)
	assert.Empty(t, fresh.Languages())
	assert.Empty(t, fresh.Interests())
	assert.Empty(t, fresh.RecentRepos())
	assert.Empty(t, fresh.History())
	assert.Positive(t, fresh.Knowledge().Len(), "index is re-seeded on reset")

	assert.ErrorIs(t, mgr.Reset(context.Background(), "unknown-id"), apperrors.ErrNotFound)
}
