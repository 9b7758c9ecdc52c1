// services/relationship_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-social/lumen/models"
)

func TestToggleFollowCreatesAndRemovesEdge(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	ctx := context.Background()

	result, err := env.relationships.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, result.Following)
	assert.Equal(t, 1, result.FollowersCount)
	assert.Equal(t, 1, result.FollowingCount)

	// Toggling again removes the edge and restores the counts.
	result, err = env.relationships.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, result.Following)
	assert.Equal(t, 0, result.FollowersCount)
	assert.Equal(t, 0, result.FollowingCount)
}

func TestToggleFollowNotifiesOnlyOnCreation(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	ctx := context.Background()

	_, err := env.relationships.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.relationships.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = env.relationships.ToggleFollow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	// Two creations, one removal: two follow notifications, none retracted.
	notifications, err := env.store.Notifications.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Equal(t, models.NotifFollow, n.Type)
		assert.Equal(t, alice.ID, n.FromUserID)
	}
}

func TestToggleFollowRejectsBadTargets(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	ctx := context.Background()

	for _, target := range []string{"", "undefined", "null", "back", alice.ID} {
		_, err := env.relationships.ToggleFollow(ctx, alice.ID, target)
		var validation *ValidationError
		require.ErrorAs(t, err, &validation, "target %q", target)
	}

	_, err := env.relationships.ToggleFollow(ctx, alice.ID, "no-such-user")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestFollowListsCarryViewerState(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")
	ctx := context.Background()

	// bob and carol follow alice; bob also follows carol.
	_, err := env.relationships.ToggleFollow(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.relationships.ToggleFollow(ctx, carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = env.relationships.ToggleFollow(ctx, bob.ID, carol.ID)
	require.NoError(t, err)

	followers, err := env.relationships.FollowersOf(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	byName := map[string]models.FollowListEntry{}
	for _, entry := range followers {
		byName[entry.Username] = entry
	}
	assert.False(t, byName["bob"].FollowedByViewer)
	assert.True(t, byName["carol"].FollowedByViewer)

	following, err := env.relationships.FollowingOf(ctx, bob.ID, "")
	require.NoError(t, err)
	require.Len(t, following, 2)
	for _, entry := range following {
		assert.False(t, entry.FollowedByViewer)
	}
}

func TestIsFollowingAnonymousViewer(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")

	following, err := env.relationships.IsFollowing(context.Background(), "", alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
}
