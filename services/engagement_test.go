// services/engagement_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-social/lumen/models"
)

func TestToggleLikeCreatesAndRemoves(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	post := env.post(t, alice.ID, "sunset")
	ctx := context.Background()

	result, err := env.engagement.ToggleLike(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.Equal(t, 1, result.LikeCount)

	result, err = env.engagement.ToggleLike(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, result.Liked)
	assert.Equal(t, 0, result.LikeCount)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")

	_, err := env.engagement.ToggleLike(context.Background(), "no-such-post", alice.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestLikeNotificationSkipsOwnPost(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	post := env.post(t, alice.ID, "sunset")
	ctx := context.Background()

	_, err := env.engagement.ToggleLike(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	notifications, err := env.store.Notifications.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	_, err = env.engagement.ToggleLike(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	notifications, err = env.store.Notifications.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifLike, notifications[0].Type)
	assert.Equal(t, bob.ID, notifications[0].FromUserID)
	assert.Equal(t, post.ID, notifications[0].PostID)
}

func TestAddCommentTrimsAndValidates(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	post := env.post(t, alice.ID, "sunset")
	ctx := context.Background()

	comment, err := env.engagement.AddComment(ctx, post.ID, bob.ID, "  nice shot  ")
	require.NoError(t, err)
	assert.Equal(t, "nice shot", comment.Text)

	_, err = env.engagement.AddComment(ctx, post.ID, bob.ID, "   ")
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = env.engagement.AddComment(ctx, "no-such-post", bob.ID, "hello")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestCommentNotificationCarriesCommentID(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	post := env.post(t, alice.ID, "sunset")
	ctx := context.Background()

	// Commenting on your own post stays silent.
	_, err := env.engagement.AddComment(ctx, post.ID, alice.ID, "first")
	require.NoError(t, err)
	notifications, err := env.store.Notifications.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	comment, err := env.engagement.AddComment(ctx, post.ID, bob.ID, "great light")
	require.NoError(t, err)
	notifications, err = env.store.Notifications.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotifComment, notifications[0].Type)
	assert.Equal(t, comment.ID, notifications[0].CommentID)
	assert.Equal(t, post.ID, notifications[0].PostID)
}

func TestDeleteCommentPermissions(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	carol := env.register(t, "carol")
	post := env.post(t, alice.ID, "sunset")
	ctx := context.Background()

	comment, err := env.engagement.AddComment(ctx, post.ID, bob.ID, "hello")
	require.NoError(t, err)

	// A bystander cannot delete it.
	deleted, err := env.engagement.DeleteComment(ctx, comment.ID, carol.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// The author can.
	deleted, err = env.engagement.DeleteComment(ctx, comment.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The post owner can delete someone else's comment.
	comment, err = env.engagement.AddComment(ctx, post.ID, bob.ID, "again")
	require.NoError(t, err)
	deleted, err = env.engagement.DeleteComment(ctx, comment.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// A missing comment is reported as not deleted, not as an error.
	deleted, err = env.engagement.DeleteComment(ctx, "no-such-comment", alice.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteOrphanedCommentAuthorOnly(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	post := env.post(t, alice.ID, "sunset")
	ctx := context.Background()

	comment, err := env.engagement.AddComment(ctx, post.ID, bob.ID, "hello")
	require.NoError(t, err)

	// Remove the parent post directly, leaving the comment dangling.
	require.NoError(t, env.store.Posts.Delete(ctx, post.ID))

	// The previous post owner no longer counts as owner.
	deleted, err := env.engagement.DeleteComment(ctx, comment.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = env.engagement.DeleteComment(ctx, comment.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
