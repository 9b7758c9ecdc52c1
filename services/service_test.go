// services/service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
)

// testEnv wires every service over a fresh in-memory store.
type testEnv struct {
	store         *repositories.Store
	identity      *IdentityService
	relationships *RelationshipService
	content       *ContentService
	engagement    *EngagementService
	notifications *NotificationService
	projections   *ProjectionService
}

func newTestEnv() *testEnv {
	store := repositories.NewMemoryStore()
	relationships := NewRelationshipService(store)
	return &testEnv{
		store:         store,
		identity:      NewIdentityService(store),
		relationships: relationships,
		content:       NewContentService(store, nil),
		engagement:    NewEngagementService(store),
		notifications: NewNotificationService(store),
		projections:   NewProjectionService(store, relationships),
	}
}

func (e *testEnv) register(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.identity.Register(context.Background(), models.RegisterRequest{
		Username:        username,
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func (e *testEnv) post(t *testing.T, userID, caption string) *models.Post {
	t.Helper()
	post, err := e.content.CreatePost(context.Background(), userID, NewPost{
		MediaURL:  "/uploads/" + caption + ".jpg",
		MediaType: models.MediaImage,
		MimeType:  "image/jpeg",
		Caption:   caption,
	})
	require.NoError(t, err)
	return post
}
