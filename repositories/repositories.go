// repositories/repositories.go
//
// Typed repositories, one per collection. Every Find* method returns
// (nil, nil) when no document matches; callers decide whether a missing
// reference is an error or a placeholder. List* methods return the
// documents already ordered the way the views consume them.
package repositories

import (
	"context"

	"github.com/lumen-social/lumen/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateBio(ctx context.Context, id, bio string) error
	UpdatePassword(ctx context.Context, id, hash string) error
	UpdateAvatar(ctx context.Context, id, avatar string) error
	SearchByUsername(ctx context.Context, query string) ([]models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	// ListAll returns every post, newest first.
	ListAll(ctx context.Context) ([]models.Post, error)
	// ListByUser returns one user's posts, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Post, error)
	Delete(ctx context.Context, id string) error
	// SearchByCaption matches captions case-insensitively, newest first.
	SearchByCaption(ctx context.Context, query string) ([]models.Post, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) error
	Find(ctx context.Context, postID, userID string) (*models.Like, error)
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) error
	ListByPost(ctx context.Context, postID string) ([]models.Like, error)
	CountByPost(ctx context.Context, postID string) (int, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	// ListByPost returns a post's comments, oldest first.
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	CountByPost(ctx context.Context, postID string) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) error
}

type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Find(ctx context.Context, followerID, followingID string) (*models.Follow, error)
	Delete(ctx context.Context, id string) error
	// ListFollowers returns edges pointing at userID.
	ListFollowers(ctx context.Context, userID string) ([]models.Follow, error)
	// ListFollowing returns edges originating from userID.
	ListFollowing(ctx context.Context, userID string) ([]models.Follow, error)
	CountFollowers(ctx context.Context, userID string) (int, error)
	CountFollowing(ctx context.Context, userID string) (int, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	// ListByUser returns the recipient's notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	DeleteByUser(ctx context.Context, userID string) error
}

// Store bundles every repository behind one handle so services and
// controllers receive a single injected dependency.
type Store struct {
	Users         UserRepository
	Posts         PostRepository
	Likes         LikeRepository
	Comments      CommentRepository
	Follows       FollowRepository
	Notifications NotificationRepository
}
