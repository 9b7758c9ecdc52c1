// services/content.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
)

// MediaCleaner removes a stored media file by its public URL. Removal is
// best effort; a missing file is not an error.
type MediaCleaner interface {
	RemoveByURL(url string) error
}

// NewPost carries the already-persisted upload a post is created from.
type NewPost struct {
	MediaURL     string
	MediaType    string
	MimeType     string
	ThumbnailURL string
	Caption      string
	Size         int64
}

// ContentService creates and deletes posts, including the new_post
// fan-out to followers and the like/comment cascade on delete.
type ContentService struct {
	posts         repositories.PostRepository
	likes         repositories.LikeRepository
	comments      repositories.CommentRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository
	media         MediaCleaner
}

func NewContentService(store *repositories.Store, media MediaCleaner) *ContentService {
	return &ContentService{
		posts:         store.Posts,
		likes:         store.Likes,
		comments:      store.Comments,
		follows:       store.Follows,
		notifications: store.Notifications,
		media:         media,
	}
}

// CreatePost stores the post and fans out a new_post notification to
// every current follower of the author (fan-out-on-write).
func (s *ContentService) CreatePost(ctx context.Context, userID string, upload NewPost) (*models.Post, error) {
	post := &models.Post{
		ID:           uuid.NewString(),
		UserID:       userID,
		MediaURL:     upload.MediaURL,
		MediaType:    upload.MediaType,
		MimeType:     upload.MimeType,
		ThumbnailURL: upload.ThumbnailURL,
		Caption:      upload.Caption,
		Size:         upload.Size,
		Timestamp:    time.Now(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	followers, err := s.follows.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, f := range followers {
		notification := &models.Notification{
			ID:         uuid.NewString(),
			UserID:     f.FollowerID,
			Type:       models.NotifNewPost,
			FromUserID: userID,
			PostID:     post.ID,
			Timestamp:  time.Now(),
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			return nil, err
		}
	}
	return post, nil
}

// DeletePost removes the post, its media file, and every like and
// comment attached to it. A missing post or a non-owner requester is a
// silent no-op. The store has no cross-collection atomicity; a partial
// failure leaves orphans, which projections tolerate by substituting
// placeholders.
func (s *ContentService) DeletePost(ctx context.Context, postID, requesterID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || post.UserID != requesterID {
		return nil
	}

	if s.media != nil {
		if err := s.media.RemoveByURL(post.MediaURL); err != nil {
			log.Printf("Error removing media for post %s: %v", post.ID, err)
		}
		if post.ThumbnailURL != "" {
			if err := s.media.RemoveByURL(post.ThumbnailURL); err != nil {
				log.Printf("Error removing thumbnail for post %s: %v", post.ID, err)
			}
		}
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}
	if err := s.likes.DeleteByPost(ctx, postID); err != nil {
		return err
	}
	return s.comments.DeleteByPost(ctx, postID)
}
