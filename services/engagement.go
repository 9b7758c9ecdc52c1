// services/engagement.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
)

// EngagementService owns likes and comments and their notification
// side effects.
type EngagementService struct {
	posts         repositories.PostRepository
	likes         repositories.LikeRepository
	comments      repositories.CommentRepository
	notifications repositories.NotificationRepository
}

func NewEngagementService(store *repositories.Store) *EngagementService {
	return &EngagementService{
		posts:         store.Posts,
		likes:         store.Likes,
		comments:      store.Comments,
		notifications: store.Notifications,
	}
}

// ToggleLike creates the like if absent, removes it if present. A like
// notification is queued only on creation and only when the liker is
// not the post owner. The returned count is read after the mutation.
func (s *EngagementService) ToggleLike(ctx context.Context, postID, userID string) (*models.ToggleLikeResult, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &NotFoundError{Message: "Post not found"}
	}

	existing, err := s.likes.Find(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.likes.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
	} else {
		like := &models.Like{
			ID:        uuid.NewString(),
			PostID:    postID,
			UserID:    userID,
			Timestamp: time.Now(),
		}
		if err := s.likes.Create(ctx, like); err != nil {
			return nil, err
		}
		if post.UserID != userID {
			notification := &models.Notification{
				ID:         uuid.NewString(),
				UserID:     post.UserID,
				Type:       models.NotifLike,
				FromUserID: userID,
				PostID:     post.ID,
				Timestamp:  time.Now(),
			}
			if err := s.notifications.Create(ctx, notification); err != nil {
				return nil, err
			}
		}
	}

	count, err := s.likes.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &models.ToggleLikeResult{Liked: existing == nil, LikeCount: count}, nil
}

// AddComment stores a trimmed, non-empty comment and notifies the post
// owner unless they commented on their own post.
func (s *EngagementService) AddComment(ctx context.Context, postID, userID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Message: "Comment cannot be empty"}
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &NotFoundError{Message: "Post not found"}
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		Timestamp: time.Now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	if post.UserID != userID {
		notification := &models.Notification{
			ID:         uuid.NewString(),
			UserID:     post.UserID,
			Type:       models.NotifComment,
			FromUserID: userID,
			PostID:     post.ID,
			CommentID:  comment.ID,
			Timestamp:  time.Now(),
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			return nil, err
		}
	}
	return comment, nil
}

// DeleteComment removes the comment when the requester is its author or
// the parent post's owner. When the parent post is already gone only
// the author check applies. Returns whether anything was removed.
func (s *EngagementService) DeleteComment(ctx context.Context, commentID, requesterID string) (bool, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, nil
	}

	post, err := s.posts.FindByID(ctx, comment.PostID)
	if err != nil {
		return false, err
	}

	if comment.UserID == requesterID || (post != nil && post.UserID == requesterID) {
		if err := s.comments.Delete(ctx, commentID); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
