// services/notification.go
package services

import (
	"context"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
)

// NotificationService reads and maintains the per-recipient event log.
type NotificationService struct {
	users         repositories.UserRepository
	posts         repositories.PostRepository
	notifications repositories.NotificationRepository
}

func NewNotificationService(store *repositories.Store) *NotificationService {
	return &NotificationService{
		users:         store.Users,
		posts:         store.Posts,
		notifications: store.Notifications,
	}
}

// ListFor returns the recipient's notifications newest first, each
// enriched with the sender snapshot and the referenced post when it
// still exists. Listing flips every unread notification to read, after
// the views were built, so the page still shows which ones were new.
// Two concurrent listings may both observe unread and both flip; the
// store has no compare-and-swap and at-least-once marking is accepted.
func (s *NotificationService) ListFor(ctx context.Context, userID string) ([]models.NotificationView, error) {
	notifications, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.NotificationView, 0, len(notifications))
	for _, n := range notifications {
		view := models.NotificationView{Notification: n}

		fromUser, err := s.users.FindByID(ctx, n.FromUserID)
		if err != nil {
			return nil, err
		}
		if fromUser == nil {
			fromUser = models.PlaceholderUser()
		}
		view.FromUser = fromUser

		if n.PostID != "" {
			post, err := s.posts.FindByID(ctx, n.PostID)
			if err != nil {
				return nil, err
			}
			view.Post = post
		}
		views = append(views, view)
	}

	if err := s.notifications.MarkAllRead(ctx, userID); err != nil {
		return nil, err
	}
	return views, nil
}

// ClearAll removes every notification addressed to userID.
func (s *NotificationService) ClearAll(ctx context.Context, userID string) error {
	return s.notifications.DeleteByUser(ctx, userID)
}
