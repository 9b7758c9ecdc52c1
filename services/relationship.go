// services/relationship.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
)

// RelationshipService owns the follow graph and its derived counts.
type RelationshipService struct {
	users         repositories.UserRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository
}

func NewRelationshipService(store *repositories.Store) *RelationshipService {
	return &RelationshipService{
		users:         store.Users,
		follows:       store.Follows,
		notifications: store.Notifications,
	}
}

// ToggleFollow creates the follower->target edge if absent, removes it
// if present. A follow notification is queued only on edge creation.
// Counts are re-read after the mutation so the caller always sees
// read-after-write values.
func (s *RelationshipService) ToggleFollow(ctx context.Context, followerID, targetID string) (*models.ToggleFollowResult, error) {
	targetID = strings.TrimSpace(targetID)
	// Values the browser sends when a template interpolation went wrong.
	if targetID == "" || targetID == "undefined" || targetID == "null" || targetID == "back" {
		return nil, &ValidationError{Message: "Invalid user ID"}
	}
	if targetID == followerID {
		return nil, &ValidationError{Message: "Cannot follow yourself"}
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, &NotFoundError{Message: "User not found"}
	}

	existing, err := s.follows.Find(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.follows.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
	} else {
		follow := &models.Follow{
			ID:          uuid.NewString(),
			FollowerID:  followerID,
			FollowingID: targetID,
			Timestamp:   time.Now(),
		}
		if err := s.follows.Create(ctx, follow); err != nil {
			return nil, err
		}
		notification := &models.Notification{
			ID:         uuid.NewString(),
			UserID:     targetID,
			Type:       models.NotifFollow,
			FromUserID: followerID,
			Timestamp:  time.Now(),
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			return nil, err
		}
	}

	followersCount, err := s.follows.CountFollowers(ctx, targetID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.follows.CountFollowing(ctx, followerID)
	if err != nil {
		return nil, err
	}

	return &models.ToggleFollowResult{
		Following:      existing == nil,
		FollowersCount: followersCount,
		FollowingCount: followingCount,
	}, nil
}

// IsFollowing reports whether the directed edge a->b exists.
func (s *RelationshipService) IsFollowing(ctx context.Context, a, b string) (bool, error) {
	if a == "" {
		return false, nil
	}
	follow, err := s.follows.Find(ctx, a, b)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}

// FollowersOf lists the users following userID. Each entry carries
// whether the viewer follows that listed user, so templates can render
// follow-back affordances. Edges to vanished users are dropped.
func (s *RelationshipService) FollowersOf(ctx context.Context, userID, viewerID string) ([]models.FollowListEntry, error) {
	follows, err := s.follows.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrichEdges(ctx, follows, viewerID, func(f models.Follow) string { return f.FollowerID })
}

// FollowingOf lists the users userID follows, enriched the same way.
func (s *RelationshipService) FollowingOf(ctx context.Context, userID, viewerID string) ([]models.FollowListEntry, error) {
	follows, err := s.follows.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.enrichEdges(ctx, follows, viewerID, func(f models.Follow) string { return f.FollowingID })
}

func (s *RelationshipService) enrichEdges(ctx context.Context, follows []models.Follow, viewerID string, pick func(models.Follow) string) ([]models.FollowListEntry, error) {
	entries := make([]models.FollowListEntry, 0, len(follows))
	for _, f := range follows {
		user, err := s.users.FindByID(ctx, pick(f))
		if err != nil {
			return nil, err
		}
		if user == nil {
			continue
		}
		followed, err := s.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.FollowListEntry{
			ID:               user.ID,
			Username:         user.Username,
			Avatar:           user.Avatar,
			FollowedByViewer: followed,
		})
	}
	return entries, nil
}
