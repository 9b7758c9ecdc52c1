// services/projection.go
//
// The aggregation core. Each builder fans out reads across the
// repositories and joins them into one plain structure for rendering.
// Sub-reads are independent snapshots of a mutable store; a concurrent
// write can make counts on one page come from slightly different
// instants. That staleness is accepted under the request-per-render
// model. What is never accepted is a failure on a dangling reference:
// missing users become PlaceholderUser(), missing posts become nil.
package services

import (
	"context"
	"strings"

	"github.com/lumen-social/lumen/models"
	"github.com/lumen-social/lumen/repositories"
)

type ProjectionService struct {
	users         repositories.UserRepository
	posts         repositories.PostRepository
	likes         repositories.LikeRepository
	comments      repositories.CommentRepository
	follows       repositories.FollowRepository
	relationships *RelationshipService
}

func NewProjectionService(store *repositories.Store, relationships *RelationshipService) *ProjectionService {
	return &ProjectionService{
		users:         store.Users,
		posts:         store.Posts,
		likes:         store.Likes,
		comments:      store.Comments,
		follows:       store.Follows,
		relationships: relationships,
	}
}

// BuildFeed returns every post newest first, decorated with its owner,
// like count, the viewer's like state (false for anonymous viewers) and
// the full comment list with commenter identities.
func (s *ProjectionService) BuildFeed(ctx context.Context, viewerID string) ([]models.FeedItem, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.FeedItem, 0, len(posts))
	for _, post := range posts {
		item, err := s.buildFeedItem(ctx, post, viewerID)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

// BuildPostDetail returns a single decorated post, or NotFoundError
// when the post does not exist.
func (s *ProjectionService) BuildPostDetail(ctx context.Context, postID, viewerID string) (*models.FeedItem, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, &NotFoundError{Message: "Post not found"}
	}
	return s.buildFeedItem(ctx, *post, viewerID)
}

func (s *ProjectionService) buildFeedItem(ctx context.Context, post models.Post, viewerID string) (*models.FeedItem, error) {
	owner, err := s.users.FindByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		owner = models.PlaceholderUser()
	}

	likes, err := s.likes.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	liked := false
	if viewerID != "" {
		for _, like := range likes {
			if like.UserID == viewerID {
				liked = true
				break
			}
		}
	}

	comments, err := s.comments.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	commentViews := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		author, err := s.users.FindByID(ctx, comment.UserID)
		if err != nil {
			return nil, err
		}
		if author == nil {
			author = models.PlaceholderUser()
		}
		commentViews = append(commentViews, models.CommentView{
			Comment:  comment,
			Username: author.Username,
			Avatar:   author.Avatar,
		})
	}

	return &models.FeedItem{
		Post:      post,
		User:      owner,
		LikeCount: len(likes),
		Liked:     liked,
		Comments:  commentViews,
	}, nil
}

// BuildProfile bundles everything the profile page needs: the user's
// posts with counts and the viewer's like state, follower/following
// counts and enriched lists, whether the viewer follows the profile,
// and whether the viewer is looking at their own profile.
func (s *ProjectionService) BuildProfile(ctx context.Context, profileUserID, viewerID string) (*models.ProfileBundle, error) {
	user, err := s.users.FindByID(ctx, profileUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &NotFoundError{Message: "User not found"}
	}

	posts, err := s.posts.ListByUser(ctx, profileUserID)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.PostSummary, 0, len(posts))
	for _, post := range posts {
		summary, err := s.buildPostSummary(ctx, post, viewerID, false)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}

	followersCount, err := s.follows.CountFollowers(ctx, profileUserID)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.follows.CountFollowing(ctx, profileUserID)
	if err != nil {
		return nil, err
	}
	followers, err := s.relationships.FollowersOf(ctx, profileUserID, viewerID)
	if err != nil {
		return nil, err
	}
	following, err := s.relationships.FollowingOf(ctx, profileUserID, viewerID)
	if err != nil {
		return nil, err
	}
	isFollowing, err := s.relationships.IsFollowing(ctx, viewerID, profileUserID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileBundle{
		User:           user,
		Posts:          summaries,
		FollowersCount: followersCount,
		FollowingCount: followingCount,
		Followers:      followers,
		Following:      following,
		IsFollowing:    isFollowing,
		IsOwnProfile:   viewerID != "" && viewerID == profileUserID,
	}, nil
}

// Search matches users by username and posts by caption, both with a
// case-insensitive substring match. An empty query returns empty
// results, not an error.
func (s *ProjectionService) Search(ctx context.Context, query, viewerID string) (*models.SearchResults, error) {
	results := &models.SearchResults{
		Users: []models.UserSearchResult{},
		Posts: []models.PostSummary{},
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	users, err := s.users.SearchByUsername(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		isFollowing, err := s.relationships.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		results.Users = append(results.Users, models.UserSearchResult{
			User:        user,
			IsFollowing: isFollowing,
		})
	}

	posts, err := s.posts.SearchByCaption(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		summary, err := s.buildPostSummary(ctx, post, viewerID, true)
		if err != nil {
			return nil, err
		}
		results.Posts = append(results.Posts, *summary)
	}
	return results, nil
}

func (s *ProjectionService) buildPostSummary(ctx context.Context, post models.Post, viewerID string, withOwner bool) (*models.PostSummary, error) {
	summary := &models.PostSummary{Post: post}

	if withOwner {
		owner, err := s.users.FindByID(ctx, post.UserID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			owner = models.PlaceholderUser()
		}
		summary.User = owner
	}

	likes, err := s.likes.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	summary.LikeCount = len(likes)
	if viewerID != "" {
		for _, like := range likes {
			if like.UserID == viewerID {
				summary.Liked = true
				break
			}
		}
	}

	commentCount, err := s.comments.CountByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	summary.CommentCount = commentCount
	return summary, nil
}
