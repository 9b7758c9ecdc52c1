// repositories/memory.go
//
// In-memory repositories backing tests and Redis/Mongo-less development
// (STORE=memory). Same ordering contracts as the Mongo implementations.
package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/lumen-social/lumen/models"
)

// NewMemoryStore returns a Store backed entirely by process memory.
func NewMemoryStore() *Store {
	return &Store{
		Users:         &memoryUserRepository{users: make(map[string]models.User)},
		Posts:         &memoryPostRepository{},
		Likes:         &memoryLikeRepository{},
		Comments:      &memoryCommentRepository{},
		Follows:       &memoryFollowRepository{},
		Notifications: &memoryNotificationRepository{},
	}
}

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func (r *memoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		u := user
		return &u, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) UpdateBio(_ context.Context, id, bio string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.Bio = bio
		r.users[id] = user
	}
	return nil
}

func (r *memoryUserRepository) UpdatePassword(_ context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.Password = hash
		r.users[id] = user
	}
	return nil
}

func (r *memoryUserRepository) UpdateAvatar(_ context.Context, id, avatar string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		user.Avatar = avatar
		r.users[id] = user
	}
	return nil
}

func (r *memoryUserRepository) SearchByUsername(_ context.Context, query string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	var matches []models.User
	for _, user := range r.users {
		if strings.Contains(strings.ToLower(user.Username), q) {
			matches = append(matches, user)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Username < matches[j].Username })
	return matches, nil
}

type memoryPostRepository struct {
	mu    sync.RWMutex
	posts []models.Post
}

func (r *memoryPostRepository) Create(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, *post)
	return nil
}

func (r *memoryPostRepository) FindByID(_ context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, post := range r.posts {
		if post.ID == id {
			p := post
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryPostRepository) ListAll(_ context.Context) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedByTimeDesc(r.posts, nil), nil
}

func (r *memoryPostRepository) ListByUser(_ context.Context, userID string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedByTimeDesc(r.posts, func(p models.Post) bool { return p.UserID == userID }), nil
}

func (r *memoryPostRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, post := range r.posts {
		if post.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryPostRepository) SearchByCaption(_ context.Context, query string) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q := strings.ToLower(query)
	return sortedByTimeDesc(r.posts, func(p models.Post) bool {
		return p.Caption != "" && strings.Contains(strings.ToLower(p.Caption), q)
	}), nil
}

func sortedByTimeDesc(posts []models.Post, keep func(models.Post) bool) []models.Post {
	var out []models.Post
	for _, post := range posts {
		if keep == nil || keep(post) {
			out = append(out, post)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

type memoryLikeRepository struct {
	mu    sync.RWMutex
	likes []models.Like
}

func (r *memoryLikeRepository) Create(_ context.Context, like *models.Like) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.likes = append(r.likes, *like)
	return nil
}

func (r *memoryLikeRepository) Find(_ context.Context, postID, userID string) (*models.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, like := range r.likes {
		if like.PostID == postID && like.UserID == userID {
			l := like
			return &l, nil
		}
	}
	return nil, nil
}

func (r *memoryLikeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, like := range r.likes {
		if like.ID == id {
			r.likes = append(r.likes[:i], r.likes[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryLikeRepository) DeleteByPost(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.likes[:0]
	for _, like := range r.likes {
		if like.PostID != postID {
			kept = append(kept, like)
		}
	}
	r.likes = kept
	return nil
}

func (r *memoryLikeRepository) ListByPost(_ context.Context, postID string) ([]models.Like, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Like
	for _, like := range r.likes {
		if like.PostID == postID {
			out = append(out, like)
		}
	}
	return out, nil
}

func (r *memoryLikeRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	likes, _ := r.ListByPost(ctx, postID)
	return len(likes), nil
}

type memoryCommentRepository struct {
	mu       sync.RWMutex
	comments []models.Comment
}

func (r *memoryCommentRepository) Create(_ context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *memoryCommentRepository) FindByID(_ context.Context, id string) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, comment := range r.comments {
		if comment.ID == id {
			c := comment
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memoryCommentRepository) ListByPost(_ context.Context, postID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			out = append(out, comment)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *memoryCommentRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	comments, _ := r.ListByPost(ctx, postID)
	return len(comments), nil
}

func (r *memoryCommentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, comment := range r.comments {
		if comment.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryCommentRepository) DeleteByPost(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.comments[:0]
	for _, comment := range r.comments {
		if comment.PostID != postID {
			kept = append(kept, comment)
		}
	}
	r.comments = kept
	return nil
}

type memoryFollowRepository struct {
	mu      sync.RWMutex
	follows []models.Follow
}

func (r *memoryFollowRepository) Create(_ context.Context, follow *models.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follows = append(r.follows, *follow)
	return nil
}

func (r *memoryFollowRepository) Find(_ context.Context, followerID, followingID string) (*models.Follow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, follow := range r.follows {
		if follow.FollowerID == followerID && follow.FollowingID == followingID {
			f := follow
			return &f, nil
		}
	}
	return nil, nil
}

func (r *memoryFollowRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, follow := range r.follows {
		if follow.ID == id {
			r.follows = append(r.follows[:i], r.follows[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryFollowRepository) ListFollowers(_ context.Context, userID string) ([]models.Follow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Follow
	for _, follow := range r.follows {
		if follow.FollowingID == userID {
			out = append(out, follow)
		}
	}
	return out, nil
}

func (r *memoryFollowRepository) ListFollowing(_ context.Context, userID string) ([]models.Follow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Follow
	for _, follow := range r.follows {
		if follow.FollowerID == userID {
			out = append(out, follow)
		}
	}
	return out, nil
}

func (r *memoryFollowRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	follows, _ := r.ListFollowers(ctx, userID)
	return len(follows), nil
}

func (r *memoryFollowRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	follows, _ := r.ListFollowing(ctx, userID)
	return len(follows), nil
}

type memoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications []models.Notification
}

func (r *memoryNotificationRepository) Create(_ context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *memoryNotificationRepository) ListByUser(_ context.Context, userID string) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Notification
	for _, notification := range r.notifications {
		if notification.UserID == userID {
			out = append(out, notification)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *memoryNotificationRepository) MarkAllRead(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].UserID == userID && !r.notifications[i].Read {
			r.notifications[i].Read = true
		}
	}
	return nil
}

func (r *memoryNotificationRepository) DeleteByUser(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.notifications[:0]
	for _, notification := range r.notifications {
		if notification.UserID != userID {
			kept = append(kept, notification)
		}
	}
	r.notifications = kept
	return nil
}
