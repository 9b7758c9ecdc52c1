// models/projection.go
//
// View-layer projections assembled by the services/projection core.
// Every user or post reference here is placeholder-safe: a dangling id
// resolves to PlaceholderUser() or a nil post, never to an error.
package models

// CommentView is a comment decorated with its author's identity snapshot.
type CommentView struct {
	Comment  `bson:",inline"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// FeedItem is a post decorated for the feed and post-detail views.
type FeedItem struct {
	Post      `bson:",inline"`
	User      *User         `json:"user"`
	LikeCount int           `json:"likeCount"`
	Liked     bool          `json:"liked"` // always false for anonymous viewers
	Comments  []CommentView `json:"comments"`
}

// PostSummary is a post decorated with counts only (profile grid, search).
type PostSummary struct {
	Post         `bson:",inline"`
	User         *User `json:"user,omitempty"`
	LikeCount    int   `json:"likeCount"`
	CommentCount int   `json:"commentCount"`
	Liked        bool  `json:"liked"`
}

// FollowListEntry is a follower/following list row, annotated with
// whether the viewing user follows the listed user.
type FollowListEntry struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Avatar           string `json:"avatar,omitempty"`
	FollowedByViewer bool   `json:"followedByViewer"`
}

// ProfileBundle is everything the profile page needs in one read.
type ProfileBundle struct {
	User           *User             `json:"user"`
	Posts          []PostSummary     `json:"posts"`
	FollowersCount int               `json:"followersCount"`
	FollowingCount int               `json:"followingCount"`
	Followers      []FollowListEntry `json:"followers"`
	Following      []FollowListEntry `json:"following"`
	IsFollowing    bool              `json:"isFollowing"`
	IsOwnProfile   bool              `json:"isOwnProfile"`
}

// NotificationView is a notification enriched with the sender snapshot
// and the referenced post, when it still exists.
type NotificationView struct {
	Notification `bson:",inline"`
	FromUser     *User `json:"fromUser"`
	Post         *Post `json:"post,omitempty"`
}

// UserSearchResult is a matched user annotated with follow state.
type UserSearchResult struct {
	User        `bson:",inline"`
	IsFollowing bool `json:"isFollowing"`
}

// SearchResults groups user and post matches for the search page.
type SearchResults struct {
	Users []UserSearchResult `json:"users"`
	Posts []PostSummary      `json:"posts"`
}

// ToggleLikeResult is the payload for the like toggle endpoint.
type ToggleLikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// ToggleFollowResult is the payload for the follow toggle endpoint.
// Counts are re-read after the mutation.
type ToggleFollowResult struct {
	Following      bool `json:"following"`
	FollowersCount int  `json:"followersCount"`
	FollowingCount int  `json:"followingCount"`
}
