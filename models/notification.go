// models/notification.go
package models

import (
	"time"
)

// Notification types
const (
	NotifNewPost = "new_post"
	NotifLike    = "like"
	NotifComment = "comment"
	NotifFollow  = "follow"
)

// Notification model. Append-only event log per recipient.
type Notification struct {
	ID         string    `json:"id" bson:"_id"`
	UserID     string    `json:"userId" bson:"userId"` // recipient
	Type       string    `json:"type" bson:"type"`     // new_post|like|comment|follow
	FromUserID string    `json:"fromUserId" bson:"fromUserId"`
	PostID     string    `json:"postId,omitempty" bson:"postId,omitempty"`
	CommentID  string    `json:"commentId,omitempty" bson:"commentId,omitempty"`
	Read       bool      `json:"read" bson:"read"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
