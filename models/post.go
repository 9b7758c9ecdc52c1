// models/post.go
package models

import (
	"time"
)

// Media types a post can carry
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaAudio = "audio"
	MediaGif   = "gif"
	MediaOther = "other"
)

// Post model for media posts
type Post struct {
	ID           string    `json:"id" bson:"_id"`
	UserID       string    `json:"userId" bson:"userId"`
	MediaURL     string    `json:"mediaUrl" bson:"mediaUrl"`
	MediaType    string    `json:"mediaType" bson:"mediaType"` // image|video|audio|gif|other
	MimeType     string    `json:"mimeType" bson:"mimeType"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	Caption      string    `json:"caption" bson:"caption"`
	Size         int64     `json:"size" bson:"size"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
}

// Like model. One per (postId, userId) pair; presence is the liked state.
type Like struct {
	ID        string    `json:"id" bson:"_id"`
	PostID    string    `json:"postId" bson:"postId"`
	UserID    string    `json:"userId" bson:"userId"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Comment model for post comments
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	PostID    string    `json:"postId" bson:"postId"`
	UserID    string    `json:"userId" bson:"userId"`
	Text      string    `json:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// CommentRequest represents the comment form
type CommentRequest struct {
	Comment string `json:"comment" form:"comment"`
}
