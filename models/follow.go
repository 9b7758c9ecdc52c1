// models/follow.go
package models

import (
	"time"
)

// Follow is a directed edge follower -> following. One per pair,
// self-follow is rejected before it reaches the store.
type Follow struct {
	ID          string    `json:"id" bson:"_id"`
	FollowerID  string    `json:"followerId" bson:"followerId"`
	FollowingID string    `json:"followingId" bson:"followingId"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}
