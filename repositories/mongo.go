// repositories/mongo.go
package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// NewMongoStore wires every repository to collections of the given database.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Users:         NewMongoUserRepository(db),
		Posts:         NewMongoPostRepository(db),
		Likes:         NewMongoLikeRepository(db),
		Comments:      NewMongoCommentRepository(db),
		Follows:       NewMongoFollowRepository(db),
		Notifications: NewMongoNotificationRepository(db),
	}
}
