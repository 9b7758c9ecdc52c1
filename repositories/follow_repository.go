// repositories/follow_repository.go
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumen-social/lumen/models"
)

type MongoFollowRepository struct {
	collection *mongo.Collection
}

func NewMongoFollowRepository(db *mongo.Database) *MongoFollowRepository {
	return &MongoFollowRepository{collection: db.Collection("follows")}
}

func (r *MongoFollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	_, err := r.collection.InsertOne(ctx, follow)
	return err
}

func (r *MongoFollowRepository) Find(ctx context.Context, followerID, followingID string) (*models.Follow, error) {
	var follow models.Follow
	err := r.collection.FindOne(ctx, bson.M{"followerId": followerID, "followingId": followingID}).Decode(&follow)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *MongoFollowRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoFollowRepository) ListFollowers(ctx context.Context, userID string) ([]models.Follow, error) {
	return r.list(ctx, bson.M{"followingId": userID})
}

func (r *MongoFollowRepository) ListFollowing(ctx context.Context, userID string) ([]models.Follow, error) {
	return r.list(ctx, bson.M{"followerId": userID})
}

func (r *MongoFollowRepository) CountFollowers(ctx context.Context, userID string) (int, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"followingId": userID})
	return int(n), err
}

func (r *MongoFollowRepository) CountFollowing(ctx context.Context, userID string) (int, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"followerId": userID})
	return int(n), err
}

func (r *MongoFollowRepository) list(ctx context.Context, filter bson.M) ([]models.Follow, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var follows []models.Follow
	if err := cursor.All(ctx, &follows); err != nil {
		return nil, err
	}
	return follows, nil
}
