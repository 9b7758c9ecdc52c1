// repositories/like_repository.go
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumen-social/lumen/models"
)

type MongoLikeRepository struct {
	collection *mongo.Collection
}

func NewMongoLikeRepository(db *mongo.Database) *MongoLikeRepository {
	return &MongoLikeRepository{collection: db.Collection("likes")}
}

func (r *MongoLikeRepository) Create(ctx context.Context, like *models.Like) error {
	_, err := r.collection.InsertOne(ctx, like)
	return err
}

func (r *MongoLikeRepository) Find(ctx context.Context, postID, userID string) (*models.Like, error) {
	var like models.Like
	err := r.collection.FindOne(ctx, bson.M{"postId": postID, "userId": userID}).Decode(&like)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *MongoLikeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MongoLikeRepository) DeleteByPost(ctx context.Context, postID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"postId": postID})
	return err
}

func (r *MongoLikeRepository) ListByPost(ctx context.Context, postID string) ([]models.Like, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"postId": postID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var likes []models.Like
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *MongoLikeRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"postId": postID})
	return int(n), err
}
