package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	authorsCollection   = "authors"
	blogPostsCollection = "blogposts"
)

// EnsureMongoIndexes создаёт уникальный индекс на userName и индекс на author у постов.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(authorsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userName", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("authors_user_name_uniq"),
	})
	if err != nil {
		return fmt.Errorf("create authors index: %w", err)
	}

	_, err = db.Collection(blogPostsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "author", Value: 1}},
		Options: options.Index().SetName("blogposts_author_idx"),
	})
	if err != nil {
		return fmt.Errorf("create blogposts index: %w", err)
	}
	return nil
}

// objectID — невалидный hex трактуется как отсутствующая запись.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func translateMongoErr(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
