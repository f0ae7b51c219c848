package repository

import (
	"context"
	"fmt"

	"blogapi/internal/logger"
	"blogapi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type authorDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	UserName  string             `bson:"userName"`
}

func (d *authorDoc) model() *models.Author {
	return &models.Author{ID: d.ID.Hex(), FirstName: d.FirstName, LastName: d.LastName, UserName: d.UserName}
}

type authorMongoRepo struct {
	authors *mongo.Collection
	posts   *mongo.Collection
}

func NewAuthorMongoRepo(db *mongo.Database) AuthorRepo {
	return &authorMongoRepo{
		authors: db.Collection(authorsCollection),
		posts:   db.Collection(blogPostsCollection),
	}
}

func (r *authorMongoRepo) List(ctx context.Context) ([]*models.Author, error) {
	cur, err := r.authors.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []authorDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	list := make([]*models.Author, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].model())
	}
	return list, nil
}

func (r *authorMongoRepo) GetByID(ctx context.Context, id string) (*models.Author, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *authorMongoRepo) GetByUserName(ctx context.Context, userName string) (*models.Author, error) {
	logger.WithCtx(ctx).Debug("Поиск автора по userName (repo)", zap.String("user_name", userName))
	return r.findOne(ctx, bson.M{"userName": userName})
}

func (r *authorMongoRepo) findOne(ctx context.Context, filter bson.M) (*models.Author, error) {
	var doc authorDoc
	if err := r.authors.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateMongoErr(err)
	}
	return doc.model(), nil
}

func (r *authorMongoRepo) Create(ctx context.Context, a *models.Author) (*models.Author, error) {
	doc := authorDoc{
		ID:        primitive.NewObjectID(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		UserName:  a.UserName,
	}
	if _, err := r.authors.InsertOne(ctx, doc); err != nil {
		return nil, translateMongoErr(err)
	}
	return doc.model(), nil
}

func (r *authorMongoRepo) Update(ctx context.Context, id string, patch models.AuthorPatch) (*models.Author, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.FirstName != nil {
		set["firstName"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["lastName"] = *patch.LastName
	}
	if patch.UserName != nil {
		set["userName"] = *patch.UserName
	}

	var doc authorDoc
	err = r.authors.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return doc.model(), nil
}

// DeleteWithPosts: без транзакций (standalone mongod их не умеет),
// поэтому строго сначала посты, потом автор.
func (r *authorMongoRepo) DeleteWithPosts(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return nil
	}

	res, err := r.posts.DeleteMany(ctx, bson.M{"author": oid})
	if err != nil {
		return fmt.Errorf("delete posts of author: %w", err)
	}
	logger.WithCtx(ctx).Debug("Посты автора удалены (repo)",
		zap.String("author_id", id), zap.Int64("count", res.DeletedCount))

	if _, err := r.authors.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}
