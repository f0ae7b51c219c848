package repository

import (
	"context"

	"blogapi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type commentDoc struct {
	ID      primitive.ObjectID `bson:"_id"`
	Content string             `bson:"content"`
}

type blogPostDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Content  string             `bson:"content"`
	Author   primitive.ObjectID `bson:"author"`
	Comments []commentDoc       `bson:"comments"`
	// заполняется только $lookup-ом, в коллекцию не пишется
	AuthorDocs []authorDoc `bson:"authorDocs,omitempty"`
}

func (d *blogPostDoc) model() *models.BlogPost {
	p := &models.BlogPost{
		ID:       d.ID.Hex(),
		Title:    d.Title,
		Content:  d.Content,
		AuthorID: d.Author.Hex(),
		Comments: make([]models.Comment, 0, len(d.Comments)),
	}
	for _, c := range d.Comments {
		p.Comments = append(p.Comments, models.Comment{ID: c.ID.Hex(), Content: c.Content})
	}
	if len(d.AuthorDocs) > 0 {
		p.Author = d.AuthorDocs[0].model()
	}
	return p
}

type blogPostMongoRepo struct {
	posts *mongo.Collection
}

func NewBlogPostMongoRepo(db *mongo.Database) BlogPostRepo {
	return &blogPostMongoRepo{posts: db.Collection(blogPostsCollection)}
}

// populate подставляет документ автора вместо ссылки.
func populate(match bson.D) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	return append(pipeline, bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: authorsCollection},
		{Key: "localField", Value: "author"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "authorDocs"},
	}}})
}

func (r *blogPostMongoRepo) List(ctx context.Context) ([]*models.BlogPost, error) {
	return r.aggregate(ctx, populate(nil))
}

func (r *blogPostMongoRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	list, err := r.aggregate(ctx, populate(bson.D{{Key: "_id", Value: oid}}))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return list[0], nil
}

func (r *blogPostMongoRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*models.BlogPost, error) {
	cur, err := r.posts.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var docs []blogPostDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	list := make([]*models.BlogPost, 0, len(docs))
	for i := range docs {
		list = append(list, docs[i].model())
	}
	return list, nil
}

func (r *blogPostMongoRepo) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	authorID, err := objectID(p.AuthorID)
	if err != nil {
		return nil, err
	}

	doc := blogPostDoc{
		ID:       primitive.NewObjectID(),
		Title:    p.Title,
		Content:  p.Content,
		Author:   authorID,
		Comments: []commentDoc{},
	}
	for _, c := range p.Comments {
		doc.Comments = append(doc.Comments, commentDoc{ID: primitive.NewObjectID(), Content: c.Content})
	}
	if _, err := r.posts.InsertOne(ctx, doc); err != nil {
		return nil, translateMongoErr(err)
	}

	out := doc.model()
	out.Author = p.Author
	return out, nil
}

func (r *blogPostMongoRepo) Update(ctx context.Context, id string, patch models.BlogPostPatch) (*models.BlogPost, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}

	var doc blogPostDoc
	err = r.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateMongoErr(err)
	}
	return doc.model(), nil
}

func (r *blogPostMongoRepo) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return nil
	}
	_, err = r.posts.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
