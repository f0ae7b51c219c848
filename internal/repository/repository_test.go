package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"blogapi/internal/db"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Интеграционные тесты: без TEST_DATABASE_URL / TEST_MONGO_URL пропускаются.

type backend struct {
	authors   repository.AuthorRepo
	posts     repository.BlogPostRepo
	missingID string
}

func postgresBackend(t *testing.T) backend {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL не задан")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("postgres недоступен: %v", err)
	}
	require.NoError(t, db.EnsureSchema(ctx, pool))

	truncate := func() {
		_, err := pool.Exec(context.Background(), `TRUNCATE blog_posts, authors`)
		require.NoError(t, err)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		pool.Close()
	})

	return backend{
		authors:   repository.NewAuthorPgRepo(pool),
		posts:     repository.NewBlogPostPgRepo(pool),
		missingID: "00000000-0000-0000-0000-000000000000",
	}
}

func mongoBackend(t *testing.T) backend {
	t.Helper()
	uri := os.Getenv("TEST_MONGO_URL")
	if uri == "" {
		t.Skip("TEST_MONGO_URL не задан")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		t.Skipf("mongo недоступен: %v", err)
	}

	database := client.Database(fmt.Sprintf("blog_test_%d", time.Now().UnixNano()))
	require.NoError(t, repository.EnsureMongoIndexes(ctx, database))
	t.Cleanup(func() {
		_ = database.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	return backend{
		authors:   repository.NewAuthorMongoRepo(database),
		posts:     repository.NewBlogPostMongoRepo(database),
		missingID: primitive.NewObjectID().Hex(),
	}
}

func TestPostgresRepos(t *testing.T) { runRepoSuite(t, postgresBackend) }
func TestMongoRepos(t *testing.T)    { runRepoSuite(t, mongoBackend) }

func runRepoSuite(t *testing.T, open func(t *testing.T) backend) {
	t.Run("author crud", func(t *testing.T) { testAuthorCRUD(t, open(t)) })
	t.Run("duplicate username", func(t *testing.T) { testDuplicateUserName(t, open(t)) })
	t.Run("post populate", func(t *testing.T) { testPostPopulate(t, open(t)) })
	t.Run("cascade delete", func(t *testing.T) { testCascadeDelete(t, open(t)) })
	t.Run("not found", func(t *testing.T) { testNotFound(t, open(t)) })
}

func createAuthor(t *testing.T, b backend, first, last, user string) *models.Author {
	t.Helper()
	a, err := b.authors.Create(context.Background(), &models.Author{FirstName: first, LastName: last, UserName: user})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	return a
}

func testAuthorCRUD(t *testing.T, b backend) {
	ctx := context.Background()
	a := createAuthor(t, b, "Ada", "Lovelace", "ada")

	got, err := b.authors.GetByUserName(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	last := "Byron"
	updated, err := b.authors.Update(ctx, a.ID, models.AuthorPatch{LastName: &last})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Byron", updated.LastName)
	assert.Equal(t, "ada", updated.UserName)

	list, err := b.authors.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Byron", list[0].LastName)
}

func testDuplicateUserName(t *testing.T, b backend) {
	ctx := context.Background()
	createAuthor(t, b, "Ada", "Lovelace", "ada")
	other := createAuthor(t, b, "Alan", "Turing", "alan")

	_, err := b.authors.Create(ctx, &models.Author{FirstName: "X", LastName: "Y", UserName: "ada"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	taken := "ada"
	_, err = b.authors.Update(ctx, other.ID, models.AuthorPatch{UserName: &taken})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func testPostPopulate(t *testing.T, b backend) {
	ctx := context.Background()
	a := createAuthor(t, b, "Ada ", "Lovelace", "ada")

	created, err := b.posts.Create(ctx, &models.BlogPost{
		Title:    "T",
		Content:  "C",
		AuthorID: a.ID,
		Comments: []models.Comment{},
		Author:   a,
	})
	require.NoError(t, err)
	assert.Empty(t, created.Comments)

	got, err := b.posts.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	assert.Equal(t, a.ID, got.Author.ID)

	res, err := got.Serialize()
	require.NoError(t, err)
	assert.Equal(t, "Ada  Lovelace", res.Author)

	title := "T2"
	updated, err := b.posts.Update(ctx, created.ID, models.BlogPostPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "C", updated.Content)

	list, err := b.posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "T2", list[0].Title)
}

func testCascadeDelete(t *testing.T, b backend) {
	ctx := context.Background()
	ada := createAuthor(t, b, "Ada", "Lovelace", "ada")
	alan := createAuthor(t, b, "Alan", "Turing", "alan")

	for _, a := range []*models.Author{ada, ada, alan} {
		_, err := b.posts.Create(ctx, &models.BlogPost{Title: "T", Content: "C", AuthorID: a.ID, Comments: []models.Comment{}})
		require.NoError(t, err)
	}

	require.NoError(t, b.authors.DeleteWithPosts(ctx, ada.ID))

	_, err := b.authors.GetByID(ctx, ada.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	list, err := b.posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alan.ID, list[0].AuthorID)

	// повторное удаление не ошибка
	assert.NoError(t, b.authors.DeleteWithPosts(ctx, ada.ID))
}

func testNotFound(t *testing.T, b backend) {
	ctx := context.Background()

	_, err := b.authors.GetByID(ctx, b.missingID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = b.authors.GetByUserName(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	first := "X"
	_, err = b.authors.Update(ctx, b.missingID, models.AuthorPatch{FirstName: &first})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = b.posts.GetByID(ctx, b.missingID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, b.posts.Delete(ctx, b.missingID))
}
