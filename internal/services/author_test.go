package services

import (
	"context"
	"errors"
	"testing"

	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func newAuthorReq(first, last, user string) models.CreateAuthorRequest {
	return models.CreateAuthorRequest{FirstName: strp(first), LastName: strp(last), UserName: strp(user)}
}

func TestAuthorCreate(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewAuthorService(store.Authors())

	got, err := svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "ada", got.UserName)

	stored, err := store.Authors().GetByID(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", stored.DisplayName())
}

func TestAuthorCreate_MissingFieldsInOrder(t *testing.T) {
	svc := NewAuthorService(testutil.NewMemStore().Authors())

	cases := []struct {
		name  string
		req   models.CreateAuthorRequest
		field string
	}{
		{"all missing", models.CreateAuthorRequest{}, "firstName"},
		{"last and user missing", models.CreateAuthorRequest{FirstName: strp("Ada")}, "lastName"},
		{"first missing only", models.CreateAuthorRequest{LastName: strp("L"), UserName: strp("u")}, "firstName"},
		{"user missing", models.CreateAuthorRequest{FirstName: strp("Ada"), LastName: strp("L")}, "userName"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, "Missing `"+tc.field+"` in request body", vErr.Message)
		})
	}
}

func TestAuthorCreate_EmptyStringIsPresent(t *testing.T) {
	svc := NewAuthorService(testutil.NewMemStore().Authors())

	got, err := svc.Create(context.Background(), newAuthorReq("", "Lovelace", "ada"))
	require.NoError(t, err)
	assert.Equal(t, " Lovelace", got.Name)
}

func TestAuthorCreate_DuplicateUserName(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewAuthorService(store.Authors())

	_, err := svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), newAuthorReq("Other", "Person", "ada"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, store.AuthorCount())
}

// raceAuthorRepo пропускает проверку GetByUserName, как при гонке двух запросов.
type raceAuthorRepo struct {
	repository.AuthorRepo
}

func (r raceAuthorRepo) GetByUserName(context.Context, string) (*models.Author, error) {
	return nil, repository.ErrNotFound
}

func TestAuthorCreate_UniqueIndexViolationIsConflict(t *testing.T) {
	store := testutil.NewMemStore()
	_, err := store.Authors().Create(context.Background(), &models.Author{UserName: "ada"})
	require.NoError(t, err)

	svc := NewAuthorService(raceAuthorRepo{store.Authors()})

	_, err = svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, store.AuthorCount())
}

func TestAuthorCreate_StorageFailure(t *testing.T) {
	store := testutil.NewMemStore()
	store.ErrCreate = errors.New("connection reset")
	svc := NewAuthorService(store.Authors())

	_, err := svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestAuthorList(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewAuthorService(store.Authors())

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), newAuthorReq("Alan", "Turing", "alan"))
	require.NoError(t, err)

	list, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ada Lovelace", list[0].Name)
	assert.Equal(t, "alan", list[1].UserName)
}

func TestAuthorUpdate(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewAuthorService(store.Authors())
	ada, err := svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), ada.ID, models.UpdateAuthorRequest{
		ID:        strp(ada.ID),
		FirstName: strp("Augusta"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta Lovelace", got.Name)
	assert.Equal(t, "ada", got.UserName)
}

func TestAuthorUpdate_IDMismatch(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewAuthorService(store.Authors())
	ada, err := svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)

	cases := map[string]models.UpdateAuthorRequest{
		"body id missing":   {FirstName: strp("X")},
		"body id different": {ID: strp("other"), FirstName: strp("X")},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), ada.ID, req)
			assert.ErrorIs(t, err, ErrBadRequest)

			stored, err := store.Authors().GetByID(context.Background(), ada.ID)
			require.NoError(t, err)
			assert.Equal(t, "Ada", stored.FirstName)
		})
	}
}

func TestAuthorUpdate_UserNameTakenByOther(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewAuthorService(store.Authors())
	ada, err := svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), newAuthorReq("Alan", "Turing", "alan"))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), ada.ID, models.UpdateAuthorRequest{ID: strp(ada.ID), UserName: strp("alan")})
	assert.ErrorIs(t, err, ErrConflict)

	stored, err := store.Authors().GetByID(context.Background(), ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", stored.UserName)
}

func TestAuthorUpdate_OwnUserNameIsNotConflict(t *testing.T) {
	svc := NewAuthorService(testutil.NewMemStore().Authors())
	ada, err := svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)

	got, err := svc.Update(context.Background(), ada.ID, models.UpdateAuthorRequest{
		ID:       strp(ada.ID),
		LastName: strp("King"),
		UserName: strp("ada"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada King", got.Name)
}

func TestAuthorUpdate_NotFound(t *testing.T) {
	svc := NewAuthorService(testutil.NewMemStore().Authors())

	_, err := svc.Update(context.Background(), "missing", models.UpdateAuthorRequest{ID: strp("missing"), FirstName: strp("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAuthorDelete_CascadesPosts(t *testing.T) {
	store := testutil.NewMemStore()
	authors := NewAuthorService(store.Authors())
	posts := NewBlogPostService(store.Posts(), store.Authors())

	ada, err := authors.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)
	alan, err := authors.Create(context.Background(), newAuthorReq("Alan", "Turing", "alan"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := posts.Create(context.Background(), newPostReq("T", "C", ada.ID))
		require.NoError(t, err)
	}
	_, err = posts.Create(context.Background(), newPostReq("T", "C", alan.ID))
	require.NoError(t, err)

	require.NoError(t, authors.Delete(context.Background(), ada.ID))

	assert.Empty(t, store.PostsOf(ada.ID))
	assert.Len(t, store.PostsOf(alan.ID), 1)
	_, err = store.Authors().GetByID(context.Background(), ada.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAuthorDelete_CascadeFailureKeepsAuthor(t *testing.T) {
	store := testutil.NewMemStore()
	svc := NewAuthorService(store.Authors())
	ada, err := svc.Create(context.Background(), newAuthorReq("Ada", "Lovelace", "ada"))
	require.NoError(t, err)

	store.ErrDeletePosts = errors.New("posts collection unavailable")

	err = svc.Delete(context.Background(), ada.ID)
	require.Error(t, err)
	assert.Equal(t, 1, store.AuthorCount())
}

func TestAuthorDelete_UnknownIDIsNoop(t *testing.T) {
	svc := NewAuthorService(testutil.NewMemStore().Authors())

	assert.NoError(t, svc.Delete(context.Background(), "missing"))
}
