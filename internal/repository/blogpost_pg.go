package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type blogPostPgRepo struct{ db *pgxpool.Pool }

func NewBlogPostPgRepo(db *pgxpool.Pool) BlogPostRepo { return &blogPostPgRepo{db: db} }

// populate: LEFT JOIN, чтобы пост с удалённым автором вернулся с Author == nil.
const selectPopulated = `
	SELECT p.id, p.title, p.content, p.author_id, p.comments,
	       a.id, a.first_name, a.last_name, a.user_name
	FROM blog_posts p
	LEFT JOIN authors a ON a.id = p.author_id
`

func (r *blogPostPgRepo) List(ctx context.Context) ([]*models.BlogPost, error) {
	rows, err := r.db.Query(ctx, selectPopulated+` ORDER BY p.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.BlogPost{}
	for rows.Next() {
		p, err := scanPopulated(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *blogPostPgRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	p, err := scanPopulated(r.db.QueryRow(ctx, selectPopulated+` WHERE p.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *blogPostPgRepo) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	commentsJSON, err := json.Marshal(p.Comments)
	if err != nil {
		return nil, err
	}

	const q = `
		INSERT INTO blog_posts (id, title, content, author_id, comments)
		VALUES ($1, $2, $3, $4, $5::jsonb)
		RETURNING id, title, content, author_id, comments
	`
	var out models.BlogPost
	var commentsRaw []byte
	if err := r.db.QueryRow(ctx, q, uuid.NewString(), p.Title, p.Content, p.AuthorID, commentsJSON).Scan(
		&out.ID, &out.Title, &out.Content, &out.AuthorID, &commentsRaw,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(commentsRaw, &out.Comments); err != nil {
		return nil, err
	}
	out.Author = p.Author
	return &out, nil
}

func (r *blogPostPgRepo) Update(ctx context.Context, id string, patch models.BlogPostPatch) (*models.BlogPost, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	set := []string{}
	args := []interface{}{}
	i := 1
	if patch.Title != nil {
		set = append(set, fmt.Sprintf("title = $%d", i))
		args = append(args, *patch.Title)
		i++
	}
	if patch.Content != nil {
		set = append(set, fmt.Sprintf("content = $%d", i))
		args = append(args, *patch.Content)
		i++
	}
	q := "UPDATE blog_posts SET " + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id, title, content, author_id", i)
	args = append(args, id)

	var out models.BlogPost
	if err := r.db.QueryRow(ctx, q, args...).Scan(&out.ID, &out.Title, &out.Content, &out.AuthorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *blogPostPgRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	return err
}

func scanPopulated(row pgx.Row) (*models.BlogPost, error) {
	var p models.BlogPost
	var commentsRaw []byte
	var aID, aFirst, aLast, aUser *string
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.AuthorID, &commentsRaw,
		&aID, &aFirst, &aLast, &aUser,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(commentsRaw, &p.Comments); err != nil {
		return nil, err
	}
	if aID != nil {
		p.Author = &models.Author{ID: *aID, FirstName: deref(aFirst), LastName: deref(aLast), UserName: deref(aUser)}
	}
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
