package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blogapi/internal/logger"
	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type authorPgRepo struct{ db *pgxpool.Pool }

func NewAuthorPgRepo(db *pgxpool.Pool) AuthorRepo { return &authorPgRepo{db: db} }

func (r *authorPgRepo) List(ctx context.Context) ([]*models.Author, error) {
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name, user_name FROM authors ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*models.Author{}
	for rows.Next() {
		var a models.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.UserName); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *authorPgRepo) GetByID(ctx context.Context, id string) (*models.Author, error) {
	const q = `SELECT id, first_name, last_name, user_name FROM authors WHERE id = $1`
	return scanAuthor(r.db.QueryRow(ctx, q, id))
}

func (r *authorPgRepo) GetByUserName(ctx context.Context, userName string) (*models.Author, error) {
	logger.WithCtx(ctx).Debug("Поиск автора по userName (repo)", zap.String("user_name", userName))
	const q = `SELECT id, first_name, last_name, user_name FROM authors WHERE user_name = $1`
	return scanAuthor(r.db.QueryRow(ctx, q, userName))
}

func (r *authorPgRepo) Create(ctx context.Context, a *models.Author) (*models.Author, error) {
	const q = `
		INSERT INTO authors (id, first_name, last_name, user_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, first_name, last_name, user_name
	`
	out, err := scanAuthor(r.db.QueryRow(ctx, q, uuid.NewString(), a.FirstName, a.LastName, a.UserName))
	if err != nil {
		return nil, translatePgErr(err)
	}
	return out, nil
}

func (r *authorPgRepo) Update(ctx context.Context, id string, patch models.AuthorPatch) (*models.Author, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	set := []string{}
	args := []interface{}{}
	i := 1
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		set = append(set, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, *v)
		i++
	}
	add("first_name", patch.FirstName)
	add("last_name", patch.LastName)
	add("user_name", patch.UserName)

	q := "UPDATE authors SET " + strings.Join(set, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id, first_name, last_name, user_name", i)
	args = append(args, id)

	out, err := scanAuthor(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, translatePgErr(err)
	}
	return out, nil
}

func (r *authorPgRepo) DeleteWithPosts(ctx context.Context, id string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM blog_posts WHERE author_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete posts of author: %w", err)
		}
		logger.WithCtx(ctx).Debug("Посты автора удалены (repo)",
			zap.String("author_id", id), zap.Int64("count", tag.RowsAffected()))

		if _, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete author: %w", err)
		}
		return nil
	})
}

func scanAuthor(row pgx.Row) (*models.Author, error) {
	var a models.Author
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.UserName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func translatePgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
