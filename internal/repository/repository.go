package repository

import (
	"context"
	"errors"

	"blogapi/internal/models"
)

var (
	// ErrNotFound — записи с таким id нет (в том числе id неверного формата).
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate — нарушен уникальный индекс (userName).
	ErrDuplicate = errors.New("duplicate key")
)

type AuthorRepo interface {
	List(ctx context.Context) ([]*models.Author, error)
	GetByID(ctx context.Context, id string) (*models.Author, error)
	GetByUserName(ctx context.Context, userName string) (*models.Author, error)
	Create(ctx context.Context, a *models.Author) (*models.Author, error)
	Update(ctx context.Context, id string, patch models.AuthorPatch) (*models.Author, error)
	// DeleteWithPosts удаляет сначала все посты автора, потом самого автора.
	// Если посты удалить не удалось, автор остаётся на месте.
	DeleteWithPosts(ctx context.Context, id string) error
}

type BlogPostRepo interface {
	// List и GetByID возвращают посты с подтянутым Author (nil, если автора уже нет).
	List(ctx context.Context) ([]*models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error)
	Update(ctx context.Context, id string, patch models.BlogPostPatch) (*models.BlogPost, error)
	Delete(ctx context.Context, id string) error
}
