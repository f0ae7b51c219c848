package services

import (
	"context"
	"errors"
	"fmt"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"go.uber.org/zap"
)

type BlogPostService interface {
	List(ctx context.Context) ([]models.BlogPostResponse, error)
	GetByID(ctx context.Context, id string) (*models.BlogPostResponse, error)
	Create(ctx context.Context, req models.CreateBlogPostRequest) (*models.CreatedBlogPostResponse, error)
	Update(ctx context.Context, pathID string, req models.UpdateBlogPostRequest) (*models.UpdatedBlogPostResponse, error)
	Delete(ctx context.Context, id string) error
}

type blogPostService struct {
	repo    repository.BlogPostRepo
	authors repository.AuthorRepo
}

func NewBlogPostService(repo repository.BlogPostRepo, authors repository.AuthorRepo) BlogPostService {
	return &blogPostService{repo: repo, authors: authors}
}

func (s *blogPostService) List(ctx context.Context) ([]models.BlogPostResponse, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка постов")

	list, err := s.repo.List(ctx)
	if err != nil {
		log.Error("Ошибка получения списка постов (repo)", zap.Error(err))
		return nil, err
	}

	out := make([]models.BlogPostResponse, 0, len(list))
	for _, p := range list {
		sp, err := p.Serialize()
		if err != nil {
			log.Error("Не удалось сериализовать пост", zap.String("id", p.ID), zap.String("author_id", p.AuthorID), zap.Error(err))
			return nil, fmt.Errorf("serialize post %s: %w", p.ID, err)
		}
		out = append(out, sp)
	}

	log.Debug("Список постов получен", zap.Int("count", len(out)))
	return out, nil
}

func (s *blogPostService) GetByID(ctx context.Context, id string) (*models.BlogPostResponse, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение поста по ID", zap.String("id", id))

	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Пост не найден", zap.String("id", id))
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("Ошибка получения поста (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	sp, err := p.Serialize()
	if err != nil {
		log.Error("Не удалось сериализовать пост", zap.String("id", id), zap.String("author_id", p.AuthorID), zap.Error(err))
		return nil, fmt.Errorf("serialize post %s: %w", id, err)
	}
	return &sp, nil
}

func (s *blogPostService) Create(ctx context.Context, req models.CreateBlogPostRequest) (*models.CreatedBlogPostResponse, error) {
	log := logger.WithCtx(ctx)

	if err := requireFields(
		requiredField{"title", req.Title},
		requiredField{"content", req.Content},
		requiredField{"author_id", req.AuthorID},
	); err != nil {
		log.Warn("Валидация поста не пройдена", zap.Error(err))
		return nil, err
	}

	log.Info("Создание поста", zap.String("author_id", *req.AuthorID), zap.String("title", *req.Title))

	author, err := s.authors.GetByID(ctx, *req.AuthorID)
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Автор поста не найден", zap.String("author_id", *req.AuthorID))
		return nil, &ValidationError{Field: "author_id", Message: "Author not found"}
	}
	if err != nil {
		log.Error("Ошибка проверки автора (repo)", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, &models.BlogPost{
		Title:    *req.Title,
		Content:  *req.Content,
		AuthorID: author.ID,
		Author:   author,
		Comments: []models.Comment{},
	})
	if err != nil {
		log.Error("Ошибка создания поста (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Пост создан", zap.String("id", created.ID))
	return &models.CreatedBlogPostResponse{
		ID:       created.ID,
		Author:   models.AuthorName(author),
		Content:  created.Content,
		Title:    created.Title,
		Comments: created.Comments,
	}, nil
}

func (s *blogPostService) Update(ctx context.Context, pathID string, req models.UpdateBlogPostRequest) (*models.UpdatedBlogPostResponse, error) {
	log := logger.WithCtx(ctx)

	if pathID == "" || req.ID == nil || *req.ID != pathID {
		log.Warn("id в пути и в теле не совпадают", zap.String("path_id", pathID), zap.Stringp("body_id", req.ID))
		return nil, ErrBadRequest
	}

	log.Info("Обновление поста", zap.String("id", pathID))

	updated, err := s.repo.Update(ctx, pathID, models.BlogPostPatch{Title: req.Title, Content: req.Content})
	if errors.Is(err, repository.ErrNotFound) {
		log.Warn("Пост для обновления не найден", zap.String("id", pathID))
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("Ошибка обновления поста (repo)", zap.String("id", pathID), zap.Error(err))
		return nil, err
	}

	log.Info("Пост обновлён", zap.String("id", pathID))
	return &models.UpdatedBlogPostResponse{Title: updated.Title, Content: updated.Content}, nil
}

func (s *blogPostService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление поста", zap.String("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления поста (repo)", zap.String("id", id), zap.Error(err))
		return err
	}

	log.Info("Пост удалён", zap.String("id", id))
	return nil
}
