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

type AuthorService interface {
	List(ctx context.Context) ([]models.AuthorResponse, error)
	Create(ctx context.Context, req models.CreateAuthorRequest) (*models.AuthorResponse, error)
	Update(ctx context.Context, pathID string, req models.UpdateAuthorRequest) (*models.AuthorResponse, error)
	Delete(ctx context.Context, id string) error
}

type authorService struct {
	repo repository.AuthorRepo
}

func NewAuthorService(repo repository.AuthorRepo) AuthorService {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context) ([]models.AuthorResponse, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение списка авторов")

	list, err := s.repo.List(ctx)
	if err != nil {
		log.Error("Ошибка получения списка авторов (repo)", zap.Error(err))
		return nil, err
	}

	out := make([]models.AuthorResponse, 0, len(list))
	for _, a := range list {
		out = append(out, a.Response())
	}

	log.Debug("Список авторов получен", zap.Int("count", len(out)))
	return out, nil
}

func (s *authorService) Create(ctx context.Context, req models.CreateAuthorRequest) (*models.AuthorResponse, error) {
	log := logger.WithCtx(ctx)

	if err := requireFields(
		requiredField{"firstName", req.FirstName},
		requiredField{"lastName", req.LastName},
		requiredField{"userName", req.UserName},
	); err != nil {
		log.Warn("Валидация автора не пройдена", zap.Error(err))
		return nil, err
	}

	log.Info("Создание автора", zap.String("user_name", *req.UserName))

	taken, err := s.userNameTaken(ctx, *req.UserName, "")
	if err != nil {
		return nil, err
	}
	if taken {
		log.Warn("userName уже занят", zap.String("user_name", *req.UserName))
		return nil, ErrConflict
	}

	created, err := s.repo.Create(ctx, &models.Author{
		FirstName: *req.FirstName,
		LastName:  *req.LastName,
		UserName:  *req.UserName,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// гонка: кто-то успел занять userName между проверкой и вставкой
			log.Warn("userName занят (уникальный индекс)", zap.String("user_name", *req.UserName))
			return nil, ErrConflict
		}
		log.Error("Ошибка создания автора (repo)", zap.Error(err))
		return nil, err
	}

	log.Info("Автор создан", zap.String("id", created.ID))
	resp := created.Response()
	return &resp, nil
}

func (s *authorService) Update(ctx context.Context, pathID string, req models.UpdateAuthorRequest) (*models.AuthorResponse, error) {
	log := logger.WithCtx(ctx)

	if pathID == "" || req.ID == nil || *req.ID != pathID {
		log.Warn("id в пути и в теле не совпадают", zap.String("path_id", pathID), zap.Stringp("body_id", req.ID))
		return nil, ErrBadRequest
	}

	log.Info("Обновление автора", zap.String("id", pathID))

	patch := models.AuthorPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
	}

	if patch.UserName != nil {
		taken, err := s.userNameTaken(ctx, *patch.UserName, pathID)
		if err != nil {
			return nil, err
		}
		if taken {
			log.Warn("userName уже занят другим автором", zap.String("user_name", *patch.UserName))
			return nil, ErrConflict
		}
	}

	updated, err := s.repo.Update(ctx, pathID, patch)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		log.Warn("Автор для обновления не найден", zap.String("id", pathID))
		return nil, ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		log.Warn("userName занят (уникальный индекс)", zap.String("id", pathID))
		return nil, ErrConflict
	case err != nil:
		log.Error("Ошибка обновления автора (repo)", zap.String("id", pathID), zap.Error(err))
		return nil, err
	}

	log.Info("Автор обновлён", zap.String("id", pathID))
	resp := updated.Response()
	return &resp, nil
}

func (s *authorService) Delete(ctx context.Context, id string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление автора вместе с постами", zap.String("id", id))

	if err := s.repo.DeleteWithPosts(ctx, id); err != nil {
		log.Error("Ошибка каскадного удаления автора (repo)", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete author %s: %w", id, err)
	}

	log.Info("Автор удалён", zap.String("id", id))
	return nil
}

// userNameTaken проверяет, занят ли userName кем-то кроме selfID.
func (s *authorService) userNameTaken(ctx context.Context, userName, selfID string) (bool, error) {
	existing, err := s.repo.GetByUserName(ctx, userName)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка проверки userName (repo)", zap.Error(err))
		return false, err
	}
	return existing.ID != selfID, nil
}
