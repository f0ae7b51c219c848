package testutil

import (
	"context"
	"sync"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/google/uuid"
)

// MemStore — in-memory хранилище авторов и постов для тестов сервисов и хендлеров.
// Ведёт себя как настоящие репозитории: уникальный userName, populate автора,
// каскадное удаление (посты → автор). Поля Err* позволяют сымитировать сбой.
type MemStore struct {
	mu      sync.Mutex
	authors map[string]models.Author
	posts   map[string]models.BlogPost
	order   []string

	ErrList        error
	ErrDeletePosts error
	ErrCreate      error
}

func NewMemStore() *MemStore {
	return &MemStore{
		authors: map[string]models.Author{},
		posts:   map[string]models.BlogPost{},
	}
}

// Authors и Posts возвращают представления стора под интерфейсы репозиториев.
func (m *MemStore) Authors() repository.AuthorRepo { return (*memAuthors)(m) }
func (m *MemStore) Posts() repository.BlogPostRepo { return (*memPosts)(m) }

func (m *MemStore) AuthorCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.authors)
}

func (m *MemStore) PostCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts)
}

// PostsOf — id постов, ссылающихся на автора.
func (m *MemStore) PostsOf(authorID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for _, id := range m.order {
		if p, ok := m.posts[id]; ok && p.AuthorID == authorID {
			ids = append(ids, id)
		}
	}
	return ids
}

// PutPost кладёт пост как есть, без проверки автора (для "висячих" ссылок).
func (m *MemStore) PutPost(p models.BlogPost) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Author = nil
	m.posts[p.ID] = p
	m.order = append(m.order, p.ID)
	return p.ID
}

type memAuthors MemStore

func (r *memAuthors) List(_ context.Context) ([]*models.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ErrList != nil {
		return nil, r.ErrList
	}
	list := []*models.Author{}
	for _, id := range r.order {
		if a, ok := r.authors[id]; ok {
			list = append(list, &a)
		}
	}
	return list, nil
}

func (r *memAuthors) GetByID(_ context.Context, id string) (*models.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.authors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *memAuthors) GetByUserName(_ context.Context, userName string) (*models.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.authors {
		if a.UserName == userName {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memAuthors) Create(_ context.Context, a *models.Author) (*models.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ErrCreate != nil {
		return nil, r.ErrCreate
	}
	for _, other := range r.authors {
		if other.UserName == a.UserName {
			return nil, repository.ErrDuplicate
		}
	}
	out := *a
	out.ID = uuid.NewString()
	r.authors[out.ID] = out
	r.order = append(r.order, out.ID)
	return &out, nil
}

func (r *memAuthors) Update(_ context.Context, id string, patch models.AuthorPatch) (*models.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.authors[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.UserName != nil {
		for otherID, other := range r.authors {
			if otherID != id && other.UserName == *patch.UserName {
				return nil, repository.ErrDuplicate
			}
		}
	}
	a = patch.Apply(a)
	r.authors[id] = a
	return &a, nil
}

func (r *memAuthors) DeleteWithPosts(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ErrDeletePosts != nil {
		return r.ErrDeletePosts
	}
	for pid, p := range r.posts {
		if p.AuthorID == id {
			delete(r.posts, pid)
		}
	}
	delete(r.authors, id)
	return nil
}

type memPosts MemStore

func (r *memPosts) populate(p models.BlogPost) *models.BlogPost {
	if a, ok := r.authors[p.AuthorID]; ok {
		p.Author = &a
	}
	return &p
}

func (r *memPosts) List(_ context.Context) ([]*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ErrList != nil {
		return nil, r.ErrList
	}
	list := []*models.BlogPost{}
	for _, id := range r.order {
		if p, ok := r.posts[id]; ok {
			list = append(list, r.populate(p))
		}
	}
	return list, nil
}

func (r *memPosts) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.populate(p), nil
}

func (r *memPosts) Create(_ context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ErrCreate != nil {
		return nil, r.ErrCreate
	}
	out := *p
	out.ID = uuid.NewString()
	out.Author = nil
	if out.Comments == nil {
		out.Comments = []models.Comment{}
	}
	r.posts[out.ID] = out
	r.order = append(r.order, out.ID)
	return r.populate(out), nil
}

func (r *memPosts) Update(_ context.Context, id string, patch models.BlogPostPatch) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	r.posts[id] = p
	return r.populate(p), nil
}

func (r *memPosts) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}
