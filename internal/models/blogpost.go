package models

import (
	"errors"
	"strings"
)

// ErrAuthorNotResolved — пост сериализуют без подтянутого автора.
var ErrAuthorNotResolved = errors.New("blog post author is not resolved")

type Comment struct {
	ID      string `json:"id"      bson:"id"`
	Content string `json:"content" bson:"content"`
}

// BlogPost хранит ссылку на автора (AuthorID). Author заполняется только
// после join/populate и никогда не пишется в хранилище.
type BlogPost struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	AuthorID string    `json:"authorId"`
	Author   *Author   `json:"-"`
	Comments []Comment `json:"comments"`
}

// AuthorName: "firstName lastName" с обрезкой пробелов по краям.
func AuthorName(a *Author) string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Serialize — публичное представление поста. Автор должен быть подтянут.
func (p *BlogPost) Serialize() (BlogPostResponse, error) {
	if p.Author == nil {
		return BlogPostResponse{}, ErrAuthorNotResolved
	}
	return BlogPostResponse{
		ID:      p.ID,
		Title:   p.Title,
		Author:  AuthorName(p.Author),
		Content: p.Content,
	}, nil
}

type BlogPostResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

type BlogPostListResponse struct {
	BlogPosts []BlogPostResponse `json:"blogposts"`
}

// CreatedBlogPostResponse — ответ на создание поста.
type CreatedBlogPostResponse struct {
	ID       string    `json:"id"`
	Author   string    `json:"author"`
	Content  string    `json:"content"`
	Title    string    `json:"title"`
	Comments []Comment `json:"comments"`
}

type UpdatedBlogPostResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// swagger:model CreateBlogPostRequest
type CreateBlogPostRequest struct {
	Title    *string `json:"title"     example:"T"`
	Content  *string `json:"content"   example:"C"`
	AuthorID *string `json:"author_id" example:"6523f1c2a1b2c3d4e5f60718"`
}

// swagger:model UpdateBlogPostRequest
type UpdateBlogPostRequest struct {
	ID      *string `json:"id"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

type BlogPostPatch struct {
	Title   *string
	Content *string
}

func (p BlogPostPatch) Empty() bool {
	return p.Title == nil && p.Content == nil
}
