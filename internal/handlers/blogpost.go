package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type BlogPostHandler struct {
	svc services.BlogPostService
}

func NewBlogPostHandler(svc services.BlogPostService) *BlogPostHandler {
	return &BlogPostHandler{svc: svc}
}

// List godoc
// @Summary Список постов
// @Tags blogposts
// @Produce json
// @Success 200 {object} models.BlogPostListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /blogposts [get]
func (h *BlogPostHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, models.BlogPostListResponse{BlogPosts: list})
}

// Get godoc
// @Summary Получить пост по ID
// @Tags blogposts
// @Produce json
// @Param id path string true "ID поста"
// @Success 200 {object} models.BlogPostResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /blogposts/{id} [get]
func (h *BlogPostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Create godoc
// @Summary Создать пост
// @Tags blogposts
// @Accept json
// @Produce json
// @Param input body models.CreateBlogPostRequest true "Данные поста"
// @Success 201 {object} models.CreatedBlogPostResponse
// @Failure 400 {string} string "Missing field / Author not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /blogposts [post]
func (h *BlogPostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при создании поста", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	post, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, post)
}

// Update godoc
// @Summary Обновить пост (title, content)
// @Tags blogposts
// @Accept json
// @Produce json
// @Param id path string true "ID поста"
// @Param input body models.UpdateBlogPostRequest true "id обязателен и должен совпадать с путём"
// @Success 200 {object} models.UpdatedBlogPostResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /blogposts/{id} [put]
func (h *BlogPostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при обновлении поста", zap.Error(err), zap.String("id", id))
		helpers.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	post, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Delete godoc
// @Summary Удалить пост
// @Tags blogposts
// @Param id path string true "ID поста"
// @Success 204
// @Failure 500 {object} helpers.ErrorResponse
// @Router /blogposts/{id} [delete]
func (h *BlogPostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.NoContent(w)
}
