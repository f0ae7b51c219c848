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

type AuthorHandler struct {
	svc services.AuthorService
}

func NewAuthorHandler(svc services.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

// List godoc
// @Summary Список авторов
// @Tags authors
// @Produce json
// @Success 200 {array} models.AuthorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /authors [get]
func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Create godoc
// @Summary Создать автора
// @Tags authors
// @Accept json
// @Produce json
// @Param input body models.CreateAuthorRequest true "Данные автора"
// @Success 201 {object} models.AuthorResponse
// @Failure 400 {string} string "Missing field / Username already taken"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /authors [post]
func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при создании автора", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	author, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, author)
}

// Update godoc
// @Summary Обновить автора
// @Tags authors
// @Accept json
// @Produce json
// @Param id path string true "ID автора"
// @Param input body models.UpdateAuthorRequest true "id обязателен и должен совпадать с путём"
// @Success 200 {object} models.AuthorResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /authors/{id} [put]
func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный JSON при обновлении автора", zap.Error(err), zap.String("id", id))
		helpers.Error(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	author, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, author)
}

// Delete godoc
// @Summary Удалить автора вместе с его постами
// @Tags authors
// @Param id path string true "ID автора"
// @Success 204
// @Failure 500 {object} helpers.ErrorResponse
// @Router /authors/{id} [delete]
func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	helpers.NoContent(w)
}
