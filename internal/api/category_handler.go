package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolorder-be/internal/category"
	"toolorder-be/internal/utils"
)

type categoryRequest struct {
	Name string `json:"name"`
}

func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.Categories.ListCategories(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to list categories", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, categories)
}

func (a *API) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	c, err := a.Categories.AddCategory(r.Context(), req.Name)
	if errors.Is(err, category.ErrEmptyName) {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, c)
}

func (a *API) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s, err := a.Categories.AddSubcategory(r.Context(), r.PathValue("id"), req.Name)
	if errors.Is(err, category.ErrEmptyName) {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, s)
}

func (a *API) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	err := a.Categories.DeleteCategory(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case err != nil:
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
