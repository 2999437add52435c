package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"toolorder-be/internal/catalog"
	"toolorder-be/internal/utils"
)

func (a *API) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := catalog.SearchQuery{
		Keyword:  r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}
	if v := r.URL.Query().Get("price_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.PriceMin = &n
		}
	}
	if v := r.URL.Query().Get("price_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.PriceMax = &n
		}
	}

	products, err := a.Catalog.ListProducts(r.Context(), q)
	if err != nil {
		utils.WriteJSONError(w, "failed to list products", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (a *API) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.Catalog.GetProduct(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		utils.WriteJSONError(w, "failed to get product", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (a *API) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if p.Name == "" {
		utils.WriteJSONError(w, "name is required", http.StatusBadRequest)
		return
	}

	created, err := a.Catalog.CreateProduct(r.Context(), p)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, created)
}

func (a *API) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p.ID = r.PathValue("id")

	err := a.Catalog.UpdateProduct(r.Context(), p)
	if errors.Is(err, catalog.ErrProductNotFound) {
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (a *API) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	err := a.Catalog.DeleteProduct(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
