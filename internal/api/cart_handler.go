package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolorder-be/internal/cart"
	"toolorder-be/internal/catalog"
	"toolorder-be/internal/utils"
)

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (a *API) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sess, err := a.Carts.GetSession(r.Context(), userID)
	if err != nil {
		writeCartError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess)
}

func (a *API) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	sess, err := a.Carts.AddToCart(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		writeCartError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess)
}

func (a *API) SetCartQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := a.Carts.SetQuantity(r.Context(), userID, r.PathValue("productID"), req.Quantity)
	if err != nil {
		writeCartError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess)
}

func (a *API) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sess, err := a.Carts.RemoveFromCart(r.Context(), userID, r.PathValue("productID"))
	if err != nil {
		writeCartError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess)
}

func (a *API) SaveForLater(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sess, err := a.Carts.SaveForLater(r.Context(), userID, r.PathValue("productID"))
	if err != nil {
		writeCartError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess)
}

func (a *API) MoveToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sess, err := a.Carts.MoveToCart(r.Context(), userID, r.PathValue("productID"))
	if err != nil {
		writeCartError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess)
}

func (a *API) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sess, err := a.Carts.GetSession(r.Context(), userID)
	if err != nil {
		writeCartError(w, err)
		return
	}

	ids := make([]string, 0, len(sess.Favorites))
	for id := range sess.Favorites {
		ids = append(ids, id)
	}
	utils.WriteJSON(w, http.StatusOK, ids)
}

func (a *API) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	sess, err := a.Carts.ToggleFavorite(r.Context(), userID, r.PathValue("productID"))
	if err != nil {
		writeCartError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, sess)
}

func writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrUserNotAuthenticated):
		utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, catalog.ErrProductNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, cart.ErrInvalidQuantity):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "cart operation failed", http.StatusInternalServerError)
	}
}
