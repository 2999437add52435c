package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"toolorder-be/internal/logger"
	"toolorder-be/internal/middleware"
	"toolorder-be/internal/order"
	"toolorder-be/internal/utils"
)

type submitOrderRequest struct {
	DeliveryLocation string `json:"delivery_location"`
	SiteName         string `json:"site_name"`
	PersonName       string `json:"person_name"`
}

type submitOrderResponse struct {
	OrderID string `json:"order_id"`
}

// SubmitOrder runs the full checkout: load the caller's session, build and
// persist the order from its cart, then write the cleared cart back. On
// failure the saved session is untouched so the cart survives for a retry.
func (a *API) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	companyName := ""
	if claims, found := middleware.ClaimsFromContext(r.Context()); found {
		companyName = claims.CompanyName
	}

	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, err := a.Sessions.Load(r.Context(), userID)
	if err != nil {
		utils.WriteJSONError(w, "failed to load cart", http.StatusInternalServerError)
		return
	}

	input := order.SubmitInput{
		UserID:           userID,
		CompanyName:      companyName,
		DeliveryLocation: req.DeliveryLocation,
		SiteName:         req.SiteName,
		PersonName:       req.PersonName,
	}

	orderID, err := a.Orders.Submit(r.Context(), input, &sess.Cart)
	if errors.Is(err, order.ErrEmptyCart) {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.WriteJSONError(w, "order submission failed", http.StatusInternalServerError)
		return
	}

	// The order is durable at this point; a failed session write only leaves
	// the old cart behind, so it is logged and not surfaced to the caller.
	if err := a.Sessions.Save(r.Context(), sess); err != nil {
		logger.FromCtx(r.Context()).Warn("failed to clear cart after order submission",
			zap.String("orderID", orderID), zap.Error(err))
	}

	utils.WriteJSON(w, http.StatusCreated, submitOrderResponse{OrderID: orderID})
}

func (a *API) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	orders, err := a.Orders.SearchByUser(r.Context(), userID, searchQueryFromRequest(r))
	if err != nil {
		utils.WriteJSONError(w, "failed to list orders", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (a *API) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	o, err := a.Orders.GetOrderForUser(r.Context(), userID, r.PathValue("id"), middleware.IsAdmin(r.Context()))
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, order.ErrUnauthorized):
		utils.WriteJSONError(w, err.Error(), http.StatusForbidden)
	case err != nil:
		utils.WriteJSONError(w, "failed to get order", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, http.StatusOK, o)
	}
}

func (a *API) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	orders, err := a.Orders.SearchAll(r.Context(), searchQueryFromRequest(r))
	if err != nil {
		utils.WriteJSONError(w, "failed to list orders", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (a *API) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := a.Orders.UpdateStatus(r.Context(), r.PathValue("id"), order.Status(req.Status))
	switch {
	case errors.Is(err, order.ErrInvalidStatus):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case err != nil:
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// searchQueryFromRequest maps the storefront search form fields onto the
// in-memory predicates. Dates are whole days, inclusive on both ends.
func searchQueryFromRequest(r *http.Request) order.SearchQuery {
	q := order.SearchQuery{
		Keyword:     r.URL.Query().Get("keyword"),
		ProductName: r.URL.Query().Get("product"),
		Person:      r.URL.Query().Get("person"),
		Status:      order.Status(r.URL.Query().Get("status")),
	}

	if v := r.URL.Query().Get("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			q.From = &t
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			q.To = &end
		}
	}
	return q
}
