package invoice

import (
	"errors"
	"fmt"
	"net/http"

	"toolorder-be/internal/logger"
	"toolorder-be/internal/order"

	"go.uber.org/zap"
)

type Handler struct {
	store order.Store
}

func NewHandler(store order.Store) *Handler {
	return &Handler{store: store}
}

// CreateInvoice serves GET /createInvoice?orderId=<id> as a PDF. Error
// bodies are plain text: 400 when the parameter is missing, 404 when the
// order does not resolve, 500 on any rendering fault.
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("orderId")
	if orderID == "" {
		http.Error(w, "Missing orderId", http.StatusBadRequest)
		return
	}

	o, err := h.store.GetByID(r.Context(), orderID)
	if errors.Is(err, order.ErrOrderNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to load order for invoice",
			zap.String("order_id", orderID), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pdfBytes, err := Render(o)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to render invoice",
			zap.String("order_id", orderID), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=invoice_%s.pdf", orderID))
	_, _ = w.Write(pdfBytes)
}
