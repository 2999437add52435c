package invoice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolorder-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	orders map[string]*order.Order
	err    error
}

func (f *fakeStore) Create(ctx context.Context, o *order.Order) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*order.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, order.ErrOrderNotFound
}

func (f *fakeStore) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return nil, nil
}

func (f *fakeStore) List(ctx context.Context) ([]order.Order, error) { return nil, nil }

func (f *fakeStore) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	return nil
}

func TestCreateInvoiceHandler(t *testing.T) {
	store := &fakeStore{orders: map[string]*order.Order{
		"order-1": sampleOrder(),
	}}
	h := NewHandler(store)

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/createInvoice?orderId=order-1", nil)
		w := httptest.NewRecorder()

		h.CreateInvoice(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, "inline; filename=invoice_order-1.pdf", w.Header().Get("Content-Disposition"))
		require.True(t, w.Body.Len() > 4)
		assert.Equal(t, "%PDF", w.Body.String()[:4])
	})

	t.Run("MissingOrderId", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/createInvoice", nil)
		w := httptest.NewRecorder()

		h.CreateInvoice(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing orderId")
	})

	t.Run("OrderNotFound", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/createInvoice?orderId=doesnotexist", nil)
		w := httptest.NewRecorder()

		h.CreateInvoice(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Order not found")
	})

	t.Run("StoreFault", func(t *testing.T) {
		broken := &fakeStore{err: errors.New("db down")}
		h := NewHandler(broken)

		req := httptest.NewRequest("GET", "/createInvoice?orderId=order-1", nil)
		w := httptest.NewRecorder()

		h.CreateInvoice(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal Server Error")
	})

	t.Run("RenderFault", func(t *testing.T) {
		empty := sampleOrder()
		empty.Items = nil
		store := &fakeStore{orders: map[string]*order.Order{"order-empty": empty}}
		h := NewHandler(store)

		req := httptest.NewRequest("GET", "/createInvoice?orderId=order-empty", nil)
		w := httptest.NewRecorder()

		h.CreateInvoice(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
