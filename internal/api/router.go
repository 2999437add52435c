package api

import (
	"net/http"

	"toolorder-be/internal/cart"
	"toolorder-be/internal/catalog"
	"toolorder-be/internal/category"
	"toolorder-be/internal/invoice"
	"toolorder-be/internal/logger"
	"toolorder-be/internal/middleware"
	"toolorder-be/internal/notice"
	"toolorder-be/internal/order"
	"toolorder-be/internal/user"
	"toolorder-be/internal/utils"
)

type API struct {
	Users      user.Service
	Catalog    catalog.Service
	Categories category.Service
	Carts      cart.Service
	Sessions   cart.Store
	Orders     order.Service
	Notices    notice.Service
	Invoices   *invoice.Handler
}

func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /login", a.Login)

	mux.HandleFunc("GET /products", a.ListProducts)
	mux.HandleFunc("GET /products/{id}", a.GetProduct)
	mux.HandleFunc("POST /admin/products", a.CreateProduct)
	mux.HandleFunc("PUT /admin/products/{id}", a.UpdateProduct)
	mux.HandleFunc("DELETE /admin/products/{id}", a.DeleteProduct)

	mux.HandleFunc("GET /categories", a.ListCategories)
	mux.HandleFunc("POST /admin/categories", a.CreateCategory)
	mux.HandleFunc("POST /admin/categories/{id}/subcategories", a.CreateSubcategory)
	mux.HandleFunc("DELETE /admin/categories/{id}", a.DeleteCategory)

	mux.HandleFunc("GET /cart", a.GetCart)
	mux.HandleFunc("POST /cart/items", a.AddToCart)
	mux.HandleFunc("PUT /cart/items/{productID}", a.SetCartQuantity)
	mux.HandleFunc("DELETE /cart/items/{productID}", a.RemoveFromCart)
	mux.HandleFunc("POST /cart/items/{productID}/later", a.SaveForLater)
	mux.HandleFunc("POST /cart/later/{productID}/restore", a.MoveToCart)
	mux.HandleFunc("GET /favorites", a.ListFavorites)
	mux.HandleFunc("POST /favorites/{productID}", a.ToggleFavorite)

	mux.HandleFunc("POST /orders", a.SubmitOrder)
	mux.HandleFunc("GET /orders", a.ListOrders)
	mux.HandleFunc("GET /orders/{id}", a.GetOrder)
	mux.HandleFunc("GET /admin/orders", a.AdminListOrders)
	mux.HandleFunc("PUT /admin/orders/{id}/status", a.UpdateOrderStatus)

	mux.HandleFunc("GET /notices", a.ListNotices)
	mux.HandleFunc("POST /admin/notices", a.CreateNotice)
	mux.HandleFunc("PUT /admin/notices/{id}", a.UpdateNotice)
	mux.HandleFunc("DELETE /admin/notices/{id}", a.DeleteNotice)

	// Legacy path the storefront already links to.
	mux.HandleFunc("GET /createInvoice", a.Invoices.CreateInvoice)

	return mux
}

// Handler wraps the routes in the full middleware chain.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.Routes()
	h = middleware.LoggingMiddleware(h)
	h = middleware.RateLimitMiddleware(h)
	h = middleware.AuthMiddleware(h)
	h = middleware.CORS(h)
	h = logger.RequestIDMiddleware(h)
	return h
}

// requireUser writes a 401 and returns false when the request carries no
// authenticated identity.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// requireAdmin writes a 403 and returns false unless the token has the
// admin role.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := requireUser(w, r); !ok {
		return false
	}
	if !middleware.IsAdmin(r.Context()) {
		utils.WriteJSONError(w, "forbidden: admin only", http.StatusForbidden)
		return false
	}
	return true
}
