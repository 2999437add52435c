package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolorder-be/internal/cart"
	"toolorder-be/internal/catalog"
	"toolorder-be/internal/category"
	"toolorder-be/internal/invoice"
	"toolorder-be/internal/middleware"
	"toolorder-be/internal/notice"
	"toolorder-be/internal/order"
	"toolorder-be/internal/user"
)

type fakeUserService struct {
	token string
	user  user.User
	err   error
}

func (f *fakeUserService) Login(ctx context.Context, companyCode, password, userID string) (string, user.User, error) {
	return f.token, f.user, f.err
}

func (f *fakeUserService) GetUser(ctx context.Context, userID string) (*user.User, error) {
	return &f.user, nil
}

type fakeCatalogService struct {
	products []catalog.Product
	err      error
	gotQ     catalog.SearchQuery
}

func (f *fakeCatalogService) GetProduct(ctx context.Context, id string) (*catalog.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, catalog.ErrProductNotFound
}

func (f *fakeCatalogService) ListProducts(ctx context.Context, q catalog.SearchQuery) ([]catalog.Product, error) {
	f.gotQ = q
	return f.products, f.err
}

func (f *fakeCatalogService) CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	if f.err != nil {
		return catalog.Product{}, f.err
	}
	p.ID = "new-id"
	return p, nil
}

func (f *fakeCatalogService) UpdateProduct(ctx context.Context, p catalog.Product) error {
	return f.err
}

func (f *fakeCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return f.err
}

type fakeCategoryService struct {
	categories []category.Category
	err        error
}

func (f *fakeCategoryService) ListCategories(ctx context.Context) ([]category.Category, error) {
	return f.categories, f.err
}

func (f *fakeCategoryService) AddCategory(ctx context.Context, name string) (category.Category, error) {
	if strings.TrimSpace(name) == "" {
		return category.Category{}, category.ErrEmptyName
	}
	return category.Category{ID: "cat-1", Name: name}, f.err
}

func (f *fakeCategoryService) AddSubcategory(ctx context.Context, categoryID, name string) (category.Subcategory, error) {
	if strings.TrimSpace(name) == "" {
		return category.Subcategory{}, category.ErrEmptyName
	}
	return category.Subcategory{ID: "sub-1", CategoryID: categoryID, Name: name}, f.err
}

func (f *fakeCategoryService) DeleteCategory(ctx context.Context, id string) error {
	return f.err
}

type fakeCartService struct {
	sess *cart.Session
	err  error
}

func (f *fakeCartService) GetSession(ctx context.Context, userID string) (*cart.Session, error) {
	return f.sess, f.err
}

func (f *fakeCartService) AddToCart(ctx context.Context, userID, productID string, quantity int) (*cart.Session, error) {
	return f.sess, f.err
}

func (f *fakeCartService) SetQuantity(ctx context.Context, userID, productID string, quantity int) (*cart.Session, error) {
	return f.sess, f.err
}

func (f *fakeCartService) RemoveFromCart(ctx context.Context, userID, productID string) (*cart.Session, error) {
	return f.sess, f.err
}

func (f *fakeCartService) ToggleFavorite(ctx context.Context, userID, productID string) (*cart.Session, error) {
	return f.sess, f.err
}

func (f *fakeCartService) SaveForLater(ctx context.Context, userID, productID string) (*cart.Session, error) {
	return f.sess, f.err
}

func (f *fakeCartService) MoveToCart(ctx context.Context, userID, productID string) (*cart.Session, error) {
	return f.sess, f.err
}

type fakeSessionStore struct {
	sess    *cart.Session
	loadErr error
	saveErr error
	saved   *cart.Session
}

func (f *fakeSessionStore) Load(ctx context.Context, userID string) (*cart.Session, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.sess != nil {
		return f.sess, nil
	}
	return cart.NewSession(userID), nil
}

func (f *fakeSessionStore) Save(ctx context.Context, s *cart.Session) error {
	f.saved = s
	return f.saveErr
}

type fakeOrderService struct {
	orderID string
	orders  []order.Order
	order   *order.Order
	err     error
	gotQ    order.SearchQuery
	gotStat order.Status
}

func (f *fakeOrderService) Submit(ctx context.Context, input order.SubmitInput, c *cart.Cart) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if c.IsEmpty() {
		return "", order.ErrEmptyCart
	}
	c.Clear()
	return f.orderID, nil
}

func (f *fakeOrderService) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	return f.order, f.err
}

func (f *fakeOrderService) GetOrderForUser(ctx context.Context, userID, id string, isAdmin bool) (*order.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.order == nil {
		return nil, order.ErrOrderNotFound
	}
	if !isAdmin && f.order.UserID != userID {
		return nil, order.ErrUnauthorized
	}
	return f.order, nil
}

func (f *fakeOrderService) SearchByUser(ctx context.Context, userID string, q order.SearchQuery) ([]order.Order, error) {
	f.gotQ = q
	return f.orders, f.err
}

func (f *fakeOrderService) SearchAll(ctx context.Context, q order.SearchQuery) ([]order.Order, error) {
	f.gotQ = q
	return f.orders, f.err
}

func (f *fakeOrderService) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	f.gotStat = status
	if f.err != nil {
		return f.err
	}
	if !status.Valid() {
		return order.ErrInvalidStatus
	}
	return nil
}

type fakeNoticeService struct {
	notices []notice.Notice
	err     error
}

func (f *fakeNoticeService) ListNotices(ctx context.Context) ([]notice.Notice, error) {
	return f.notices, f.err
}

func (f *fakeNoticeService) CreateNotice(ctx context.Context, title, body string) (notice.Notice, error) {
	if strings.TrimSpace(title) == "" {
		return notice.Notice{}, notice.ErrEmptyTitle
	}
	return notice.Notice{ID: "n1", Title: title, Body: body}, f.err
}

func (f *fakeNoticeService) UpdateNotice(ctx context.Context, n notice.Notice) error {
	return f.err
}

func (f *fakeNoticeService) DeleteNotice(ctx context.Context, id string) error {
	return f.err
}

type fakeInvoiceStore struct {
	order *order.Order
}

func (f *fakeInvoiceStore) Create(ctx context.Context, o *order.Order) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeInvoiceStore) GetByID(ctx context.Context, id string) (*order.Order, error) {
	if f.order == nil || f.order.ID != id {
		return nil, order.ErrOrderNotFound
	}
	return f.order, nil
}

func (f *fakeInvoiceStore) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return nil, nil
}

func (f *fakeInvoiceStore) List(ctx context.Context) ([]order.Order, error) {
	return nil, nil
}

func (f *fakeInvoiceStore) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	return nil
}

func newTestAPI() (*API, *fakeOrderService, *fakeSessionStore) {
	orders := &fakeOrderService{orderID: "order-1"}
	sessions := &fakeSessionStore{}
	a := &API{
		Users:      &fakeUserService{},
		Catalog:    &fakeCatalogService{},
		Categories: &fakeCategoryService{},
		Carts:      &fakeCartService{sess: cart.NewSession("u1")},
		Sessions:   sessions,
		Orders:     orders,
		Notices:    &fakeNoticeService{},
		Invoices:   invoice.NewHandler(&fakeInvoiceStore{}),
	}
	return a, orders, sessions
}

func asUser(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.ClaimsKey, &user.CustomClaims{
		UserID:      userID,
		CompanyCode: "C001",
		CompanyName: "Acme Co",
		Role:        string(user.RoleUser),
	})
	return r.WithContext(ctx)
}

func asAdmin(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.ClaimsKey, &user.CustomClaims{
		UserID:      userID,
		CompanyCode: "C001",
		CompanyName: "Acme Co",
		Role:        string(user.RoleAdmin),
	})
	return r.WithContext(ctx)
}

func TestLogin(t *testing.T) {
	a, _, _ := newTestAPI()
	mux := a.Routes()

	t.Run("success", func(t *testing.T) {
		a.Users = &fakeUserService{token: "tok", user: user.User{UserID: "u1"}}

		body := bytes.NewBufferString(`{"company_code":"C001","password":"pw","user_id":"u1"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", body)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "tok", resp.Token)
		assert.Equal(t, "u1", resp.User.UserID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		a.Users = &fakeUserService{err: user.ErrInvalidCredentials}

		body := bytes.NewBufferString(`{"company_code":"C001","password":"bad","user_id":"u1"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", body)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		body := bytes.NewBufferString(`{"company_code":"C001"}`)
		req := httptest.NewRequest(http.MethodPost, "/login", body)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListProducts(t *testing.T) {
	a, _, _ := newTestAPI()
	a.Catalog = &fakeCatalogService{products: []catalog.Product{
		{ID: "p1", Name: "Drill", Price: 1500},
	}}

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []catalog.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Drill", products[0].Name)
}

func TestListProductsQueryParsing(t *testing.T) {
	a, _, _ := newTestAPI()
	fake := &fakeCatalogService{}
	a.Catalog = fake

	req := httptest.NewRequest(http.MethodGet,
		"/products?search=ドリル&category=電動工具&price_min=1000&price_max=20000", nil)
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ドリル", fake.gotQ.Keyword)
	assert.Equal(t, "電動工具", fake.gotQ.Category)
	require.NotNil(t, fake.gotQ.PriceMin)
	require.NotNil(t, fake.gotQ.PriceMax)
	assert.Equal(t, 1000, *fake.gotQ.PriceMin)
	assert.Equal(t, 20000, *fake.gotQ.PriceMax)
}

func TestCategories(t *testing.T) {
	t.Run("list is public", func(t *testing.T) {
		a, _, _ := newTestAPI()
		a.Categories = &fakeCategoryService{categories: []category.Category{
			{ID: "cat-1", Name: "電動工具", Children: []category.Subcategory{
				{ID: "sub-1", CategoryID: "cat-1", Name: "丸ノコ"},
			}},
		}}

		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var categories []category.Category
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
		require.Len(t, categories, 1)
		require.Len(t, categories[0].Children, 1)
	})

	t.Run("create requires admin", func(t *testing.T) {
		a, _, _ := newTestAPI()

		body := bytes.NewBufferString(`{"name":"電動工具"}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/admin/categories", body), "u1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin creates parent and child", func(t *testing.T) {
		a, _, _ := newTestAPI()
		mux := a.Routes()

		body := bytes.NewBufferString(`{"name":"電動工具"}`)
		req := asAdmin(httptest.NewRequest(http.MethodPost, "/admin/categories", body), "admin1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		body = bytes.NewBufferString(`{"name":"丸ノコ"}`)
		req = asAdmin(httptest.NewRequest(http.MethodPost, "/admin/categories/cat-1/subcategories", body), "admin1")
		rec = httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var s category.Subcategory
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
		assert.Equal(t, "cat-1", s.CategoryID)
	})

	t.Run("empty name is a 400", func(t *testing.T) {
		a, _, _ := newTestAPI()

		body := bytes.NewBufferString(`{"name":" "}`)
		req := asAdmin(httptest.NewRequest(http.MethodPost, "/admin/categories", body), "admin1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetProductNotFound(t *testing.T) {
	a, _, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/products/nope", nil)
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminProductRequiresAdmin(t *testing.T) {
	a, _, _ := newTestAPI()
	mux := a.Routes()

	t.Run("anonymous gets 401", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Drill","price":1500}`)
		req := httptest.NewRequest(http.MethodPost, "/admin/products", body)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("plain user gets 403", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Drill","price":1500}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/admin/products", body), "u1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin creates", func(t *testing.T) {
		body := bytes.NewBufferString(`{"name":"Drill","price":1500}`)
		req := asAdmin(httptest.NewRequest(http.MethodPost, "/admin/products", body), "admin1")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var p catalog.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, "new-id", p.ID)
	})
}

func TestAddToCart(t *testing.T) {
	a, _, _ := newTestAPI()
	sess := cart.NewSession("u1")
	sess.Cart.Add(catalog.Product{ID: "p1", Name: "Drill", Price: 1500}, 2)
	a.Carts = &fakeCartService{sess: sess}

	body := bytes.NewBufferString(`{"product_id":"p1","quantity":2}`)
	req := asUser(httptest.NewRequest(http.MethodPost, "/cart/items", body), "u1")
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got cart.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Cart.Lines, 1)
	assert.Equal(t, 2, got.Cart.Lines[0].Quantity)
}

func TestCartRequiresAuth(t *testing.T) {
	a, _, _ := newTestAPI()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitOrder(t *testing.T) {
	t.Run("success clears and saves the cart", func(t *testing.T) {
		a, _, sessions := newTestAPI()
		sess := cart.NewSession("u1")
		sess.Cart.Add(catalog.Product{ID: "p1", Name: "Drill", Price: 1500}, 2)
		sessions.sess = sess

		body := bytes.NewBufferString(`{"delivery_location":"Tokyo","site_name":"Site A","person_name":"Sato"}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/orders", body), "u1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp submitOrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "order-1", resp.OrderID)

		require.NotNil(t, sessions.saved)
		assert.True(t, sessions.saved.Cart.IsEmpty())
	})

	t.Run("empty cart is a 400", func(t *testing.T) {
		a, _, _ := newTestAPI()

		body := bytes.NewBufferString(`{"delivery_location":"Tokyo"}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/orders", body), "u1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		a, orders, sessions := newTestAPI()
		sess := cart.NewSession("u1")
		sess.Cart.Add(catalog.Product{ID: "p1", Price: 1500}, 1)
		sessions.sess = sess
		orders.err = order.ErrSubmissionFailed

		body := bytes.NewBufferString(`{}`)
		req := asUser(httptest.NewRequest(http.MethodPost, "/orders", body), "u1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Nil(t, sessions.saved)
	})
}

func TestGetOrder(t *testing.T) {
	ordered := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("owner reads own order", func(t *testing.T) {
		a, orders, _ := newTestAPI()
		orders.order = &order.Order{ID: "o1", UserID: "u1", OrderedAt: ordered}

		req := asUser(httptest.NewRequest(http.MethodGet, "/orders/o1", nil), "u1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got order.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "o1", got.ID)
	})

	t.Run("foreign order is a 403", func(t *testing.T) {
		a, orders, _ := newTestAPI()
		orders.order = &order.Order{ID: "o1", UserID: "someone-else"}

		req := asUser(httptest.NewRequest(http.MethodGet, "/orders/o1", nil), "u1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin reads any order", func(t *testing.T) {
		a, orders, _ := newTestAPI()
		orders.order = &order.Order{ID: "o1", UserID: "someone-else"}

		req := asAdmin(httptest.NewRequest(http.MethodGet, "/orders/o1", nil), "admin1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing order is a 404", func(t *testing.T) {
		a, _, _ := newTestAPI()

		req := asUser(httptest.NewRequest(http.MethodGet, "/orders/nope", nil), "u1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListOrdersQueryParsing(t *testing.T) {
	a, orders, _ := newTestAPI()

	req := asUser(httptest.NewRequest(http.MethodGet,
		"/orders?keyword=site&product=drill&person=sato&status=出荷済&from=2024-06-01&to=2024-06-30", nil), "u1")
	rec := httptest.NewRecorder()
	a.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "site", orders.gotQ.Keyword)
	assert.Equal(t, "drill", orders.gotQ.ProductName)
	assert.Equal(t, "sato", orders.gotQ.Person)
	assert.Equal(t, order.StatusShipped, orders.gotQ.Status)
	require.NotNil(t, orders.gotQ.From)
	require.NotNil(t, orders.gotQ.To)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *orders.gotQ.From)
	// The "to" day is inclusive: the bound sits at the end of that day.
	assert.True(t, orders.gotQ.To.After(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)))
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		a, orders, _ := newTestAPI()

		body := bytes.NewBufferString(`{"status":"出荷済"}`)
		req := asAdmin(httptest.NewRequest(http.MethodPut, "/admin/orders/o1/status", body), "admin1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, order.StatusShipped, orders.gotStat)
	})

	t.Run("invalid status is a 400", func(t *testing.T) {
		a, _, _ := newTestAPI()

		body := bytes.NewBufferString(`{"status":"bogus"}`)
		req := asAdmin(httptest.NewRequest(http.MethodPut, "/admin/orders/o1/status", body), "admin1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("plain user is a 403", func(t *testing.T) {
		a, _, _ := newTestAPI()

		body := bytes.NewBufferString(`{"status":"出荷済"}`)
		req := asUser(httptest.NewRequest(http.MethodPut, "/admin/orders/o1/status", body), "u1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestNotices(t *testing.T) {
	t.Run("list is public", func(t *testing.T) {
		a, _, _ := newTestAPI()
		a.Notices = &fakeNoticeService{notices: []notice.Notice{{ID: "n1", Title: "Maintenance"}}}

		req := httptest.NewRequest(http.MethodGet, "/notices", nil)
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var notices []notice.Notice
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notices))
		require.Len(t, notices, 1)
	})

	t.Run("empty title is a 400", func(t *testing.T) {
		a, _, _ := newTestAPI()

		body := bytes.NewBufferString(`{"title":"  ","body":"text"}`)
		req := asAdmin(httptest.NewRequest(http.MethodPost, "/admin/notices", body), "admin1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		a, _, _ := newTestAPI()

		body := bytes.NewBufferString(`{"title":"Maintenance","body":"Sunday 2am"}`)
		req := asAdmin(httptest.NewRequest(http.MethodPost, "/admin/notices", body), "admin1")
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var n notice.Notice
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
		assert.Equal(t, "Maintenance", n.Title)
	})
}

func TestCreateInvoiceRoute(t *testing.T) {
	a, _, _ := newTestAPI()
	a.Invoices = invoice.NewHandler(&fakeInvoiceStore{order: &order.Order{
		ID:          "o1",
		CompanyName: "Acme Co",
		PersonName:  "Sato",
		Items:       []order.LineItem{{ProductID: "p1", Name: "Drill", Quantity: 2, Price: 1500}},
		OrderedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:      order.StatusReceived,
	}})
	mux := a.Routes()

	t.Run("renders a pdf", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/createInvoice?orderId=o1", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "invoice_o1.pdf")
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("missing orderId", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/createInvoice", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/createInvoice?orderId=nope", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
