package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/config"
	"github.com/junaidrashid-git/cornerstore-api/database/dbtest"
	"github.com/junaidrashid-git/cornerstore-api/dto"
	"github.com/junaidrashid-git/cornerstore-api/models"
	"github.com/junaidrashid-git/cornerstore-api/repository"
	"github.com/junaidrashid-git/cornerstore-api/routes"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := dbtest.Seeded(t)
	cfg := &config.AppConfig{AllowOrigins: []string{"*"}}
	return &testServer{router: routes.NewRouter(cfg, repository.New(db)), db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *testServer) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}

func TestGetOrderEndToEnd(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/orders/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order dto.OrderView
	decode(t, w, &order)
	assert.EqualValues(t, 1, order.CashierID)
	require.NotNil(t, order.PaidOnDate)
	require.NotNil(t, order.Cashier)
	assert.Equal(t, "Rick Flair", order.Cashier.FullName)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("5.00")), "total %s", order.Total)

	require.NotNil(t, order.OrderLines)
	require.Len(t, *order.OrderLines, 2)
	cheese, bread := (*order.OrderLines)[0], (*order.OrderLines)[1]
	assert.Equal(t, 1, cheese.Quantity)
	require.NotNil(t, cheese.Product)
	assert.Equal(t, "Cheese", cheese.Product.Name)
	assert.True(t, cheese.Product.Price.Equal(decimal.RequireFromString("3.00")))
	require.NotNil(t, cheese.Product.Category)
	assert.Equal(t, "Cooking", cheese.Product.Category.Name)
	assert.Equal(t, "Bread", bread.Product.Name)
	assert.True(t, bread.Product.Price.Equal(decimal.RequireFromString("2.00")))
}

func TestGetOrderErrors(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/orders/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())

	w = s.do(t, http.MethodGet, "/orders/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []dto.OrderView
	decode(t, w, &orders)
	require.Len(t, orders, 3)
	for _, o := range orders {
		assert.Nil(t, o.OrderLines, "list view carries no lines")
		assert.NotNil(t, o.Cashier)
	}
	assert.True(t, orders[1].Total.Equal(decimal.NewFromInt(12)))
	assert.NotContains(t, w.Body.String(), "orderLines")

	w = s.do(t, http.MethodGet, "/orders?orderDate=2025-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &orders)
	require.Len(t, orders, 1)
	assert.EqualValues(t, 1, orders[0].ID)

	w = s.do(t, http.MethodGet, "/orders?orderDate=2030-06-01T12:00:00", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = s.do(t, http.MethodGet, "/orders?orderDate=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrder(t *testing.T) {
	s := newServer(t)

	body := map[string]interface{}{
		"cashierId":  2,
		"paidOnDate": "2025-02-14T09:00:00Z",
		"orderLines": []map[string]interface{}{
			// a denormalized product object is ignored; the price comes from the store
			{"productId": 3, "quantity": 2, "product": map[string]interface{}{"id": 3, "price": "0.01"}},
			{"productId": 4, "quantity": 1},
		},
	}
	w := s.do(t, http.MethodPost, "/orders", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order dto.OrderView
	decode(t, w, &order)
	assert.Equal(t, "/orders/4", w.Header().Get("Location"))
	assert.EqualValues(t, 4, order.ID)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(16)), "total %s", order.Total)
	require.NotNil(t, order.OrderLines)
	assert.Len(t, *order.OrderLines, 2)

	w = s.do(t, http.MethodGet, "/orders/4", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	s := newServer(t)
	orders, lines := s.count(t, &models.Order{}), s.count(t, &models.OrderLine{})

	w := s.do(t, http.MethodPost, "/orders", map[string]interface{}{
		"cashierId": 1,
		"orderLines": []map[string]interface{}{
			{"productId": 1, "quantity": 1},
			{"productId": 404, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "404")

	assert.Equal(t, orders, s.count(t, &models.Order{}))
	assert.Equal(t, lines, s.count(t, &models.OrderLine{}))
}

func TestCreateOrderBindingErrors(t *testing.T) {
	s := newServer(t)

	for name, body := range map[string]interface{}{
		"missing cashier": map[string]interface{}{"orderLines": []interface{}{}},
		"zero quantity": map[string]interface{}{
			"cashierId":  1,
			"orderLines": []map[string]interface{}{{"productId": 1, "quantity": 0}},
		},
		"not json": "][",
	} {
		t.Run(name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/orders", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDeleteOrder(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodDelete, "/orders/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/orders/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var lines int64
	require.NoError(t, s.db.Model(&models.OrderLine{}).Where("order_id = ?", 1).Count(&lines).Error)
	assert.Zero(t, lines)

	w = s.do(t, http.MethodDelete, "/orders/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductsSearch(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/products?search=COOK", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var products []dto.ProductView
	decode(t, w, &products)
	require.Len(t, products, 2)
	assert.Equal(t, "Cheese", products[0].Name)
	assert.Equal(t, "Cooking", products[0].Category.Name)

	w = s.do(t, http.MethodGet, "/products?search=zzz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	for _, term := range []string{"%25", "_", "zz%25"} {
		w = s.do(t, http.MethodGet, "/products?search="+term, nil)
		require.Equal(t, http.StatusOK, w.Code, term)
		assert.JSONEq(t, "[]", w.Body.String(), term)
	}

	w = s.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":       "Snack_Pack",
		"price":      "1.00",
		"categoryId": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/products?search=_", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products = nil
	decode(t, w, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Snack_Pack", products[0].Name)
}

func TestCreateProductThenList(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/products", map[string]interface{}{
		"name":       "Pretzels",
		"price":      3.5,
		"brand":      "Snyder's",
		"categoryId": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created dto.ProductView
	decode(t, w, &created)
	assert.Equal(t, "/products/5", w.Header().Get("Location"))
	assert.True(t, created.Price.Equal(decimal.RequireFromString("3.5")))
	require.NotNil(t, created.Category)
	assert.Equal(t, "Snacks", created.Category.Name)

	w = s.do(t, http.MethodGet, "/products", nil)
	var products []dto.ProductView
	decode(t, w, &products)
	matches := 0
	for _, p := range products {
		if p.ID == created.ID {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestCreateProductErrors(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/products", map[string]interface{}{"name": "Nothing", "price": "1", "categoryId": 77})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "categoryId")

	w = s.do(t, http.MethodPost, "/products", map[string]interface{}{"price": "1", "categoryId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/products", map[string]interface{}{"name": "Debt", "price": "-2", "categoryId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.EqualValues(t, 4, s.count(t, &models.Product{}))
}

func TestUpdateProduct(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPut, "/products/1", map[string]interface{}{
		"name":       "Cheddar",
		"price":      "3.75",
		"brand":      "Tillamook",
		"categoryId": 1,
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var product dto.ProductView
	decode(t, w, &product)
	assert.Equal(t, "Cheddar", product.Name)
	assert.Equal(t, "Tillamook", product.Brand)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("3.75")))
	assert.EqualValues(t, 1, product.CategoryID)
}

func TestUpdateProductNotFound(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPut, "/products/99", map[string]interface{}{
		"name":       "Ghost",
		"price":      "1",
		"categoryId": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
	assert.EqualValues(t, 4, s.count(t, &models.Product{}))
}

func TestCashiers(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/cashiers", map[string]string{"firstName": "Dana", "lastName": "Scully"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/cashiers/4", w.Header().Get("Location"))

	var created dto.CashierView
	decode(t, w, &created)
	assert.Equal(t, "Dana Scully", created.FullName)

	w = s.do(t, http.MethodPost, "/cashiers", map[string]string{"firstName": "Fox"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/cashiers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var cashier dto.CashierView
	decode(t, w, &cashier)
	assert.Equal(t, "Rick Flair", cashier.FullName)
	require.NotNil(t, cashier.Orders)
	orders := *cashier.Orders
	require.Len(t, orders, 2)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(5)))
	assert.True(t, orders[1].Total.Equal(decimal.NewFromInt(12)))
	require.Len(t, *orders[1].OrderLines, 1)
	assert.Equal(t, "Nacho Cheese Tortilla Chips", (*orders[1].OrderLines)[0].Product.Name)

	w = s.do(t, http.MethodGet, "/cashiers/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"orders":[]`)

	w = s.do(t, http.MethodGet, "/cashiers/12", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderWithoutLinesKeepsEmptyLines(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodPost, "/orders", map[string]interface{}{"cashierId": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"orderLines":[]`)

	w = s.do(t, http.MethodGet, "/orders/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"orderLines":[]`)

	w = s.do(t, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "orderLines")
}

func TestCategories(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []dto.CategoryView
	decode(t, w, &categories)
	assert.Equal(t, []dto.CategoryView{{ID: 1, Name: "Cooking"}, {ID: 2, Name: "Snacks"}, {ID: 3, Name: "Auto"}}, categories)
}

func TestExportProducts(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/products/export?search=snack", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "products.xlsx")

	file, err := xlsx.OpenBinary(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	rows := file.Sheets[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0].Cells[1].Value)
	assert.Equal(t, "Nacho Cheese Tortilla Chips", rows[1].Cells[1].Value)
	assert.Equal(t, "Snacks", rows[1].Cells[5].Value)
}

func TestHealthz(t *testing.T) {
	s := newServer(t)

	w := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
