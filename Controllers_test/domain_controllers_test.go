package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/yummy-app/models"
)

func TestCustomerEndpoints(t *testing.T) {
	app := setupTestApp(t)
	token := staffToken(t)

	customer := map[string]interface{}{"cust_id": 1, "full_name": "Dana Levi", "age": 30, "phone": "0501234567"}

	w, _ := app.do(t, http.MethodPost, "/admin/customers", token, customer)
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = app.do(t, http.MethodPost, "/admin/customers", token, customer)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = app.do(t, http.MethodPost, "/admin/customers", token, map[string]interface{}{
		"cust_id": 2, "full_name": "Too Young", "age": 12, "phone": "0501234567",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp := app.do(t, http.MethodGet, "/admin/customers/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Customer
	decode(t, resp.Data, &got)
	assert.Equal(t, "Dana Levi", got.FullName)

	w, _ = app.do(t, http.MethodGet, "/admin/customers/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = app.do(t, http.MethodDelete, "/admin/customers/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = app.do(t, http.MethodGet, "/admin/customers/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDishEndpoints(t *testing.T) {
	app := setupTestApp(t)
	token := staffToken(t)

	w, _ := app.do(t, http.MethodPost, "/admin/dishes", token, map[string]interface{}{
		"dish_id": 1, "name": "Shakshuka", "price": 10, "is_active": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := app.do(t, http.MethodPatch, "/admin/dishes/1/price", token, map[string]interface{}{"price": 12.5})
	require.Equal(t, http.StatusOK, w.Code)
	var dish models.Dish
	decode(t, resp.Data, &dish)
	assert.Equal(t, 12.5, dish.Price)

	w, resp = app.do(t, http.MethodPatch, "/admin/dishes/1/status", token, map[string]interface{}{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, resp.Data, &dish)
	assert.False(t, dish.IsActive)

	// Harga dish yang tidak aktif tidak bisa diubah
	w, _ = app.do(t, http.MethodPatch, "/admin/dishes/1/price", token, map[string]interface{}{"price": 15})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = app.do(t, http.MethodPatch, "/admin/dishes/1/status", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = app.do(t, http.MethodGet, "/admin/dishes/7", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderEndpoints(t *testing.T) {
	app := setupTestApp(t)
	token := staffToken(t)

	w, _ := app.do(t, http.MethodPost, "/admin/customers", token, map[string]interface{}{
		"cust_id": 1, "full_name": "Dana Levi", "age": 30, "phone": "0501234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = app.do(t, http.MethodPost, "/admin/dishes", token, map[string]interface{}{
		"dish_id": 1, "name": "Shakshuka", "price": 10, "is_active": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := app.do(t, http.MethodPost, "/admin/orders", token, map[string]interface{}{
		"order_id": 1, "date": "2024-03-05T12:00:00Z", "delivery_fee": 4, "delivery_address": "12 Herzl St",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	decode(t, resp.Data, &order)
	assert.Equal(t, 2024, order.Date.Year())

	t.Run("Placement", func(t *testing.T) {
		w, _ := app.do(t, http.MethodPost, "/admin/orders/1/customer", token, map[string]interface{}{"cust_id": 1})
		require.Equal(t, http.StatusCreated, w.Code)

		w, _ = app.do(t, http.MethodPost, "/admin/orders/1/customer", token, map[string]interface{}{"cust_id": 1})
		assert.Equal(t, http.StatusConflict, w.Code)

		w, resp := app.do(t, http.MethodGet, "/admin/orders/1/customer", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var customer models.Customer
		decode(t, resp.Data, &customer)
		assert.Equal(t, 1, customer.ID)
	})

	t.Run("Lines", func(t *testing.T) {
		w, resp := app.do(t, http.MethodPost, "/admin/orders/1/dishes", token, map[string]interface{}{"dish_id": 1, "amount": 3})
		require.Equal(t, http.StatusCreated, w.Code)
		var items []models.OrderLine
		decode(t, resp.Data, &items)
		assert.Equal(t, []models.OrderLine{{OrderID: 1, DishID: 1, Amount: 3, Price: 10}}, items)

		w, _ = app.do(t, http.MethodPost, "/admin/orders/1/dishes", token, map[string]interface{}{"dish_id": 1, "amount": 1})
		assert.Equal(t, http.StatusConflict, w.Code)

		w, _ = app.do(t, http.MethodPost, "/admin/orders/1/dishes", token, map[string]interface{}{"dish_id": 9, "amount": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, _ = app.do(t, http.MethodDelete, "/admin/orders/1/dishes/1", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, resp = app.do(t, http.MethodGet, "/admin/orders/1/items", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		decode(t, resp.Data, &items)
		assert.Empty(t, items)
	})

	t.Run("Ratings", func(t *testing.T) {
		w, _ := app.do(t, http.MethodPost, "/admin/customers/1/ratings", token, map[string]interface{}{"dish_id": 1, "rating": 6})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = app.do(t, http.MethodPost, "/admin/customers/1/ratings", token, map[string]interface{}{"dish_id": 1, "rating": 4})
		require.Equal(t, http.StatusCreated, w.Code)

		w, resp := app.do(t, http.MethodGet, "/admin/customers/1/ratings", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var ratings []models.Rating
		decode(t, resp.Data, &ratings)
		assert.Equal(t, []models.Rating{{CustomerID: 1, DishID: 1, Score: 4}}, ratings)

		w, _ = app.do(t, http.MethodDelete, "/admin/customers/1/ratings/1", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		w, _ = app.do(t, http.MethodDelete, "/admin/customers/1/ratings/1", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	w, _ = app.do(t, http.MethodDelete, "/admin/orders/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = app.do(t, http.MethodGet, "/admin/orders/1", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminStatsAndDashboard(t *testing.T) {
	app := setupTestApp(t)
	token := adminToken(t)

	w, resp := app.do(t, http.MethodGet, "/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]int
	decode(t, resp.Data, &stats)
	assert.Equal(t, 0, stats["customers"])

	w, resp = app.do(t, http.MethodGet, "/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dashboard map[string]interface{}
	decode(t, resp.Data, &dashboard)
	assert.Contains(t, dashboard, "cumulative_profit")
	assert.NotNil(t, app.monitor.Last())
}
