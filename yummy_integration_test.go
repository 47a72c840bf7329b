package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/yummy-app/analytics"
	"github.com/yeremiapane/yummy-app/config"
	"github.com/yeremiapane/yummy-app/database"
	"github.com/yeremiapane/yummy-app/kds"
	"github.com/yeremiapane/yummy-app/router"
	"github.com/yeremiapane/yummy-app/services"
	"github.com/yeremiapane/yummy-app/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger() // Ensure logger is ready for tests
	os.Exit(m.Run())
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type client struct {
	t     *testing.T
	base  string
	token string
}

func (c *client) call(method, path string, body interface{}, wantStatus int) json.RawMessage {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(c.t, err)
	}

	req, err := http.NewRequest(method, c.base+path, bytes.NewBuffer(payload))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var out apiResponse
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(c.t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, out.Message)
	return out.Data
}

// startServer menjalankan aplikasi lengkap di atas SQLite in-memory
func startServer(t *testing.T) string {
	db, err := config.InitDB(&config.Config{DBDriver: config.DriverSQLite, DBDSN: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	store := database.NewStore(db, utils.InfoLogger)
	require.NoError(t, store.Migrate(context.Background()))

	engine := analytics.NewEngine(store, utils.InfoLogger)
	monitor := services.NewDashboardMonitor(engine, time.Minute, utils.InfoLogger)

	r := router.SetupRouter(store, engine, monitor, router.Options{Logger: utils.InfoLogger})
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server.URL
}

// TestEndToEndIntegration menguji flow utama:
// 0. Register & login -> token
// 1. Buat customer, dish, order lewat API admin
// 2. Naikkan harga dish lalu buat order baru
// 3. Cek hasil analytics, termasuk kenaikan harga yang tidak menguntungkan
// 4. Dashboard WebSocket menerima event perubahan dish
func TestEndToEndIntegration(t *testing.T) {
	base := startServer(t)
	api := &client{t: t, base: base}

	// 0. Register & login
	api.call(http.MethodPost, "/register", map[string]string{
		"name": "Admin", "email": "admin@yummy.test", "password": "secret-pass", "role": "admin",
	}, http.StatusCreated)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(api.call(http.MethodPost, "/login", map[string]string{
		"email": "admin@yummy.test", "password": "secret-pass",
	}, http.StatusOK), &login))
	api.token = login.Token

	// 1. Data awal
	for _, id := range []int{1, 2} {
		api.call(http.MethodPost, "/admin/customers", map[string]interface{}{
			"cust_id": id, "full_name": "Customer Name", "age": 40, "phone": "0541234567",
		}, http.StatusCreated)
	}
	api.call(http.MethodPost, "/admin/dishes", map[string]interface{}{
		"dish_id": 1, "name": "Schnitzel", "price": 8, "is_active": true,
	}, http.StatusCreated)

	api.call(http.MethodPost, "/admin/orders", map[string]interface{}{
		"order_id": 1, "date": "2024-02-10T18:00:00Z", "delivery_fee": 0, "delivery_address": "Dizengoff 50",
	}, http.StatusCreated)
	api.call(http.MethodPost, "/admin/orders/1/customer", map[string]int{"cust_id": 1}, http.StatusCreated)
	api.call(http.MethodPost, "/admin/orders/1/dishes", map[string]int{"dish_id": 1, "amount": 20}, http.StatusCreated)

	// 2. Harga naik, order berikutnya memakai harga baru
	api.call(http.MethodPatch, "/admin/dishes/1/price", map[string]float64{"price": 10}, http.StatusOK)
	api.call(http.MethodPost, "/admin/orders", map[string]interface{}{
		"order_id": 2, "date": "2024-05-10T18:00:00Z", "delivery_fee": 5, "delivery_address": "Dizengoff 50",
	}, http.StatusCreated)
	api.call(http.MethodPost, "/admin/orders/2/customer", map[string]int{"cust_id": 2}, http.StatusCreated)
	api.call(http.MethodPost, "/admin/orders/2/dishes", map[string]int{"dish_id": 1, "amount": 10}, http.StatusCreated)

	// 3. Analytics
	var items []struct {
		Price float64 `json:"price"`
	}
	require.NoError(t, json.Unmarshal(api.call(http.MethodGet, "/admin/orders/1/items", nil, http.StatusOK), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 8.0, items[0].Price)

	var totals []analytics.OrderTotal
	require.NoError(t, json.Unmarshal(api.call(http.MethodGet, "/analytics/orders/totals", nil, http.StatusOK), &totals))
	assert.Equal(t, []analytics.OrderTotal{{OrderID: 1, Total: 160}, {OrderID: 2, Total: 105}}, totals)

	var ids []int
	require.NoError(t, json.Unmarshal(api.call(http.MethodGet, "/analytics/dishes/non-worth-price-increase", nil, http.StatusOK), &ids))
	assert.Equal(t, []int{1}, ids)

	require.NoError(t, json.Unmarshal(api.call(http.MethodGet, "/analytics/customers/max-avg-spend", nil, http.StatusOK), &ids))
	assert.Equal(t, []int{1}, ids)

	var cumulative []analytics.MonthlyProfit
	require.NoError(t, json.Unmarshal(api.call(http.MethodGet, "/analytics/profit/cumulative?year=2024", nil, http.StatusOK), &cumulative))
	require.Len(t, cumulative, 12)
	assert.InDelta(t, 265.0, cumulative[0].Profit, 1e-9) // Desember
	assert.InDelta(t, 160.0, cumulative[9].Profit, 1e-9) // Maret
	assert.InDelta(t, 0.0, cumulative[11].Profit, 1e-9)  // Januari

	// 4. Dashboard WebSocket
	wsURL := "ws" + strings.TrimPrefix(base, "http") + "/ws/dashboard?token=" + api.token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return kds.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	api.call(http.MethodPatch, "/admin/dishes/1/status", map[string]bool{"is_active": false}, http.StatusOK)

	var msg struct {
		Event string `json:"event"`
		Data  struct {
			ID       int  `json:"dish_id"`
			IsActive bool `json:"is_active"`
		} `json:"data"`
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, kds.EventDishUpdate, msg.Event)
	assert.Equal(t, 1, msg.Data.ID)
	assert.False(t, msg.Data.IsActive)

	// Dish tidak aktif tidak lagi dihitung
	require.NoError(t, json.Unmarshal(api.call(http.MethodGet, "/analytics/dishes/non-worth-price-increase", nil, http.StatusOK), &ids))
	assert.Empty(t, ids)
}
