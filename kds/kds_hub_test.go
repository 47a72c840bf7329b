package kds

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/yummy-app/models"
)

func startHubServer(t *testing.T) string {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		RegisterClient(conn, "admin")
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		UnregisterClient(conn)
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func waitForClients(t *testing.T, n int) {
	require.Eventually(t, func() bool { return ClientCount() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestBroadcastReachesClients(t *testing.T) {
	url := startHubServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	waitForClients(t, 1)

	BroadcastDishUpdate(models.Dish{ID: 3, Name: "Falafel", Price: 9.5, IsActive: true})

	var msg struct {
		Event string      `json:"event"`
		Data  models.Dish `json:"data"`
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, EventDishUpdate, msg.Event)
	assert.Equal(t, 3, msg.Data.ID)
	assert.Equal(t, 9.5, msg.Data.Price)

	conn.Close()
	waitForClients(t, 0)
}

func TestBroadcastWithoutClients(t *testing.T) {
	assert.NotPanics(t, func() {
		BroadcastStaffNotification("nothing listens")
	})
}
