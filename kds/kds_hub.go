// Package kds keeps the live display feed: every connected back-office screen
// receives domain events and periodic dashboard figures.
package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/models"
)

// Event types
const (
	EventDishUpdate      = "dish_update"
	EventOrderUpdate     = "order_update"
	EventOrderDelete     = "order_delete"
	EventRatingUpdate    = "rating_update"
	EventStaffNotif      = "staff_notification"
	EventDashboardUpdate = "dashboard_update"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// KDSHub menampung semua client (staff, admin) yang terhubung
type KDSHub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
	log     logrus.FieldLogger
}

var kdsHub = KDSHub{
	clients: make(map[*websocket.Conn]string),
	log:     logrus.StandardLogger(),
}

// SetLogger replaces the hub logger.
func SetLogger(logger logrus.FieldLogger) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	if logger != nil {
		kdsHub.log = logger
	}
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	kdsHub.clients[conn] = role
	kdsHub.log.WithField("role", role).Debug("Display client registered")
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	if _, ok := kdsHub.clients[conn]; !ok {
		return
	}
	delete(kdsHub.clients, conn)
	conn.Close()
}

// ClientCount returns the number of connected clients.
func ClientCount() int {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()
	return len(kdsHub.clients)
}

func BroadcastDishUpdate(dish models.Dish) {
	broadcast(Message{Event: EventDishUpdate, Data: dish})
}

func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

func BroadcastOrderDelete(orderID int) {
	broadcast(Message{Event: EventOrderDelete, Data: map[string]int{"order_id": orderID}})
}

func BroadcastRatingUpdate(rating models.Rating) {
	broadcast(Message{Event: EventRatingUpdate, Data: rating})
}

// BroadcastStaffNotification -> notifikasi untuk staff
func BroadcastStaffNotification(message string) {
	broadcast(Message{Event: EventStaffNotif, Data: message})
}

// BroadcastDashboardUpdate -> update dashboard
func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{Event: EventDashboardUpdate, Data: data})
}

// broadcast -> fungsi internal untuk mengirim pesan. Client yang gagal
// menerima pesan langsung dilepas.
func broadcast(msg Message) {
	kdsHub.mutex.Lock()
	defer kdsHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		kdsHub.log.WithError(err).Error("Error marshaling message")
		return
	}

	kdsHub.log.WithFields(logrus.Fields{
		"event":   msg.Event,
		"clients": len(kdsHub.clients),
	}).Debug("Broadcasting message")

	for conn, role := range kdsHub.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			kdsHub.log.WithError(err).WithField("role", role).Warn("Dropping display client")
			delete(kdsHub.clients, conn)
			conn.Close()
		}
	}
}
