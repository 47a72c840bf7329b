package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/yummy-app/kds"
	"github.com/yeremiapane/yummy-app/services"
	"github.com/yeremiapane/yummy-app/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

type DashboardController struct {
	Monitor *services.DashboardMonitor
}

func NewDashboardController(monitor *services.DashboardMonitor) *DashboardController {
	return &DashboardController{Monitor: monitor}
}

// GetDashboard -> GET /admin/dashboard, angka terakhir atau dihitung ulang
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	update := dc.Monitor.Last()
	if update == nil || c.Query("refresh") == "true" {
		var err error
		if update, err = dc.Monitor.Refresh(c.Request.Context()); err != nil {
			respondDomainError(c, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Dashboard", update)
}

// DashboardSocket -> endpoint WebSocket /ws/dashboard
func (dc *DashboardController) DashboardSocket(c *gin.Context) {
	role := c.GetString("role")
	if role != "staff" && role != "admin" {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	// Kirim angka terakhir sebelum client ikut menerima broadcast
	if last := dc.Monitor.Last(); last != nil {
		if err := ws.WriteJSON(kds.Message{Event: kds.EventDashboardUpdate, Data: last}); err != nil {
			ws.Close()
			return
		}
	}

	kds.RegisterClient(ws, role)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	kds.UnregisterClient(ws)
}
