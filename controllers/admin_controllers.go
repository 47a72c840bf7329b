package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/yummy-app/database"
	"github.com/yeremiapane/yummy-app/kds"
	"github.com/yeremiapane/yummy-app/utils"
)

type AdminController struct {
	Store *database.Store
}

func NewAdminController(store *database.Store) *AdminController {
	return &AdminController{Store: store}
}

// ClearSchema -> POST /admin/schema/clear, hanya untuk admin
func (ac *AdminController) ClearSchema(c *gin.Context) {
	if c.GetString("role") != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if err := ac.Store.ClearTables(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.InfoLogger.Printf("Domain tables cleared by user %d", c.GetUint("user_id"))
	kds.BroadcastStaffNotification("All customers, dishes, orders and ratings were cleared")
	utils.RespondJSON(c, http.StatusOK, "Tables cleared", nil)
}

// GetSnapshotStats -> GET /admin/stats, jumlah baris per tabel
func (ac *AdminController) GetSnapshotStats(c *gin.Context) {
	snap, err := ac.Store.Snapshot(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table statistics", gin.H{
		"customers":   len(snap.Customers),
		"dishes":      len(snap.Dishes),
		"orders":      len(snap.Orders),
		"placements":  len(snap.Placements),
		"order_lines": len(snap.OrderLines),
		"ratings":     len(snap.Ratings),
		"ws_clients":  kds.ClientCount(),
	})
}
