package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/yummy-app/database"
	"github.com/yeremiapane/yummy-app/kds"
	"github.com/yeremiapane/yummy-app/models"
	"github.com/yeremiapane/yummy-app/utils"
)

type OrderController struct {
	Store *database.Store
}

func NewOrderController(store *database.Store) *OrderController {
	return &OrderController{Store: store}
}

// CreateOrder -> POST /admin/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Store.AddOrder(c.Request.Context(), order); err != nil {
		respondDomainError(c, err)
		return
	}

	stored, err := oc.Store.GetOrder(c.Request.Context(), order.ID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	kds.BroadcastOrderUpdate(stored)
	utils.RespondJSON(c, http.StatusCreated, "Order created", stored)
}

// GetOrder -> GET /admin/orders/:order_id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	order, err := oc.Store.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// DeleteOrder -> DELETE /admin/orders/:order_id
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	if err := oc.Store.DeleteOrder(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	kds.BroadcastOrderDelete(id)
	utils.RespondJSON(c, http.StatusOK, "Order deleted", nil)
}

// PlaceOrder -> POST /admin/orders/:order_id/customer
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		CustomerID int `json:"cust_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Store.CustomerPlacedOrder(c.Request.Context(), req.CustomerID, id); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", models.Placement{OrderID: id, CustomerID: req.CustomerID})
}

// GetOrderCustomer -> GET /admin/orders/:order_id/customer
func (oc *OrderController) GetOrderCustomer(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	customer, err := oc.Store.GetCustomerThatPlacedOrder(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer that placed the order", customer)
}

// AddDish -> POST /admin/orders/:order_id/dishes
func (oc *OrderController) AddDish(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	var req struct {
		DishID int `json:"dish_id" binding:"required"`
		Amount int `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := oc.Store.OrderContainsDish(c.Request.Context(), id, req.DishID, req.Amount); err != nil {
		respondDomainError(c, err)
		return
	}

	oc.respondItems(c, http.StatusCreated, id, "Dish added to order")
}

// RemoveDish -> DELETE /admin/orders/:order_id/dishes/:dish_id
func (oc *OrderController) RemoveDish(c *gin.Context) {
	orderID, ok := paramID(c, "order_id")
	if !ok {
		return
	}
	dishID, ok := paramID(c, "dish_id")
	if !ok {
		return
	}

	if err := oc.Store.OrderDoesNotContainDish(c.Request.Context(), orderID, dishID); err != nil {
		respondDomainError(c, err)
		return
	}

	oc.respondItems(c, http.StatusOK, orderID, "Dish removed from order")
}

// GetOrderItems -> GET /admin/orders/:order_id/items
func (oc *OrderController) GetOrderItems(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}
	oc.respondItems(c, http.StatusOK, id, "Order items")
}

func (oc *OrderController) respondItems(c *gin.Context, status, orderID int, message string) {
	items, err := oc.Store.GetAllOrderItems(c.Request.Context(), orderID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, status, message, items)
}
