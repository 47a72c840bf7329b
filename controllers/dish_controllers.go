package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/yummy-app/database"
	"github.com/yeremiapane/yummy-app/kds"
	"github.com/yeremiapane/yummy-app/models"
	"github.com/yeremiapane/yummy-app/utils"
)

type DishController struct {
	Store *database.Store
}

func NewDishController(store *database.Store) *DishController {
	return &DishController{Store: store}
}

// CreateDish -> POST /admin/dishes
func (dc *DishController) CreateDish(c *gin.Context) {
	var dish models.Dish
	if err := c.ShouldBindJSON(&dish); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.Store.AddDish(c.Request.Context(), dish); err != nil {
		respondDomainError(c, err)
		return
	}

	kds.BroadcastDishUpdate(dish)
	utils.RespondJSON(c, http.StatusCreated, "Dish created", dish)
}

// GetDish -> GET /admin/dishes/:dish_id
func (dc *DishController) GetDish(c *gin.Context) {
	id, ok := paramID(c, "dish_id")
	if !ok {
		return
	}

	dish, err := dc.Store.GetDish(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}

// UpdateDishPrice -> PATCH /admin/dishes/:dish_id/price
func (dc *DishController) UpdateDishPrice(c *gin.Context) {
	id, ok := paramID(c, "dish_id")
	if !ok {
		return
	}

	var req struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.Store.UpdateDishPrice(c.Request.Context(), id, req.Price); err != nil {
		respondDomainError(c, err)
		return
	}

	dc.respondUpdated(c, id, "Dish price updated")
}

// UpdateDishStatus -> PATCH /admin/dishes/:dish_id/status
func (dc *DishController) UpdateDishStatus(c *gin.Context) {
	id, ok := paramID(c, "dish_id")
	if !ok {
		return
	}

	// Pointer agar nilai false tetap dianggap terisi
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := dc.Store.UpdateDishActiveStatus(c.Request.Context(), id, *req.IsActive); err != nil {
		respondDomainError(c, err)
		return
	}

	dc.respondUpdated(c, id, "Dish status updated")
}

func (dc *DishController) respondUpdated(c *gin.Context, id int, message string) {
	dish, err := dc.Store.GetDish(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	kds.BroadcastDishUpdate(dish)
	utils.RespondJSON(c, http.StatusOK, message, dish)
}
