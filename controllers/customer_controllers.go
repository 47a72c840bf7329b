package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/yummy-app/database"
	"github.com/yeremiapane/yummy-app/kds"
	"github.com/yeremiapane/yummy-app/models"
	"github.com/yeremiapane/yummy-app/utils"
)

type CustomerController struct {
	Store *database.Store
}

func NewCustomerController(store *database.Store) *CustomerController {
	return &CustomerController{Store: store}
}

// CreateCustomer -> POST /admin/customers
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Store.AddCustomer(c.Request.Context(), customer); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetCustomer -> GET /admin/customers/:customer_id
func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := paramID(c, "customer_id")
	if !ok {
		return
	}

	customer, err := cc.Store.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// DeleteCustomer -> DELETE /admin/customers/:customer_id
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c, "customer_id")
	if !ok {
		return
	}

	if err := cc.Store.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer deleted", nil)
}

// GetCustomerRatings -> GET /admin/customers/:customer_id/ratings
func (cc *CustomerController) GetCustomerRatings(c *gin.Context) {
	id, ok := paramID(c, "customer_id")
	if !ok {
		return
	}

	ratings, err := cc.Store.GetAllCustomerRatings(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer ratings", ratings)
}

// RateDish -> POST /admin/customers/:customer_id/ratings
func (cc *CustomerController) RateDish(c *gin.Context) {
	id, ok := paramID(c, "customer_id")
	if !ok {
		return
	}

	var req struct {
		DishID int `json:"dish_id" binding:"required"`
		Rating int `json:"rating" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Store.CustomerRatedDish(c.Request.Context(), id, req.DishID, req.Rating); err != nil {
		respondDomainError(c, err)
		return
	}

	rating := models.Rating{CustomerID: id, DishID: req.DishID, Score: req.Rating}
	kds.BroadcastRatingUpdate(rating)
	utils.RespondJSON(c, http.StatusCreated, "Rating saved", rating)
}

// DeleteRating -> DELETE /admin/customers/:customer_id/ratings/:dish_id
func (cc *CustomerController) DeleteRating(c *gin.Context) {
	custID, ok := paramID(c, "customer_id")
	if !ok {
		return
	}
	dishID, ok := paramID(c, "dish_id")
	if !ok {
		return
	}

	if err := cc.Store.CustomerDeletedRatingOnDish(c.Request.Context(), custID, dishID); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Rating deleted", nil)
}
