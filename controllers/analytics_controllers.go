package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/yummy-app/analytics"
	"github.com/yeremiapane/yummy-app/utils"
)

type AnalyticsController struct {
	Engine *analytics.Engine
}

func NewAnalyticsController(engine *analytics.Engine) *AnalyticsController {
	return &AnalyticsController{Engine: engine}
}

// GetOrderTotal -> GET /analytics/orders/:order_id/total
func (ac *AnalyticsController) GetOrderTotal(c *gin.Context) {
	id, ok := paramID(c, "order_id")
	if !ok {
		return
	}

	total, err := ac.Engine.OrderTotal(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order total", analytics.OrderTotal{OrderID: id, Total: total})
}

// GetOrderTotals -> GET /analytics/orders/totals
func (ac *AnalyticsController) GetOrderTotals(c *gin.Context) {
	totals, err := ac.Engine.OrderTotals(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order totals", totals)
}

// GetMaxAvgSpenders -> GET /analytics/customers/max-avg-spend
func (ac *AnalyticsController) GetMaxAvgSpenders(c *gin.Context) {
	customers, err := ac.Engine.CustomersSpentMaxAvgAmount(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customers with the highest average spend", customers)
}

// GetMostOrderedDish -> GET /analytics/dishes/most-ordered?start=&end= (RFC3339)
func (ac *AnalyticsController) GetMostOrderedDish(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("start must be an RFC3339 timestamp"))
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("end must be an RFC3339 timestamp"))
		return
	}

	dish, found, err := ac.Engine.MostOrderedDishInPeriod(c.Request.Context(), start, end)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New("no dish was ordered in the period"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Most ordered dish", dish)
}

// GetDishRatings -> GET /analytics/dishes/ratings
func (ac *AnalyticsController) GetDishRatings(c *gin.Context) {
	ratings, err := ac.Engine.DishAverageRatings(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Average rating per dish", ratings)
}

// GetDishRating -> GET /analytics/dishes/:dish_id/rating
func (ac *AnalyticsController) GetDishRating(c *gin.Context) {
	id, ok := paramID(c, "dish_id")
	if !ok {
		return
	}

	avg, found, err := ac.Engine.AverageDishRating(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !found {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Average dish rating", analytics.DishRating{DishID: id, Average: avg})
}

// GetDishPriceHistory -> GET /analytics/dishes/:dish_id/price-history
func (ac *AnalyticsController) GetDishPriceHistory(c *gin.Context) {
	id, ok := paramID(c, "dish_id")
	if !ok {
		return
	}

	points, err := ac.Engine.DishPriceHistory(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish price history", points)
}

// GetNonWorthPriceIncrease -> GET /analytics/dishes/non-worth-price-increase
func (ac *AnalyticsController) GetNonWorthPriceIncrease(c *gin.Context) {
	dishes, err := ac.Engine.NonWorthPriceIncrease(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dishes whose price increase was not worth it", dishes)
}

// GetMonthlyProfit -> GET /analytics/profit/monthly?year=&month=
func (ac *AnalyticsController) GetMonthlyProfit(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}

	profit, err := ac.Engine.MonthlyProfit(c.Request.Context(), year, month)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Monthly profit", gin.H{
		"year":   year,
		"month":  month,
		"profit": profit,
	})
}

// GetCumulativeProfit -> GET /analytics/profit/cumulative?year=
func (ac *AnalyticsController) GetCumulativeProfit(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	profits, err := ac.Engine.CumulativeProfitPerMonth(c.Request.Context(), year)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cumulative profit per month", profits)
}

// GetYearReport -> GET /analytics/report?year=
func (ac *AnalyticsController) GetYearReport(c *gin.Context) {
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	report, err := ac.Engine.YearReport(c.Request.Context(), year)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Year report", report)
}

// GetSimilarCustomers -> GET /analytics/customers/:customer_id/similar
func (ac *AnalyticsController) GetSimilarCustomers(c *gin.Context) {
	id, ok := paramID(c, "customer_id")
	if !ok {
		return
	}

	customers, err := ac.Engine.SimilarCustomers(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Similar customers", customers)
}

// GetRecommendations -> GET /analytics/customers/:customer_id/recommendations
func (ac *AnalyticsController) GetRecommendations(c *gin.Context) {
	id, ok := paramID(c, "customer_id")
	if !ok {
		return
	}

	dishes, err := ac.Engine.PotentialDishRecommendations(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Potential dish recommendations", dishes)
}

// GetOrderedTopRated -> GET /analytics/customers/:customer_id/ordered-top-rated
func (ac *AnalyticsController) GetOrderedTopRated(c *gin.Context) {
	id, ok := paramID(c, "customer_id")
	if !ok {
		return
	}

	ordered, err := ac.Engine.DidCustomerOrderTopRatedDishes(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer ordered a top rated dish", gin.H{
		"cust_id": id,
		"ordered": ordered,
	})
}

// GetRatedButNotOrdered -> GET /analytics/customers/rated-not-ordered
func (ac *AnalyticsController) GetRatedButNotOrdered(c *gin.Context) {
	customers, err := ac.Engine.CustomersRatedButNotOrdered(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customers who rated poorly without ordering", customers)
}
