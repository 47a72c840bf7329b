package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/analytics"
	"github.com/yeremiapane/yummy-app/controllers"
	"github.com/yeremiapane/yummy-app/database"
	"github.com/yeremiapane/yummy-app/middlewares"
	"github.com/yeremiapane/yummy-app/services"
)

// Options tunes the cross-cutting middlewares.
type Options struct {
	Logger     logrus.FieldLogger
	CORSOrigin string
	// RateLimit is the number of requests per second allowed per IP; 0 disables it.
	RateLimit int
	// LoginEvery and LoginBurst shape the per-IP token bucket of /login and /register.
	LoginEvery time.Duration
	LoginBurst int
}

func SetupRouter(store *database.Store, engine *analytics.Engine, monitor *services.DashboardMonitor, opts Options) *gin.Engine {
	if opts.LoginEvery <= 0 {
		opts.LoginEvery = 12 * time.Second
	}
	if opts.LoginBurst <= 0 {
		opts.LoginBurst = 5
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Apply security middlewares
	r.Use(middlewares.LoggerMiddleware(opts.Logger))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(opts.CORSOrigin))
	if opts.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(opts.RateLimit, 1).RateLimit())
	}

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(store.DB())
	customerCtrl := controllers.NewCustomerController(store)
	dishCtrl := controllers.NewDishController(store)
	orderCtrl := controllers.NewOrderController(store)
	adminCtrl := controllers.NewAdminController(store)
	analyticsCtrl := controllers.NewAnalyticsController(engine)
	reportCtrl := controllers.NewReportController(services.NewReportService(engine, opts.Logger))
	dashboardCtrl := controllers.NewDashboardController(monitor)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter(opts.LoginEvery, opts.LoginBurst))
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	stats := r.Group("/analytics")
	{
		stats.GET("/report", analyticsCtrl.GetYearReport)

		stats.GET("/orders/totals", analyticsCtrl.GetOrderTotals)
		stats.GET("/orders/:order_id/total", analyticsCtrl.GetOrderTotal)

		stats.GET("/customers/max-avg-spend", analyticsCtrl.GetMaxAvgSpenders)
		stats.GET("/customers/rated-not-ordered", analyticsCtrl.GetRatedButNotOrdered)
		stats.GET("/customers/:customer_id/similar", analyticsCtrl.GetSimilarCustomers)
		stats.GET("/customers/:customer_id/recommendations", analyticsCtrl.GetRecommendations)
		stats.GET("/customers/:customer_id/ordered-top-rated", analyticsCtrl.GetOrderedTopRated)

		stats.GET("/dishes/most-ordered", analyticsCtrl.GetMostOrderedDish)
		stats.GET("/dishes/ratings", analyticsCtrl.GetDishRatings)
		stats.GET("/dishes/non-worth-price-increase", analyticsCtrl.GetNonWorthPriceIncrease)
		stats.GET("/dishes/:dish_id/rating", analyticsCtrl.GetDishRating)
		stats.GET("/dishes/:dish_id/price-history", analyticsCtrl.GetDishPriceHistory)

		stats.GET("/profit/monthly", analyticsCtrl.GetMonthlyProfit)
		stats.GET("/profit/cumulative", analyticsCtrl.GetCumulativeProfit)
	}

	reports := r.Group("/reports")
	{
		reports.GET("/profit-chart.png", reportCtrl.GetProfitChart)
		reports.GET("/analytics.pdf", reportCtrl.GetAnalyticsPDF)
	}

	// Live dashboard, token lewat query string
	r.GET("/ws/dashboard", middlewares.WebSocketAuthMiddleware(), dashboardCtrl.DashboardSocket)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("staff"))

	auth.GET("/profile", userCtrl.GetProfile)
	auth.POST("/logout", userCtrl.Logout)
	auth.GET("/dashboard", dashboardCtrl.GetDashboard)
	auth.GET("/stats", adminCtrl.GetSnapshotStats)
	auth.POST("/schema/clear", middlewares.RequireRole(), adminCtrl.ClearSchema)

	// CUSTOMERS & RATINGS
	auth.POST("/customers", customerCtrl.CreateCustomer)
	auth.GET("/customers/:customer_id", customerCtrl.GetCustomer)
	auth.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)
	auth.GET("/customers/:customer_id/ratings", customerCtrl.GetCustomerRatings)
	auth.POST("/customers/:customer_id/ratings", customerCtrl.RateDish)
	auth.DELETE("/customers/:customer_id/ratings/:dish_id", customerCtrl.DeleteRating)

	// DISHES
	auth.POST("/dishes", dishCtrl.CreateDish)
	auth.GET("/dishes/:dish_id", dishCtrl.GetDish)
	auth.PATCH("/dishes/:dish_id/price", dishCtrl.UpdateDishPrice)
	auth.PATCH("/dishes/:dish_id/status", dishCtrl.UpdateDishStatus)

	// ORDERS
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.GET("/orders/:order_id", orderCtrl.GetOrder)
	auth.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	auth.POST("/orders/:order_id/customer", orderCtrl.PlaceOrder)
	auth.GET("/orders/:order_id/customer", orderCtrl.GetOrderCustomer)
	auth.GET("/orders/:order_id/items", orderCtrl.GetOrderItems)
	auth.POST("/orders/:order_id/dishes", orderCtrl.AddDish)
	auth.DELETE("/orders/:order_id/dishes/:dish_id", orderCtrl.RemoveDish)

	return r
}
