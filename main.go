package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/yummy-app/analytics"
	"github.com/yeremiapane/yummy-app/config"
	"github.com/yeremiapane/yummy-app/database"
	"github.com/yeremiapane/yummy-app/kds"
	"github.com/yeremiapane/yummy-app/router"
	"github.com/yeremiapane/yummy-app/services"
	"github.com/yeremiapane/yummy-app/utils"
)

func init() {
	// Load .env file di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}

	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		utils.ErrorLogger.Printf("Unknown LOG_LEVEL %q, keeping info", cfg.LogLevel)
	}
	utils.SetJWTSecret(cfg.JWTSecret)
	kds.SetLogger(utils.InfoLogger)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	store := database.NewStore(db, utils.InfoLogger)
	if err := store.Migrate(context.Background()); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	engine := analytics.NewEngine(store, utils.InfoLogger)

	monitor := services.NewDashboardMonitor(engine, cfg.DashboardInterval, utils.InfoLogger)
	monitor.Start()
	defer monitor.Stop()

	r := router.SetupRouter(store, engine, monitor, router.Options{
		Logger:     utils.InfoLogger,
		CORSOrigin: os.Getenv("CORS_ORIGIN"),
		RateLimit:  cfg.RateLimit,
	})
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		utils.ErrorLogger.Printf("Error setting trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}
}
