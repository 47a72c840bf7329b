package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yeremiapane/yummy-app/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds the process settings read from the environment.
type Config struct {
	DBDriver          string
	DBDSN             string
	Port              string
	GinMode           string
	JWTSecret         string
	LogLevel          string
	DashboardInterval time.Duration
	RateLimit         int
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the configuration. Call godotenv.Load beforehand to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		DBDriver:  getEnv("DB_DRIVER", DriverSQLite),
		DBDSN:     getEnv("DB_DSN", "yummy.db"),
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "debug"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	interval, err := time.ParseDuration(getEnv("DASHBOARD_INTERVAL", "30s"))
	if err != nil || interval <= 0 {
		return nil, fmt.Errorf("invalid DASHBOARD_INTERVAL %q", os.Getenv("DASHBOARD_INTERVAL"))
	}
	cfg.DashboardInterval = interval

	limit, err := strconv.Atoi(getEnv("RATE_LIMIT", "50"))
	if err != nil || limit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q", os.Getenv("RATE_LIMIT"))
	}
	cfg.RateLimit = limit

	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverMySQL {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// InitDB opens the configured database. SQL statements are logged through
// utils.InfoLogger when it has been initialised.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverMySQL:
		// DSN wajib memakai parseTime=true agar kolom datetime terbaca sebagai time.Time
		dialector = mysql.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBDSN)
	}

	gormLogger := logger.Default.LogMode(logger.Silent)
	if utils.InfoLogger != nil {
		gormLogger = logger.New(utils.InfoLogger, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == DriverSQLite {
		// SQLite hanya mengizinkan satu writer
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if utils.InfoLogger != nil {
		utils.InfoLogger.Printf("Connected to %s database", cfg.DBDriver)
	}
	return db, nil
}
