// @title           Society Management Service API
// @version         1.0
// @description     REST backend for a residential-society management app: residents, payments and announcements.

// @host      localhost:8080
// @BasePath  /api
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NEMOzzzzzzzzzz/sms/config"
	"github.com/NEMOzzzzzzzzzz/sms/models"
	"github.com/NEMOzzzzzzzzzz/sms/routes"
	"github.com/NEMOzzzzzzzzzz/sms/services/container"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("logger setup failed: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		config.Warning("no .env file loaded: %v", err)
	}

	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		config.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	// The database is the sole source of truth; refuse to start without it
	// instead of logging and limping on.
	db, err := initDB(cfg)
	if err != nil {
		config.Error("database connection failed (DSN host %s:%s): %v", cfg.DBHost, cfg.DBPort, err)
		os.Exit(1)
	}

	if err := autoMigrate(db); err != nil {
		config.Error("database migration failed: %v", err)
		os.Exit(1)
	}

	r := routes.SetupRouterWithContainer(newContainer(db, cfg))

	config.Info("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("server failed: %v", err)
		os.Exit(1)
	}
}

// initDB opens the database connection and verifies it is actually
// reachable before the server starts taking requests.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	config.Info("database connection established")
	return db, nil
}

// autoMigrate creates or extends the entity tables.
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Resident{},
		&models.Payment{},
		&models.Announcement{},
	)
}

// newContainer wires the services, attaching Redis when configured.
func newContainer(db *gorm.DB, cfg *config.Config) *container.ServiceContainer {
	var redisClient *redis.Client
	if addr := cfg.GetRedisAddr(); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   cfg.RedisDB,
		})
	}
	return container.NewServiceContainer(db, cfg, redisClient)
}
