package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/kensudogit/docomo-smart-parking/config"
	"github.com/kensudogit/docomo-smart-parking/internal/api"
	"github.com/kensudogit/docomo-smart-parking/internal/database"
	"github.com/kensudogit/docomo-smart-parking/internal/models"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"github.com/kensudogit/docomo-smart-parking/internal/store/gormstore"
	"github.com/kensudogit/docomo-smart-parking/internal/store/redisstore"
	"github.com/kensudogit/docomo-smart-parking/pkg/logger"
)

// @title Parking Admin API
// @version 1.0
// @description Administrative back-office for a parking-lot operator.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	stores, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("failed to connect storage: %v", err)
	}

	if err := seedAdminUser(cfg, stores.Users); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	router := api.NewRouter(stores)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

func buildStores(cfg *config.Config) (store.Stores, error) {
	switch cfg.StoreBackend {
	case "postgres":
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return store.Stores{}, err
		}
		if err := db.AutoMigrate(&models.User{}, &models.ParkingLot{}, &models.Transaction{}); err != nil {
			return store.Stores{}, err
		}
		return store.Stores{
			Transactions: gormstore.NewTransactionStore(db),
			ParkingLots:  gormstore.NewParkingLotStore(db),
			Users:        gormstore.NewUserStore(db),
		}, nil
	case "redis":
		if err := database.ConnectRedis(cfg); err != nil {
			return store.Stores{}, err
		}
		return store.Stores{
			Transactions: redisstore.NewTransactionStore(database.RedisClient),
			ParkingLots:  redisstore.NewParkingLotStore(database.RedisClient),
			Users:        redisstore.NewUserStore(database.RedisClient),
		}, nil
	default:
		return store.Stores{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func seedAdminUser(cfg *config.Config, users store.UserStore) error {
	ctx := context.Background()
	userService := services.NewUserService(users)

	_, err := userService.GetByUsername(ctx, cfg.AdminUsername)
	if err == nil {
		log.Println("Admin user already exists.")
		return nil
	}
	if !errors.Is(err, services.ErrUserNotFound) {
		return err
	}

	_, err = userService.Create(ctx, services.CreateUserInput{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Email:    cfg.AdminEmail,
		FullName: "Administrator",
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return err
	}
	log.Println("Admin user created successfully!")
	return nil
}
