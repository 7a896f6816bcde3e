package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kensudogit/docomo-smart-parking/internal/api/v1/auth"
	"github.com/kensudogit/docomo-smart-parking/internal/api/v1/dashboard"
	"github.com/kensudogit/docomo-smart-parking/internal/api/v1/parkinglot"
	"github.com/kensudogit/docomo-smart-parking/internal/api/v1/transaction"
	"github.com/kensudogit/docomo-smart-parking/internal/api/v1/user"
	"github.com/kensudogit/docomo-smart-parking/internal/middleware"
	"github.com/kensudogit/docomo-smart-parking/internal/services"
	"github.com/kensudogit/docomo-smart-parking/internal/store"
	"github.com/kensudogit/docomo-smart-parking/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the services over the selected persistence backend
// and registers every route.
func NewRouter(stores store.Stores) *gin.Engine {
	userService := services.NewUserService(stores.Users)
	lotService := services.NewParkingLotService(stores.ParkingLots)
	transactionService := services.NewTransactionService(stores.Transactions, stores.ParkingLots)
	authService := services.NewAuthService(stores.Users)

	utils.RegisterCustomValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth.RegisterRoutes(v1, auth.NewHandler(authService))

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware(userService))
		{
			parkinglot.RegisterRoutes(authorized, parkinglot.NewHandler(lotService))
			transaction.RegisterRoutes(authorized, transaction.NewHandler(transactionService))
			dashboard.RegisterRoutes(authorized, dashboard.NewHandler(userService, lotService, transactionService))
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(userService))
		{
			user.RegisterRoutes(admin, user.NewHandler(userService))
		}
	}

	return router
}
