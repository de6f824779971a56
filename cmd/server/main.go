package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/krishnasharma7/restaurant-management-system/internal/config"
	"github.com/krishnasharma7/restaurant-management-system/internal/database"
	"github.com/krishnasharma7/restaurant-management-system/internal/handler"
	"github.com/krishnasharma7/restaurant-management-system/internal/middleware"
	"github.com/krishnasharma7/restaurant-management-system/internal/queue"
	"github.com/krishnasharma7/restaurant-management-system/internal/repository"
	"github.com/krishnasharma7/restaurant-management-system/internal/router"
	queuepub "github.com/krishnasharma7/restaurant-management-system/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("database: %v", err)
	}
	if cfg.ResetOrders {
		if err := database.ResetOrders(ctx, db); err != nil {
			log.Fatalf("database: %v", err)
		}
		log.Println("orders table wiped (RESET_ORDERS_ON_BOOT)")
	}

	// Entity store: one repo per table, all bound to the same pool.
	userRepo := repository.NewUserRepo(db)
	reservationRepo := repository.NewReservationRepo(db)
	menuRepo := repository.NewMenuRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	restaurantRepo := repository.NewRestaurantRepo(db)

	publisher := queuepub.Publisher{}
	go func() {
		if err := queue.StartActivityConsumer(queuepub.BrokerURL()); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	reservationHandler := handler.NewReservationHandler(reservationRepo, publisher)
	orderHandler := handler.NewOrderHandler(orderRepo, menuRepo, publisher)
	menuHandler := handler.NewMenuHandler(menuRepo)
	authHandler := handler.NewAuthHandler(cfg, userRepo)
	userHandler := handler.NewUserHandler(userRepo, cfg.BcryptCost)
	restaurantHandler := handler.NewRestaurantHandler(restaurantRepo)
	paymentHandler := handler.NewPaymentHandler(paymentRepo)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS()) // dashboards are served from a different origin

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and menu cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	router.RegisterCore(e, reservationHandler, orderHandler, menuHandler, cacheMW)
	router.RegisterAuth(e, authHandler)
	router.RegisterUsers(e, userHandler)
	router.RegisterAdmin(e, userHandler, menuHandler, cfg.JWTSecret)
	router.RegisterStaff(e, restaurantHandler, paymentHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
