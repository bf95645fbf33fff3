// File: hotelify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelify/config"
	"hotelify/database"
	bookingRepoPkg "hotelify/database/repository/booking"
	guestRepoPkg "hotelify/database/repository/guest"
	inventoryRepoPkg "hotelify/database/repository/inventory"
	roomRepoPkg "hotelify/database/repository/room"
	settingsRepoPkg "hotelify/database/repository/settings"
	staffRepoPkg "hotelify/database/repository/staff"
	userRepoPkg "hotelify/database/repository/user"
	"hotelify/handlers"
	"hotelify/middleware"
	"hotelify/routes"
	"hotelify/services/auth"
	"hotelify/services/booking"
	"hotelify/services/guest"
	"hotelify/services/inventory"
	"hotelify/services/room"
	"hotelify/services/search"
	"hotelify/services/settings"
	"hotelify/services/staff"
	"hotelify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	guestRepo := guestRepoPkg.NewMongoGuestRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	inventoryRepo := inventoryRepoPkg.NewMongoInventoryRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	for name, ensure := range map[string]func() error{
		"rooms":    roomRepo.EnsureIndexes,
		"guests":   guestRepo.EnsureIndexes,
		"bookings": bookingRepo.EnsureIndexes,
		"staff":    staffRepo.EnsureIndexes,
		"users":    userRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookingRepo,
		Rooms:     roomRepo,
		Guests:    guestRepo,
		Tx:        database.NewSessionRunner(database.MongoClient),
		TxTimeout: time.Duration(config.AppConfig.BookingTxTimeout) * time.Second,
	}
	roomService := &room.DefaultRoomService{Repo: roomRepo}
	guestService := &guest.DefaultGuestService{Repo: guestRepo}
	staffService := &staff.DefaultStaffService{Repo: staffRepo}
	inventoryService := &inventory.DefaultInventoryService{Repo: inventoryRepo}
	settingsService := &settings.DefaultSettingsService{Repo: settingsRepo}
	authService := &auth.DefaultAuthService{Repo: userRepo}
	searchService := &search.DefaultSearchService{
		Rooms:    roomRepo,
		Guests:   guestRepo,
		Bookings: bookingRepo,
		Cache:    utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:      handlers.NewAuthHandler(authService),
		Bookings:  handlers.NewBookingHandler(bookingService),
		Rooms:     handlers.NewRoomHandler(roomService),
		Guests:    handlers.NewGuestHandler(guestService),
		Staff:     handlers.NewStaffHandler(staffService),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		Settings:  handlers.NewSettingsHandler(settingsService),
		Search:    handlers.NewSearchHandler(searchService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
