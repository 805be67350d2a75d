// File: devalaya/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devalaya/config"
	"devalaya/cron"
	"devalaya/database"
	bookingRepoPkg "devalaya/database/repository/booking"
	templeRepoPkg "devalaya/database/repository/temple"
	userRepoPkg "devalaya/database/repository/user"
	"devalaya/handlers"
	"devalaya/middleware"
	"devalaya/routes"
	"devalaya/services/booking"
	"devalaya/services/notification"
	"devalaya/services/tasks"
	"devalaya/services/temple"
	"devalaya/services/user"
	"devalaya/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()
	utils.FirebaseInit()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	templeRepo := templeRepoPkg.NewMongoTempleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	templeService := &temple.DefaultTempleService{
		Repo: templeRepo,
	}

	notificationService, err := notification.NewFCMNotificationService(userService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	bookingService := &booking.DefaultBookingSessionService{
		TempleRepo:   templeRepo,
		BookingRepo:  bookingRepo,
		Sessions:     booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Payments:     booking.NewStripePaymentHandler(logger),
		Notification: notificationService,
		Reminders:    tasks.NewAsynqReminderScheduler(),
	}

	// Reminder worker drains the asynq queue in the background.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		User:     handlers.NewUserHandler(userService),
		Temple:   handlers.NewTempleHandler(templeService),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
