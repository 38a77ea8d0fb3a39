package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lana-api/internal/config"
	"lana-api/internal/database"
	"lana-api/internal/handlers"
	custommiddleware "lana-api/internal/middleware"
	"lana-api/internal/repositories"
	"lana-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err.Error())
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	paymentRepo := repositories.NewFixedPaymentRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	authService := services.NewAuthService(userRepo, tokenService, passwordService, metrics, logger)
	budgetService := services.NewBudgetService(budgetRepo, transactionRepo, metrics, logger)
	paymentService := services.NewFixedPaymentService(paymentRepo, logger)
	analyticsService := services.NewAnalyticsService(transactionRepo, budgetService, paymentService, metrics, logger)
	notificationService := services.NewNotificationService(notificationRepo, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, metrics)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	paymentHandler := handlers.NewFixedPaymentHandler(paymentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommiddleware.CustomHTTPErrorHandler

	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.PanicRecovery())
	e.Use(custommiddleware.SecurityHeaders())
	e.Use(custommiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Public routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Authenticated routes
	auth := api.Group("", custommiddleware.RequireAuth(tokenService))

	auth.GET("/users/me", userHandler.Me)
	auth.PUT("/users/me", userHandler.UpdateMe)
	auth.DELETE("/users/me", userHandler.DeleteMe)

	auth.POST("/transactions", transactionHandler.CreateTransaction)
	auth.GET("/transactions", transactionHandler.ListTransactions)
	auth.GET("/transactions/categories", transactionHandler.ListCategories)
	auth.GET("/transactions/:id", transactionHandler.GetTransaction)
	auth.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	auth.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	auth.POST("/budgets", budgetHandler.CreateBudget)
	auth.GET("/budgets", budgetHandler.ListBudgets)
	auth.GET("/budgets/:id", budgetHandler.GetBudget)
	auth.PUT("/budgets/:id", budgetHandler.UpdateBudget)
	auth.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	auth.POST("/fixed-payments", paymentHandler.CreateFixedPayment)
	auth.GET("/fixed-payments", paymentHandler.ListFixedPayments)
	auth.GET("/fixed-payments/upcoming", paymentHandler.ListUpcomingPayments)
	auth.GET("/fixed-payments/:id", paymentHandler.GetFixedPayment)
	auth.PUT("/fixed-payments/:id", paymentHandler.UpdateFixedPayment)
	auth.DELETE("/fixed-payments/:id", paymentHandler.DeleteFixedPayment)

	auth.POST("/notifications", notificationHandler.CreateNotification)
	auth.GET("/notifications", notificationHandler.ListNotifications)
	auth.DELETE("/notifications", notificationHandler.DeleteAllNotifications)
	auth.PUT("/notifications/read-all", notificationHandler.MarkAllNotificationsRead)
	auth.GET("/notifications/settings", notificationHandler.GetNotificationSettings)
	auth.PUT("/notifications/settings", notificationHandler.UpdateNotificationSettings)
	auth.PUT("/notifications/:id/read", notificationHandler.MarkNotificationRead)
	auth.DELETE("/notifications/:id", notificationHandler.DeleteNotification)

	auth.GET("/analytics/dashboard", analyticsHandler.GetDashboard)
	auth.GET("/analytics/monthly", analyticsHandler.GetMonthlyAnalysis)
	auth.GET("/analytics/categories", analyticsHandler.GetCategoryBreakdown)
	auth.GET("/analytics/monthly-trend", analyticsHandler.GetMonthlyTrend)
	auth.GET("/analytics/category-trend/:category", analyticsHandler.GetCategoryTrend)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "address", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
			logger.Error("Server stopped", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err.Error())
	}

	sqlDB, err := db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server exited")
}
