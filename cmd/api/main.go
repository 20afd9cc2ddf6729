package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Vinisilva0010/vendasOrganizadas/docs" // Swagger docs
	"github.com/Vinisilva0010/vendasOrganizadas/internal/config"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/database"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/handlers"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/jobs"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/middleware"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/repository"
	"github.com/Vinisilva0010/vendasOrganizadas/internal/services"
	"github.com/Vinisilva0010/vendasOrganizadas/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Vendas Organizadas API
// @version 1.0
// @description REST API para controle de vendas, parcelas e despesas de pequenos negócios

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Warn if Resend email is not configured
	if cfg.ResendAPIKey == "" || cfg.FromEmail == "" {
		logger.Warn("Resend email disabled: RESEND_API_KEY or FROM_EMAIL not set")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, worker, cfg)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs, repos)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Redirect root to swagger
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})

		// Swagger documentation
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			// Clients
			clients := protected.Group("/clients")
			{
				clients.GET("", h.Client.Index)
				clients.POST("", h.Client.Create)
				clients.GET("/:client_id", h.Client.Show)
				clients.PUT("/:client_id", h.Client.Update)
				clients.GET("/:client_id/statement", h.Client.Statement)
			}

			// Sales
			sales := protected.Group("/sales")
			{
				sales.GET("", h.Sale.Index)
				sales.POST("", h.Sale.Create)
				sales.GET("/:sale_id", h.Sale.Show)
			}

			// Installments
			installments := protected.Group("/installments")
			{
				installments.GET("", h.Installment.Index)
				installments.POST("/:installment_id/pay", h.Installment.Pay)
				installments.POST("/:installment_id/undo", h.Installment.Undo)
				installments.PUT("/:installment_id", h.Installment.Update)
			}

			// Expenses
			expenses := protected.Group("/expenses")
			{
				expenses.GET("", h.Expense.Index)
				expenses.POST("", h.Expense.Create)
				expenses.PUT("/:expense_id", h.Expense.Update)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/summary", h.Dashboard.Summary)
				dashboard.GET("/series", h.Dashboard.Series)
				dashboard.GET("/export", h.Dashboard.Export)
			}

			// Reports
			protected.GET("/reports/client_statement_pdf", h.Report.ClientStatementPDF)

			// Notifications
			// Static route first so "read_all" is not matched as :notification_id
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", h.Notification.Index)
				notifications.POST("/read_all", h.Notification.MarkAllAsRead)
				notifications.POST("/:notification_id/read", h.Notification.MarkAsRead)
			}

			// Admin-only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/jobs/status", h.Job.Status)
			}
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services, repos *repository.Repositories) {
	// Check overdue installments every hour, starting now
	worker.ScheduleEveryImmediate(1*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Checking overdue installments...")
		return svcs.Installment.CheckOverdue(ctx)
	})

	// Keep the dashboard summary cache warm
	worker.ScheduleEvery(15*time.Minute, func(ctx context.Context) error {
		_, err := svcs.Dashboard.GetSummary(ctx)
		return err
	})

	// Clean expired dashboard cache entries every hour
	worker.ScheduleEvery(1*time.Hour, func(ctx context.Context) error {
		removed, err := repos.Dashboard.CleanExpiredCache(ctx)
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.Info("[Job] Cleaned expired dashboard cache", "removed", removed)
		}
		return nil
	})

	// Purge expired refresh tokens daily
	worker.ScheduleEvery(24*time.Hour, func(ctx context.Context) error {
		removed, err := repos.RefreshToken.DeleteExpired(ctx)
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.Info("[Job] Purged expired refresh tokens", "removed", removed)
		}
		return nil
	})

	logger.Info("Scheduled recurring jobs")
}
