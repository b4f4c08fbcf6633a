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

	_ "github.com/fitcore/fitcore-api/docs" // Swagger docs
	"github.com/fitcore/fitcore-api/internal/config"
	"github.com/fitcore/fitcore-api/internal/database"
	"github.com/fitcore/fitcore-api/internal/handlers"
	"github.com/fitcore/fitcore-api/internal/jobs"
	"github.com/fitcore/fitcore-api/internal/middleware"
	"github.com/fitcore/fitcore-api/internal/repository"
	"github.com/fitcore/fitcore-api/internal/services"
	"github.com/fitcore/fitcore-api/internal/storage"
	"github.com/fitcore/fitcore-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title FitCore API
// @version 1.0
// @description REST API for the FitCore gym back office
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@fitcore.example

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

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

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL, cfg.SlowQueryThreshold())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Initialize repositories
	repos := repository.NewRepositories(db, cfg.ReceiptCounterStart)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, store, cfg, db)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs)

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

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

	loginLimiter := middleware.NewLoginRateLimiter(1, 5)

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
			auth.POST("/login", loginLimiter.Middleware(), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
			auth.POST("/logout", h.Auth.Logout)
		}

		// Protected routes (requires authentication)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			// Admin-only routes
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				// Receipt counter (admin only)
				admin.PUT("/receipts/reset-counter", h.Receipt.ResetCounter)

				// User management (admin only)
				admin.POST("/users", h.User.Create)
				admin.GET("/users", h.User.List)
				admin.GET("/users/:id", h.User.Show)
				admin.PUT("/users/:id", h.User.Update)
				admin.DELETE("/users/:id", h.User.Deactivate)

				// Staff management (admin only)
				admin.POST("/staff", h.Staff.Create)
				admin.PUT("/staff/:id", h.Staff.Update)
				admin.DELETE("/staff/:id", h.Staff.Delete)

				// Expenses (admin only)
				admin.POST("/expenses", h.Expense.Create)
				admin.PUT("/expenses/:id", h.Expense.Update)
				admin.POST("/expenses/:id/mark-paid", h.Expense.MarkPaid)
				admin.DELETE("/expenses/:id", h.Expense.Delete)

				// Hard deletes (admin only)
				admin.DELETE("/members/:id", h.Member.Delete)
				admin.DELETE("/pt-packages/:id", h.PT.Delete)
				admin.DELETE("/day-passes/:id", h.DayPass.Delete)
				admin.DELETE("/visitors/:id", h.Visitor.Delete)

				// Audit trail (admin only)
				admin.GET("/audits", h.Audit.List)
			}

			// Members
			protected.POST("/members", h.Member.Create)
			protected.GET("/members", h.Member.List)
			protected.GET("/members/:id", h.Member.Show)
			protected.PUT("/members/:id", h.Member.Update)
			protected.POST("/members/:id/renew", h.Member.Renew)
			protected.POST("/members/:id/payments", h.Member.RecordPayment)
			protected.POST("/members/:id/freeze", h.Member.Freeze)
			protected.POST("/members/:id/unfreeze", h.Member.Unfreeze)
			protected.POST("/members/:id/cancel", h.Member.Cancel)
			protected.POST("/members/:id/photo", h.Member.UploadPhoto)
			protected.GET("/members/:id/photo", h.Member.Photo)

			// PT packages
			protected.POST("/pt-packages", h.PT.Create)
			protected.GET("/pt-packages", h.PT.List)
			protected.GET("/pt-packages/:id", h.PT.Show)
			protected.POST("/pt-packages/:id/use-session", h.PT.UseSession)

			// Day passes and InBody entries
			protected.POST("/day-passes", h.DayPass.Create)
			protected.GET("/day-passes", h.DayPass.List)
			protected.GET("/day-passes/:id", h.DayPass.Show)

			// Receipt ledger (read-only)
			protected.GET("/receipts", h.Receipt.List)
			protected.GET("/receipts/next-number", h.Receipt.NextNumber)
			protected.GET("/receipts/:id", h.Receipt.Show)

			// Expenses and staff (read access for reception)
			protected.GET("/expenses", h.Expense.List)
			protected.GET("/expenses/:id", h.Expense.Show)
			protected.GET("/staff", h.Staff.List)
			protected.GET("/staff/:id", h.Staff.Show)

			// Closing report
			protected.GET("/closing", h.Closing.Report)
			protected.GET("/closing/export", h.Closing.Export)

			// Visitors
			protected.POST("/visitors", h.Visitor.Create)
			protected.GET("/visitors", h.Visitor.List)
		}
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	loc := svcs.Closing.Location()

	// Expire lapsed memberships daily
	worker.ScheduleEveryImmediate(24*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Expiring lapsed memberships...")
		expired, err := svcs.Member.ExpireLapsed(ctx, time.Now().In(loc))
		if err != nil {
			return err
		}
		if expired > 0 {
			logger.Info("Expired lapsed memberships", "count", expired)
		}
		return nil
	})

	// Prune stale visitor entries daily
	worker.ScheduleEvery(24*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Pruning old visitor entries...")
		_, err := svcs.Visitor.PruneOld(ctx)
		return err
	})

	logger.Info("Scheduled recurring jobs")
}
