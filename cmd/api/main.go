package main

// @title PromptHub API
// @version 1.0
// @description Prompt authoring and testing platform with free and Pro plans.

// @contact.name API Support
// @contact.email support@prompthub.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the identity provider token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/prompthub/prompthub/config"
	"github.com/prompthub/prompthub/pkg/account"
	"github.com/prompthub/prompthub/pkg/ai/llm"
	"github.com/prompthub/prompthub/pkg/api/handlers"
	custommw "github.com/prompthub/prompthub/pkg/api/middleware"
	"github.com/prompthub/prompthub/pkg/billing"
	"github.com/prompthub/prompthub/pkg/cache"
	"github.com/prompthub/prompthub/pkg/database"
	"github.com/prompthub/prompthub/pkg/email"
	"github.com/prompthub/prompthub/pkg/export"
	"github.com/prompthub/prompthub/pkg/identity"
	"github.com/prompthub/prompthub/pkg/jobs"
	"github.com/prompthub/prompthub/pkg/metrics"
	custommiddleware "github.com/prompthub/prompthub/pkg/middleware"
	"github.com/prompthub/prompthub/pkg/prompts"

	_ "github.com/prompthub/prompthub/docs" // Swagger docs (generated)
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20) // Stripe retries in bursts

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "PromptHub API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize identity verifier
	verifier := identity.NewJWTVerifier(cfg.IdentitySecret)

	// Initialize email service
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.SendGridAPIKey)

	// Initialize AI backend registry. Each selector matches the model_used
	// value stored on saved prompts.
	llmRegistry := llm.NewRegistry()
	if cfg.OpenAIAPIKey != "" {
		llmRegistry.Register("chatgpt", llm.NewOpenAIClient(llm.OpenAIConfig{APIKey: cfg.OpenAIAPIKey}, log.Default()))
	}
	if cfg.AnthropicAPIKey != "" {
		llmRegistry.Register("claude", llm.NewAnthropicClient(llm.AnthropicConfig{APIKey: cfg.AnthropicAPIKey}, log.Default()))
	}
	if cfg.GoogleAIAPIKey != "" {
		llmRegistry.Register("gemini", llm.NewGeminiClient(llm.GeminiConfig{APIKey: cfg.GoogleAIAPIKey}, log.Default()))
	}
	log.Printf("✅ AI backends registered: %v", llmRegistry.Selectors())

	// Initialize services
	accountService := account.NewService(db.Ent, redisClient, prometheusMetrics, cfg.FreePromptLimit)
	promptService := prompts.NewService(db.Ent, cfg.FreePromptLimit)
	exportService := export.NewService(promptService)
	billingService := billing.NewService(db.Ent, accountService, &billing.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		PricePro:      cfg.StripePricePro,
		SuccessURL:    cfg.FrontendURL + "/settings/billing?success=true",
		CancelURL:     cfg.FrontendURL + "/settings/billing?canceled=true",
		BaseURL:       cfg.FrontendURL,
	})
	billingService.SetEmailSender(emailService)
	billingService.SetMetrics(prometheusMetrics)

	// Initialize cron manager for the subscription reconciliation sweep
	var cronManager *jobs.CronManager
	if cfg.ReconcileEnabled {
		cronManager = jobs.NewCronManager(db.Ent, billingService, log.Default())
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to setup cron jobs: %v", err)
		}
		cronManager.Start()
		log.Printf("✅ Cron jobs started successfully")
	} else {
		log.Printf("ℹ️  Reconciliation sweep disabled (RECONCILE_SWEEP_ENABLED=false)")
	}

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	promptHandler := handlers.NewPromptHandler(promptService, accountService, llmRegistry, prometheusMetrics)
	billingHandler := handlers.NewBillingHandler(billingService, accountService)
	exportHandler := handlers.NewExportHandler(exportService, accountService)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Ping endpoint (public)
	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Public billing routes
	v1.GET("/billing/pricing", billingHandler.GetPricing)
	// Stripe webhook with its own rate limit bucket
	v1.POST("/webhooks/stripe", billingHandler.HandleWebhook, webhookRateLimiter.RateLimitMiddleware())

	// Protected routes (require a verified identity)
	protected := v1.Group("")
	protected.Use(custommw.RequireIdentity(verifier))
	{
		protected.POST("/auth/sync", accountHandler.Sync)
		protected.GET("/account/usage", accountHandler.GetUsage)

		promptsGroup := protected.Group("/prompts")
		{
			promptsGroup.POST("", promptHandler.Create)
			promptsGroup.GET("", promptHandler.List)
			promptsGroup.GET("/export", exportHandler.Download) // Must be before /:id to avoid route conflict
			promptsGroup.POST("/test", promptHandler.Test)
			promptsGroup.GET("/:id", promptHandler.Get)
		}

		protected.POST("/billing/checkout", billingHandler.CreateCheckout)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 PromptHub API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), webhooks 100/min", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("📦 Free plan limit: %d saved prompts", cfg.FreePromptLimit)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cronManager != nil {
		cronManager.Stop()
		log.Println("✅ Cron jobs stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
