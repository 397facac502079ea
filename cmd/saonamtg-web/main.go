package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/saonamtg-web/docs"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/api/handlers"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/api/middleware"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/cache"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/config"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/health"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/logger"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/metrics"
	repository "github.com/aaravmahajanofficial/saonamtg-web/internal/repositories"
	service "github.com/aaravmahajanofficial/saonamtg-web/internal/services"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/tracing"
	"github.com/aaravmahajanofficial/saonamtg-web/internal/views"
	"github.com/aaravmahajanofficial/saonamtg-web/pkg/sendGrid"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

//	@title			Sao Nam TG Web API
//	@version		1.0
//	@description	Catalog, content and operational endpoints of the Sao Nam TG website.
//	@BasePath		/
func main() {

	// .env is optional outside local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("⚠️ Could not read .env file", slog.String("error", err.Error()))
	}

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tracing setup
	shutdownTracing, err := tracing.Setup(ctx, cfg.OTel, version)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Cache setup
	store := cache.NewTTLCache(
		cache.WithObserver(metrics.CacheObserver{}),
		cache.WithDefaultTTL(cfg.Cache.DefaultTTL),
	)
	store.StartJanitor(ctx, cfg.Cache.CleanupInterval)

	repos := repository.New(cfg)

	var emailService sendGrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("⚠️ SENDGRID_API_KEY is not set, contact submissions will only be logged")
	}

	commerceService := service.NewCommerceService(repos.Product, store)
	contentService := service.NewContentService(repos.Content, cfg.Site.Origin)
	contactService := service.NewContactService(emailService, cfg.SendGrid.ContactToEmail)

	renderer, err := views.New(cfg.Site.Origin)
	if err != nil {
		slog.Error("❌ Error parsing page templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pageHandler := handlers.NewPageHandler(contentService, commerceService, renderer)
	catalogHandler := handlers.NewCatalogHandler(commerceService, contentService)
	contactHandler := handlers.NewContactHandler(contactService)
	opsHandler := handlers.NewOpsHandler(commerceService, cfg.Site.RevalidateToken)

	healthHandler, err := health.NewHealthHandler(version, &health.Endpoints{
		Content:  repos.Content,
		Commerce: repos.Product,
	})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("services initialized", slog.String("env", cfg.Env), slog.String("version", version))

	// Setup router
	routerMux := http.NewServeMux()

	// Pages
	routerMux.HandleFunc("GET /{$}", pageHandler.Home())
	routerMux.HandleFunc("GET /gioi-thieu", pageHandler.About())
	routerMux.HandleFunc("GET /dich-vu", pageHandler.Services())
	routerMux.HandleFunc("GET /lien-he", pageHandler.Contact())
	routerMux.HandleFunc("GET /tin-tuc", pageHandler.News())
	routerMux.HandleFunc("GET /tin-tuc/danh-muc/{slug}", pageHandler.NewsCategory())
	routerMux.HandleFunc("GET /tin-tuc/tag/{slug}", pageHandler.NewsTag())
	routerMux.HandleFunc("GET /tin-tuc/{slug}", pageHandler.Post())
	routerMux.HandleFunc("GET /san-pham", pageHandler.Products())
	routerMux.HandleFunc("GET /san-pham/{slug}", pageHandler.Product())
	routerMux.HandleFunc("GET /tai-khoan", pageHandler.Account())
	routerMux.HandleFunc("GET /dang-ky", pageHandler.Register())
	routerMux.Handle("GET /static/", views.StaticHandler())

	// JSON API
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}/related", catalogHandler.GetRelatedProducts())
	routerMux.HandleFunc("GET /api/v1/product-by-slug/{slug}", catalogHandler.GetProductBySlug())
	routerMux.HandleFunc("GET /api/v1/product-categories", catalogHandler.ListProductCategories())
	routerMux.HandleFunc("GET /api/v1/search", catalogHandler.Search())
	routerMux.HandleFunc("GET /api/v1/menus/{location}", catalogHandler.GetMenu())
	routerMux.HandleFunc("GET /api/v1/settings", catalogHandler.GetSettings())
	routerMux.HandleFunc("POST /api/contact", contactHandler.Submit())
	routerMux.HandleFunc("POST /api/error-logger", opsHandler.LogClientError())
	routerMux.HandleFunc("POST /api/revalidate", opsHandler.Revalidate())
	routerMux.HandleFunc("GET /api/revalidate", opsHandler.RevalidateQuery())

	// Operations
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	routerMux.HandleFunc("/", pageHandler.NotFound())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(log)(handler)
	handler = otelhttp.NewHandler(handler, cfg.OTel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer provider shutdown failed", slog.String("error", err.Error()))
	}
}
