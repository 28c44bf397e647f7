package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/guestchat/internal/api/handlers"
	mw "github.com/Harshitk-cp/guestchat/internal/api/middleware"
	"github.com/Harshitk-cp/guestchat/internal/buildconfig"
	"github.com/Harshitk-cp/guestchat/internal/config"
	"github.com/Harshitk-cp/guestchat/internal/domain"
	"github.com/Harshitk-cp/guestchat/internal/llm"
	"github.com/Harshitk-cp/guestchat/internal/service"
	"github.com/Harshitk-cp/guestchat/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Deps are the collaborators the HTTP app is built from. All of them are
// read-only from the app's point of view.
type Deps struct {
	Tenants domain.TenantDirectory
	Assets  domain.AssetStore
	LLM     domain.LLMClient
	Chat    service.ChatConfig
}

// App holds the router and the pieces main needs for lifecycle management.
type App struct {
	Router      *chi.Mux
	RateLimiter *mw.RateLimiter
	metrics     *mw.MetricsCollector
	startTime   time.Time
}

func NewApp(deps Deps, logger *zap.Logger) *App {
	// Services
	tenantSvc := service.NewTenantService(deps.Tenants)
	chatSvc := service.NewChatService(tenantSvc, deps.Assets, deps.LLM, deps.Chat, logger)

	// Handlers
	tenantHandler := handlers.NewTenantHandler(tenantSvc)
	chatHandler := handlers.NewChatHandler(chatSvc)

	r := chi.NewRouter()

	app := &App{
		Router:      r,
		RateLimiter: mw.NewRateLimiter(config.RateLimitRPS(), config.RateLimitBurst()),
		metrics:     mw.NewMetricsCollector(),
		startTime:   time.Now(),
	}

	// Global middleware (order matters)
	r.Use(mw.RequestID)           // Generate/extract request ID first
	r.Use(middleware.RealIP)      // Extract real IP
	r.Use(app.metrics.Middleware) // Collect metrics
	r.Use(mw.Logging(logger))     // Log all requests
	r.Use(middleware.Recoverer)   // Recover from panics

	// Browser chat widgets call from other origins
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(app.RateLimiter.Middleware)

	r.Get("/health", healthHandler)
	r.Get("/metrics", app.metricsHandler())

	r.Post("/chat", chatHandler.Chat)
	r.Get("/tenant/{tenant_id}", tenantHandler.Get)

	return app
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": buildconfig.Version(),
		"commit":  buildconfig.Commit(),
	})
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)
		counts := app.metrics.Snapshot()

		response := map[string]any{
			"uptime_seconds":       uptime.Seconds(),
			"uptime_human":         uptime.Round(time.Second).String(),
			"request_count":        counts.Requests,
			"client_error_count":   counts.ClientErrors,
			"server_error_count":   counts.ServerErrors,
			"upstream_error_count": counts.UpstreamErrors,
			"goroutines":           runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.TenantDirectory = (*store.FileTenantDirectory)(nil)
	_ domain.TenantDirectory = (*store.TenantStore)(nil)
	_ domain.AssetStore      = (*store.FileAssetStore)(nil)
	_ domain.AssetStore      = (*store.MinIOAssetStore)(nil)
	_ domain.LLMClient       = (*llm.OpenAIClient)(nil)
	_ domain.LLMClient       = (*llm.AnthropicClient)(nil)
	_ domain.LLMClient       = (*llm.GeminiClient)(nil)
	_ domain.LLMClient       = (*llm.CerebrasClient)(nil)
	_ domain.LLMClient       = (*llm.MockClient)(nil)
)
