package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Harshitk-cp/guestchat/internal/api"
	"github.com/Harshitk-cp/guestchat/internal/config"
	"github.com/Harshitk-cp/guestchat/internal/domain"
	"github.com/Harshitk-cp/guestchat/internal/llm"
	"github.com/Harshitk-cp/guestchat/internal/logging"
	"github.com/Harshitk-cp/guestchat/internal/prompt"
	"github.com/Harshitk-cp/guestchat/internal/service"
	"github.com/Harshitk-cp/guestchat/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(config.LogLevel(), config.LogFile())
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tenants, closeTenants, err := newTenantDirectory(ctx, logger)
	if err != nil {
		logger.Fatal("failed to set up tenant directory", zap.Error(err))
	}
	defer closeTenants()

	assets, err := newAssetStore(ctx, logger)
	if err != nil {
		logger.Fatal("failed to set up asset store", zap.Error(err))
	}

	tmpl, err := prompt.Load(config.PromptTemplatePath())
	if err != nil {
		logger.Fatal("failed to load prompt template", zap.Error(err))
	}
	chatCfg, err := service.NewChatConfig(tmpl, domain.GenerateOptions{
		Model:       config.LLMModel(),
		Temperature: config.LLMTemperature(),
	})
	if err != nil {
		logger.Fatal("invalid prompt template", zap.Error(err))
	}
	logger.Info("prompt template loaded",
		zap.String("path", config.PromptTemplatePath()),
		zap.Strings("fields", tmpl.Fields()),
	)

	llmProvider := config.LLMProvider()
	llmClient, err := llm.NewClient(llmProvider, config.LLMAPIKey())
	if err != nil {
		logger.Fatal("LLM client initialization failed", zap.String("provider", llmProvider), zap.Error(err))
	}
	logger.Info("LLM client initialized", zap.String("provider", llmProvider))

	app := api.NewApp(api.Deps{
		Tenants: tenants,
		Assets:  assets,
		LLM:     llmClient,
		Chat:    chatCfg,
	}, logger)

	// Evict idle per-IP limiters
	go app.RateLimiter.Run(ctx, 10*time.Minute)

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newTenantDirectory(ctx context.Context, logger *zap.Logger) (domain.TenantDirectory, func(), error) {
	switch src := config.TenantSource(); src {
	case "file":
		logger.Info("using tenant file", zap.String("path", config.TenantsFile()))
		return store.NewFileTenantDirectory(config.TenantsFile()), func() {}, nil

	case "postgres":
		dbURL := config.DatabaseURL()
		if dbURL == "" {
			return nil, nil, fmt.Errorf("DATABASE_URL is required for TENANT_SOURCE=postgres")
		}
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}
		logger.Info("connected to database")
		return store.NewTenantStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown TENANT_SOURCE: %s (valid options: file, postgres)", src)
	}
}

func newAssetStore(ctx context.Context, logger *zap.Logger) (domain.AssetStore, error) {
	switch src := config.AssetSource(); src {
	case "file":
		logger.Info("using asset directory", zap.String("dir", config.AssetsDir()))
		return store.NewFileAssetStore(config.AssetsDir()), nil

	case "minio":
		s, err := store.NewMinIOAssetStore(ctx, store.MinIOOptions{
			Endpoint:  config.MinIOEndpoint(),
			AccessKey: config.MinIOAccessKey(),
			SecretKey: config.MinIOSecretKey(),
			Bucket:    config.MinIOBucket(),
			Prefix:    config.MinIOPrefix(),
			UseSSL:    config.MinIOUseSSL(),
		})
		if err != nil {
			return nil, err
		}
		logger.Info("using minio assets", zap.String("endpoint", config.MinIOEndpoint()), zap.String("bucket", config.MinIOBucket()))
		return s, nil

	default:
		return nil, fmt.Errorf("unknown ASSET_SOURCE: %s (valid options: file, minio)", src)
	}
}
