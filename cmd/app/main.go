package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"workorder/cmd"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	root, err := buildCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to wire application: %v", err)
	}

	if err := root.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	sessions := root.CreateWizardManager()

	jobManager := root.CreateJobManager(sessions, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	root.CreateHTTPServer(sessions).RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server terminated: %v", err)
	}
}

func buildCompositionRoot(configs cmd.Config) (cmd.CompositionRoot, error) {
	if configs.StorageMode == cmd.StorageMemory {
		return cmd.NewMemoryCompositionRoot(configs)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return cmd.CompositionRoot{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return cmd.NewCompositionRoot(configs, gormDB)
}

func getConfigs() cmd.Config {
	// Missing .env is fine; real environments configure via the process env.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		StorageMode:    envOrDefault("STORAGE_MODE", cmd.StoragePostgres),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		AccessPassword: os.Getenv("ACCESS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		ProductCatalog: cmd.ParseCatalog(os.Getenv("PRODUCT_CATALOG")),
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL %q: %v", ttl, err)
		}
		config.SessionTTL = parsed
	}

	if config.AccessPassword == "" {
		log.Fatalf("ACCESS_PASSWORD must be set")
	}
	if config.JWTSecret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
