package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"courier/cmd"
	httpin "courier/internal/adapters/in/http"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/generated/servers"
	"courier/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.Default()

	var gormDB *gorm.DB
	if configs.OrderSource == cmd.OrderSourcePostgres {
		gormDB = mustConnectDB(configs)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial load runs in the background so the server comes up while the
	// order source is still being fetched.
	syncHandler := app.CreateSyncOrdersCommandHandler()
	go runInitialSync(ctx, syncHandler, logger)

	jobManager := jobs.NewJobManager(syncHandler, configs.SyncInterval, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:     envOrDefault("HTTP_PORT", "8080"),
		OrderSource:  envOrDefault("ORDER_SOURCE", "fixture"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBSslMode:    envOrDefault("DB_SSLMODE", "disable"),
		SessionFile:  envOrDefault("SESSION_FILE", "session.json"),
		FetchDelayMS: os.Getenv("FETCH_DELAY_MS"),
		LoginDelayMS: os.Getenv("LOGIN_DELAY_MS"),
		SyncInterval: os.Getenv("SYNC_INTERVAL"),
	}
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func runInitialSync(ctx context.Context, handler commands.SyncOrdersCommandHandler, logger *slog.Logger) {
	if err := handler.Handle(ctx, commands.NewSyncOrdersCommand()); err != nil {
		logger.ErrorContext(ctx, "Initial order load failed", "error", err)
		return
	}
	logger.InfoContext(ctx, "Initial order load completed")
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	e.Use(httpin.SessionGuard(app.SessionStore(), func(c echo.Context) bool {
		if c.Request().URL.Path == "/health" {
			return true
		}
		return c.Request().Method == http.MethodPost &&
			c.Request().URL.Path == "/api/v1/session"
	}))

	servers.RegisterHandlersWithBaseURL(e, app.CreateHTTPServer(), "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
