package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"laundry/cmd"
	"laundry/internal/adapters/out/natsstan"
	"laundry/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	if err := postgres.MigrateSchema(gormDB); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}

	publisher, err := natsstan.Connect(configs.NatsClusterID, configs.NatsClientID, configs.NatsURL)
	if err != nil {
		log.Fatalf("NATS Streaming connection failed: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	if err := cmd.SeedPriceCatalog(context.Background(), app.UnitOfWorkFactory()); err != nil {
		log.Fatalf("price catalog seed failed: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("job startup failed: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		NatsClusterID: goDotEnvVariable("NATS_CLUSTER_ID"),
		NatsClientID:  goDotEnvVariable("NATS_CLIENT_ID"),
		NatsURL:       goDotEnvVariable("NATS_URL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError maps unique violations onto gorm.ErrDuplicatedKey, which
	// the repositories rely on for already-exists classification.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	app.CreateServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
