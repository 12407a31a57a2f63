package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/rede-emergencia/euajudo-sub000/cmd"
	httpin "github.com/rede-emergencia/euajudo-sub000/internal/adapters/in/http"
	"github.com/rede-emergencia/euajudo-sub000/internal/adapters/out/postgres"
	"github.com/rede-emergencia/euajudo-sub000/internal/jobs"
	"github.com/rede-emergencia/euajudo-sub000/internal/pkg/token"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	dsn := postgres.MakeConnectionString(
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := postgres.Connect(dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokens, err := token.NewManager(configs.JWTSecret, time.Duration(configs.TokenTTLHours)*time.Hour)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := jobs.NewJobManager(
		app.CreateExpireReservationsCommandHandler(),
		app.CreateSweepStaleDeliveriesCommandHandler(),
		configs.SweepCutoffHours,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, tokens, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		TokenTTLHours:    goDotEnvIntVariable("TOKEN_TTL_HOURS", 24),
		SweepCutoffHours: goDotEnvIntVariable("SWEEP_CUTOFF_HOURS", 48),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func startWebServer(app *cmd.CompositionRoot, tokens *token.Manager, port string) {
	e := echo.New()

	server := httpin.NewServer(tokens, app.CreateServerHandlers())
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
