package main

import (
	"fmt"
	"net/http"
	"os"

	"gigboard/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	app, err := cmd.NewCompositionRoot(configs)
	if err != nil {
		log.Fatalf("Failed to assemble application: %v", err)
	}

	if err := app.JobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer app.JobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env is fine; every key has a default.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		RefreshCronSpec:   envOrDefault("REFRESH_CRON_SPEC", "*/30 * * * * *"),
		TranscriptClearMs: envOrDefault("TRANSCRIPT_CLEAR_MS", "2000"),
		FixturesPath:      envOrDefault("FIXTURES_PATH", ""),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	app.HTTPServer.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
