package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	httpadapter "gigboard/internal/adapters/in/http"
	"gigboard/internal/adapters/out/providersim"
	"gigboard/internal/core/application/aggregator"
	"gigboard/internal/core/application/orchestrator"
	"gigboard/internal/jobs"
)

type CompositionRoot struct {
	Orchestrator *orchestrator.Orchestrator
	HTTPServer   *httpadapter.Server
	JobManager   *jobs.JobManager
}

// NewCompositionRoot wires the full application: the seeded provider
// dataset, one simulated client per provider, the aggregation engine, the
// session orchestrator, the HTTP adapter and the background jobs.
func NewCompositionRoot(configs Config) (CompositionRoot, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	store, err := providersim.OpenInMemory()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to open provider dataset: %w", err)
	}

	fixtures, err := loadFixtures(configs.FixturesPath)
	if err != nil {
		return CompositionRoot{}, err
	}
	if err := store.Seed(context.Background(), fixtures); err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to seed provider dataset: %w", err)
	}

	clients := providersim.NewClients(store, logger)
	engine := aggregator.NewEngine(clients, logger)

	o, err := orchestrator.New(engine, clients, logger, transcriptTTL(configs.TranscriptClearMs))
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create orchestrator: %w", err)
	}

	return CompositionRoot{
		Orchestrator: o,
		HTTPServer:   httpadapter.NewServer(o),
		JobManager:   jobs.NewJobManager(o, configs.RefreshCronSpec, logger),
	}, nil
}

func loadFixtures(path string) (providersim.Fixtures, error) {
	if path == "" {
		return providersim.DefaultFixtures()
	}
	return providersim.LoadFixtures(path)
}

// transcriptTTL parses the configured clear delay, falling back to the
// two-second default on anything unparsable.
func transcriptTTL(raw string) time.Duration {
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		return 2 * time.Second
	}
	return time.Duration(ms) * time.Millisecond
}
