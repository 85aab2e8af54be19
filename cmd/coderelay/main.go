// coderelay orchestrator server — provides the HTTP API, manages queue
// workers, and drives agent pipelines for autonomous code tasks.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/coderelay-ai/coderelay/pkg/agent"
	"github.com/coderelay-ai/coderelay/pkg/api"
	"github.com/coderelay-ai/coderelay/pkg/cleanup"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/database"
	"github.com/coderelay-ai/coderelay/pkg/engine"
	"github.com/coderelay-ai/coderelay/pkg/events"
	"github.com/coderelay-ai/coderelay/pkg/githost"
	"github.com/coderelay-ai/coderelay/pkg/llm"
	"github.com/coderelay-ai/coderelay/pkg/masking"
	"github.com/coderelay-ai/coderelay/pkg/memory"
	"github.com/coderelay-ai/coderelay/pkg/orchestrator"
	"github.com/coderelay-ai/coderelay/pkg/queue"
	"github.com/coderelay-ai/coderelay/pkg/services"
	"github.com/coderelay-ai/coderelay/pkg/slack"
	"github.com/coderelay-ai/coderelay/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting coderelay",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan cleanup: requeue anything this pod
	// held before a restart.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch the rest
	}

	// 4. Domain services
	taskService := services.NewTaskService(dbClient.Client)
	jobService := services.NewJobService(dbClient.Client, taskService)
	eventService := services.NewEventService(dbClient.Client)
	eventService.SetMasker(masking.NewService())
	memoryService, err := services.NewMemoryService(dbClient.Client)
	if err != nil {
		slog.Error("Failed to initialize memory service", "error", err)
		os.Exit(1)
	}
	slog.Info("Services initialized")

	// 5. LLM client and agent runtime
	apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
	if apiKey == "" {
		slog.Error("LLM API key is not set", "env", cfg.LLM.APIKeyEnv)
		os.Exit(1)
	}
	baseClient, err := llm.NewClient(cfg.LLM, apiKey)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "backend", cfg.LLM.Backend, "error", err)
		os.Exit(1)
	}
	llmClient := llm.WithRetry(baseClient, slog.Default())

	runtime, err := agent.NewRuntime(llmClient, cfg.LLM, slog.Default())
	if err != nil {
		slog.Error("Failed to initialize agent runtime", "error", err)
		os.Exit(1)
	}
	slog.Info("Agent runtime initialized", "backend", cfg.LLM.Backend)

	// 5a. Context compiler and engine
	compiler := memory.NewCompiler(memoryService, cfg.Defaults, slog.Default())

	// TODO: swap in a real code-host client once one exists; the
	// in-memory host only supports local evaluation.
	host := githost.NewInMemory()

	eng := engine.NewEngine(
		dbClient.Client,
		taskService, jobService, eventService, memoryService,
		compiler, runtime, host, cfg, slog.Default())

	orch := orchestrator.New(
		dbClient.Client,
		taskService, eventService, memoryService,
		compiler, runtime, cfg.Orchestration, slog.Default())
	eng.SetOrchestrator(orch)

	// 5b. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEntCatchupQuerier(dbClient.Client)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Start NotifyListener (dedicated pgx connection for LISTEN)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	// Wire listener ↔ manager bidirectional link
	connManager.SetListener(notifyListener)

	liveNotifier := events.NewNotifier(dbClient.Client, eventPublisher, slog.Default())

	// Optional Slack notifications; nil service when unconfigured.
	slackService := slack.NewService(slack.ServiceConfig{
		Token:        os.Getenv("SLACK_BOT_TOKEN"),
		Channel:      os.Getenv("SLACK_CHANNEL_ID"),
		DashboardURL: getEnv("DASHBOARD_URL", "http://localhost:"+httpPort),
	})
	if slackService != nil {
		eng.SetNotifier(engine.MultiNotifier{liveNotifier, slack.NewNotifier(slackService)})
		jobService.SetOnTerminal(slack.JobTerminalHook(slackService))
		slog.Info("Slack notifications enabled")
	} else {
		eng.SetNotifier(liveNotifier)
	}
	slog.Info("Streaming infrastructure initialized")

	// 5c. Retention sweeper
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 6. Start worker pool (before HTTP server)
	executor := queue.NewEngineExecutor(eng, slog.Default())
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. HTTP server
	apiServer := api.NewServer(api.Dependencies{
		Config:       cfg,
		DB:           dbClient,
		Jobs:         jobService,
		Tasks:        taskService,
		Events:       eventService,
		Memories:     memoryService,
		Engine:       eng,
		Orchestrator: orch,
		Pool:         workerPool,
		Sockets:      connManager,
		Slack:        slackService,
		Logger:       slog.Default(),
	})

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("coderelay started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: drain workers first so in-flight steps
	// commit, then stop accepting HTTP traffic.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — unfinished tasks will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
