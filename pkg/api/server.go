// Package api exposes the REST and WebSocket surface of coderelay:
// job and task lifecycle endpoints, the durable event log, static
// memory administration, code-host webhooks, and live event streaming.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/database"
	"github.com/coderelay-ai/coderelay/pkg/engine"
	"github.com/coderelay-ai/coderelay/pkg/events"
	"github.com/coderelay-ai/coderelay/pkg/orchestrator"
	"github.com/coderelay-ai/coderelay/pkg/queue"
	"github.com/coderelay-ai/coderelay/pkg/services"
	"github.com/coderelay-ai/coderelay/pkg/slack"
)

// Dependencies carries the constructed components the API serves.
// Pool, Sockets, and Slack may be nil when the process runs API-only or
// without notifications.
type Dependencies struct {
	Config       *config.Config
	DB           *database.Client
	Jobs         *services.JobService
	Tasks        *services.TaskService
	Events       *services.EventService
	Memories     *services.MemoryService
	Engine       *engine.Engine
	Orchestrator *orchestrator.Orchestrator
	Pool         *queue.WorkerPool
	Sockets      *events.ConnectionManager
	Slack        *slack.Service
	Logger       *slog.Logger
}

// Server wires the HTTP routes to the service layer.
type Server struct {
	router *gin.Engine
	logger *slog.Logger

	cfg      *config.Config
	db       *database.Client
	jobs     *services.JobService
	tasks    *services.TaskService
	events   *services.EventService
	memories *services.MemoryService
	engine   *engine.Engine
	orch     *orchestrator.Orchestrator
	pool     *queue.WorkerPool
	sockets  *events.ConnectionManager
	slack    *slack.Service
}

// NewServer builds the gin router with all routes registered.
func NewServer(deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		logger:   logger,
		cfg:      deps.Config,
		db:       deps.DB,
		jobs:     deps.Jobs,
		tasks:    deps.Tasks,
		events:   deps.Events,
		memories: deps.Memories,
		engine:   deps.Engine,
		orch:     deps.Orchestrator,
		pool:     deps.Pool,
		sockets:  deps.Sockets,
		slack:    deps.Slack,
	}

	r := gin.New()
	r.Use(requestLogger(logger), gin.Recovery())
	s.registerRoutes(r)
	s.router = r
	return s
}

func (s *Server) registerRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.POST("/jobs", s.handleCreateJob)
	api.GET("/jobs", s.handleListJobs)
	api.GET("/jobs/:id", s.handleGetJob)
	api.POST("/jobs/:id/run", s.handleRunJob)
	api.POST("/jobs/:id/cancel", s.handleCancelJob)

	api.POST("/tasks", s.handleCreateTask)
	api.GET("/tasks", s.handleListTasks)
	api.GET("/tasks/:id", s.handleGetTask)
	api.POST("/tasks/:id/cancel", s.handleCancelTask)
	api.POST("/tasks/:id/resolve-conflict", s.handleResolveConflict)
	api.GET("/tasks/:id/events", s.handleListTaskEvents)

	api.GET("/events", s.handleListEvents)

	api.GET("/memory", s.handleGetStaticMemory)
	api.PUT("/memory", s.handleUpsertStaticMemory)

	api.GET("/health", s.handleHealth)

	r.POST("/webhooks/code-host", s.handleCodeHostWebhook)
	r.GET("/ws", s.handleWebSocket)
}

// Handler returns the router for mounting into an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
