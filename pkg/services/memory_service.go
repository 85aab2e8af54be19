package services

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/sessionmemory"
	"github.com/coderelay-ai/coderelay/ent/staticmemory"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

// staticCacheSize bounds the in-process static memory cache. Static
// memory is read on every context compilation, so the hot set is the
// set of repos with active tasks.
const staticCacheSize = 128

// MemoryService manages static memory (per repo, read-mostly, cached)
// and session memory (per task, written only by the task's current
// worker under the task lock).
type MemoryService struct {
	client      *ent.Client
	staticCache *lru.Cache[string, *ent.StaticMemory]
}

// NewMemoryService creates a new MemoryService
func NewMemoryService(client *ent.Client) (*MemoryService, error) {
	cache, err := lru.New[string, *ent.StaticMemory](staticCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create static memory cache: %w", err)
	}
	return &MemoryService{client: client, staticCache: cache}, nil
}

// GetStaticMemory returns the static memory of a repo, from cache when
// possible. Returns ErrNotFound when the repo has none configured.
func (s *MemoryService) GetStaticMemory(ctx context.Context, repo string) (*ent.StaticMemory, error) {
	if cached, ok := s.staticCache.Get(repo); ok {
		return cached, nil
	}

	mem, err := s.client.StaticMemory.Query().
		Where(staticmemory.IDEQ(repo)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get static memory: %w", err)
	}

	s.staticCache.Add(repo, mem)
	return mem, nil
}

// UpsertStaticMemory creates or replaces a repo's static memory and
// invalidates the cache entry. Past task events are never rewritten:
// already-compiled contexts keep the constraints they were built with.
func (s *MemoryService) UpsertStaticMemory(httpCtx context.Context, req models.UpsertStaticMemoryRequest) (*ent.StaticMemory, error) {
	if req.Repo == "" {
		return nil, NewValidationError("repo", "required")
	}
	if req.Config.DefaultBranch == "" {
		return nil, NewValidationError("config.defaultBranch", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.StaticMemory.Create().
		SetID(req.Repo).
		SetConfig(req.Config).
		SetConstraints(req.Constraints).
		SetAgentInstructions(req.AgentInstructions).
		OnConflictColumns(staticmemory.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert static memory: %w", err)
	}

	// Explicit invalidation: the next compile sees the new constraints.
	s.staticCache.Remove(req.Repo)

	return s.GetStaticMemory(ctx, req.Repo)
}

// InvalidateStaticMemory drops a repo from the cache.
func (s *MemoryService) InvalidateStaticMemory(repo string) {
	s.staticCache.Remove(repo)
}

// GetSession returns the session memory of a task.
func (s *MemoryService) GetSession(ctx context.Context, taskID string) (*ent.SessionMemory, error) {
	session, err := s.client.SessionMemory.Query().
		Where(sessionmemory.TaskIDEQ(taskID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session memory: %w", err)
	}
	return session, nil
}
