package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/pkg/models"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

func TestStaticMemory_UpsertAndGet(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	mems, err := NewMemoryService(dbClient.Client)
	require.NoError(t, err)
	ctx := context.Background()

	mem, err := mems.UpsertStaticMemory(ctx, models.UpsertStaticMemoryRequest{
		Repo: "acme/widgets",
		Config: models.RepoConfig{
			Language:      "go",
			DefaultBranch: "main",
		},
		Constraints: models.RepoConstraints{
			MaxDiffLines:    300,
			MaxFilesPerTask: 8,
			BlockedPaths:    []string{"deploy/"},
		},
		AgentInstructions: "Prefer table tests.",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme/widgets", mem.ID)

	got, err := mems.GetStaticMemory(ctx, "acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, 300, got.Constraints.MaxDiffLines)
	assert.Equal(t, "Prefer table tests.", got.AgentInstructions)
}

func TestStaticMemory_UpsertReplacesAndInvalidatesCache(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	mems, err := NewMemoryService(dbClient.Client)
	require.NoError(t, err)
	ctx := context.Background()

	req := models.UpsertStaticMemoryRequest{
		Repo:        "acme/widgets",
		Config:      models.RepoConfig{Language: "go", DefaultBranch: "main"},
		Constraints: models.RepoConstraints{MaxDiffLines: 100},
	}
	_, err = mems.UpsertStaticMemory(ctx, req)
	require.NoError(t, err)

	// Warm the cache.
	_, err = mems.GetStaticMemory(ctx, "acme/widgets")
	require.NoError(t, err)

	req.Constraints.MaxDiffLines = 999
	_, err = mems.UpsertStaticMemory(ctx, req)
	require.NoError(t, err)

	got, err := mems.GetStaticMemory(ctx, "acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, 999, got.Constraints.MaxDiffLines)
}

func TestStaticMemory_Validation(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	mems, err := NewMemoryService(dbClient.Client)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = mems.UpsertStaticMemory(ctx, models.UpsertStaticMemoryRequest{
		Config: models.RepoConfig{DefaultBranch: "main"},
	})
	assert.True(t, IsValidationError(err))

	_, err = mems.UpsertStaticMemory(ctx, models.UpsertStaticMemoryRequest{
		Repo:   "acme/widgets",
		Config: models.RepoConfig{Language: "go"},
	})
	assert.True(t, IsValidationError(err))
}

func TestStaticMemory_NotFound(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	mems, err := NewMemoryService(dbClient.Client)
	require.NoError(t, err)

	_, err = mems.GetStaticMemory(context.Background(), "unknown/repo")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetSession_NotFound(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	mems, err := NewMemoryService(dbClient.Client)
	require.NoError(t, err)

	_, err = mems.GetSession(context.Background(), "missing-task")
	assert.ErrorIs(t, err, ErrNotFound)
}
