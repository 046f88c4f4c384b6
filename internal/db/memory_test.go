package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-pipeline/internal/types"
)

func sampleInput(title, company string) *JobCreateInput {
	return &JobCreateInput{
		CanonicalKey: title + "|" + company + "|berlin",
		Job: types.ParsedJobData{
			Title:       title,
			Company:     company,
			Location:    "Berlin",
			Description: "A role building data ingestion pipelines for the jobs platform.",
			Status:      types.StatusActive,
		},
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id, err := store.CreateJob(ctx, sampleInput("backend engineer", "acme"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	record, err := store.GetJobByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "backend engineer", record.Job.Title)
	assert.Equal(t, "acme", record.Job.Company)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestMemoryStore_GetMissingReturnsNil(t *testing.T) {
	store := NewMemoryStore()

	record, err := store.GetJobByID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestMemoryStore_ListJobsPaging(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.CreateJob(ctx, sampleInput("engineer", string(rune('a'+i))))
		require.NoError(t, err)
	}

	page, err := store.ListJobs(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := store.ListJobs(ctx, 10, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	empty, err := store.ListJobs(ctx, 10, 50)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore_ExistingCanonicalKeys(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.CreateJob(ctx, sampleInput("backend engineer", "acme"))
	require.NoError(t, err)

	keys, err := store.ExistingCanonicalKeys(ctx)
	require.NoError(t, err)
	assert.True(t, keys["backend engineer|acme|berlin"])
	assert.False(t, keys["frontend engineer|acme|berlin"])
}

func TestMemoryStore_CountJobs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	count, err := store.CountJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = store.CreateJob(ctx, sampleInput("engineer", "acme"))
	require.NoError(t, err)

	count, err = store.CountJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.CreateJob(ctx, sampleInput("engineer", "acme"))
	assert.Error(t, err)
}

func TestMemoryStore_ImplementsJobStore(t *testing.T) {
	var _ JobStore = NewMemoryStore()
	var _ JobStore = (*DB)(nil)
}
