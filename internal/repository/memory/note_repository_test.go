package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateAssignsIdAndTimestamps(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	note, err := repo.Create(ctx, "title", "content")
	require.NoError(t, err)

	assert.NotEmpty(t, note.Id)
	assert.False(t, note.CreatedAt.IsZero())
	assert.True(t, note.CreatedAt.Equal(note.UpdatedAt))
}

func TestFindOneAbsentReturnsNil(t *testing.T) {
	repo := NewNoteRepository()

	note, err := repo.FindOne(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestFindAllOrdering(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	a, err := repo.Create(ctx, "a", "1")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	b, err := repo.Create(ctx, "b", "2")
	require.NoError(t, err)

	notes, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, b.Id, notes[0].Id)
	assert.Equal(t, a.Id, notes[1].Id)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "old title", "old content")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	updated, err := repo.Update(ctx, created.Id, nil, strPtr("new content"))
	require.NoError(t, err)

	assert.Equal(t, "old title", updated.Title)
	assert.Equal(t, "new content", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
}

func TestUpdateAbsentReturnsNil(t *testing.T) {
	repo := NewNoteRepository()

	note, err := repo.Update(context.Background(), "nope", strPtr("x"), nil)
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestDeleteRemovesNote(t *testing.T) {
	repo := NewNoteRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "t", "c")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.Id))

	note, err := repo.FindOne(ctx, created.Id)
	require.NoError(t, err)
	assert.Nil(t, note)
}
