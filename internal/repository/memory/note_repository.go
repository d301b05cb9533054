package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/rodobkn/notes-backend-course/internal/entity"
	"github.com/rodobkn/notes-backend-course/internal/repository/contract"
)

// NoteRepository is an in-memory stand-in for the Firestore-backed
// implementation. Timestamps come from the local clock and ids from uuid,
// which is close enough to server-assigned for tests and local runs.
type NoteRepository struct {
	store *cache.Cache
}

func NewNoteRepository() contract.NoteRepository {
	return &NoteRepository{
		store: cache.New(cache.NoExpiration, 0),
	}
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	items := r.store.Items()

	notes := make([]*entity.Note, 0, len(items))
	for _, item := range items {
		note := item.Object.(entity.Note)
		notes = append(notes, &note)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

func (r *NoteRepository) FindOne(ctx context.Context, id string) (*entity.Note, error) {
	item, found := r.store.Get(id)
	if !found {
		return nil, nil
	}

	note := item.(entity.Note)
	return &note, nil
}

func (r *NoteRepository) Create(ctx context.Context, title, content string) (*entity.Note, error) {
	now := time.Now()
	note := entity.Note{
		Id:        uuid.NewString(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.store.Set(note.Id, note, cache.NoExpiration)
	return &note, nil
}

func (r *NoteRepository) Update(ctx context.Context, id string, title, content *string) (*entity.Note, error) {
	item, found := r.store.Get(id)
	if !found {
		return nil, nil
	}

	note := item.(entity.Note)
	if title != nil {
		note.Title = *title
	}
	if content != nil {
		note.Content = *content
	}
	note.UpdatedAt = time.Now()

	r.store.Set(note.Id, note, cache.NoExpiration)
	return &note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	r.store.Delete(id)
	return nil
}
