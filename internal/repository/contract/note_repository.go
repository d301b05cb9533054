package contract

import (
	"context"

	"github.com/rodobkn/notes-backend-course/internal/entity"
)

// NoteRepository is the document-store boundary for notes. The store owns
// identity and both timestamps: Create and Update return the note as the
// store persisted it, with server-assigned times.
type NoteRepository interface {
	// FindAll returns every note ordered by updated_at descending.
	FindAll(ctx context.Context) ([]*entity.Note, error)
	// FindOne returns (nil, nil) when no document has the given id.
	FindOne(ctx context.Context, id string) (*entity.Note, error)
	Create(ctx context.Context, title, content string) (*entity.Note, error)
	// Update applies only the non-nil fields and refreshes updated_at.
	// An explicit empty string is a real overwrite, not an omission.
	Update(ctx context.Context, id string, title, content *string) (*entity.Note, error)
	Delete(ctx context.Context, id string) error
}
