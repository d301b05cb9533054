package implementation

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rodobkn/notes-backend-course/internal/entity"
	"github.com/rodobkn/notes-backend-course/internal/mapper"
	"github.com/rodobkn/notes-backend-course/internal/model"
	"github.com/rodobkn/notes-backend-course/internal/repository/contract"
)

type NoteRepositoryImpl struct {
	client *firestore.Client
	mapper *mapper.NoteMapper
}

func NewNoteRepository(client *firestore.Client) contract.NoteRepository {
	return &NoteRepositoryImpl{
		client: client,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) collection() *firestore.CollectionRef {
	return r.client.Collection(model.Note{}.CollectionName())
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Note, error) {
	notes := make([]*entity.Note, 0)

	iter := r.collection().OrderBy("updated_at", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var m model.Note
		if err := doc.DataTo(&m); err != nil {
			return nil, err
		}
		notes = append(notes, r.mapper.ToEntity(&m))
	}

	return notes, nil
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, id string) (*entity.Note, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var m model.Note
	if err := doc.DataTo(&m); err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, title, content string) (*entity.Note, error) {
	docRef := r.collection().NewDoc()

	// Both timestamps are resolved by the store, never by this process.
	_, err := docRef.Set(ctx, map[string]interface{}{
		"id":         docRef.ID,
		"title":      title,
		"content":    content,
		"created_at": firestore.ServerTimestamp,
		"updated_at": firestore.ServerTimestamp,
	})
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the server-resolved timestamps.
	return r.FindOne(ctx, docRef.ID)
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, id string, title, content *string) (*entity.Note, error) {
	updates := []firestore.Update{
		{Path: "updated_at", Value: firestore.ServerTimestamp},
	}
	if title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *title})
	}
	if content != nil {
		updates = append(updates, firestore.Update{Path: "content", Value: *content})
	}

	if _, err := r.collection().Doc(id).Update(ctx, updates); err != nil {
		return nil, err
	}

	return r.FindOne(ctx, id)
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	return err
}
