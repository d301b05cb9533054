package model

import (
	"time"
)

// Note is the Firestore document shape for the "notes" collection.
// The document id is duplicated into the "id" field so listing queries
// return complete notes without touching DocumentRef metadata.
type Note struct {
	Id        string    `firestore:"id"`
	Title     string    `firestore:"title"`
	Content   string    `firestore:"content"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (Note) CollectionName() string {
	return "notes"
}
