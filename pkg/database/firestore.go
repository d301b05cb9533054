package database

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// NewFirestoreClient connects to one logical Firestore database. The client
// is built once at startup and shared for the process lifetime; credential
// or transport failures surface here so main can fail fast.
func NewFirestoreClient(ctx context.Context, projectID, databaseID string) (*firestore.Client, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, fmt.Errorf("connecting to firestore database %s: %w", databaseID, err)
	}

	return client, nil
}
