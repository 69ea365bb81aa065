package store

import (
	"context"
	"errors"

	"github.com/notemesh/backend/pkg/common"
)

// ErrNotFound is returned when a document does not exist or belongs to a
// different user.
var ErrNotFound = errors.New("document not found")

// DocumentStore is the persistence boundary consumed by the linking engine.
// ListDocuments must return the user's complete corpus; paginating here
// would silently corrupt graph completeness.
type DocumentStore interface {
	ListDocuments(ctx context.Context, userID string) ([]common.Document, error)
	GetDocument(ctx context.Context, userID, id string) (common.Document, error)

	// UpdateDocumentLinks persists the resolved outbound link IDs for a
	// document. It is a one-way side channel: callers must not fail the
	// read path that produced the links when this fails.
	UpdateDocumentLinks(ctx context.Context, userID, id string, linkIDs []string) error
}
