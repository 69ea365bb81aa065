// Package memory provides an in-memory DocumentStore used by tests and
// local development.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/notemesh/backend/pkg/common"
	"github.com/notemesh/backend/pkg/store"
)

// DocumentStore keeps documents in a map guarded by a mutex. Listing
// returns documents ordered by creation time, matching the repository
// contract the Postgres store provides.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]common.Document
}

func New(docs ...common.Document) *DocumentStore {
	s := &DocumentStore{docs: make(map[string]common.Document, len(docs))}
	for _, doc := range docs {
		s.docs[doc.ID] = doc
	}
	return s
}

// Put inserts or replaces a document.
func (s *DocumentStore) Put(doc common.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
}

func (s *DocumentStore) ListDocuments(ctx context.Context, userID string) ([]common.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []common.Document{}
	for _, doc := range s.docs {
		if doc.UserID == userID {
			result = append(result, doc)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *DocumentStore) GetDocument(ctx context.Context, userID, id string) (common.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok || doc.UserID != userID {
		return common.Document{}, store.ErrNotFound
	}
	return doc, nil
}

func (s *DocumentStore) UpdateDocumentLinks(ctx context.Context, userID, id string, linkIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok || doc.UserID != userID {
		return store.ErrNotFound
	}
	doc.LinkIDs = append([]string{}, linkIDs...)
	s.docs[id] = doc
	return nil
}
