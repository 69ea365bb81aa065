package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/notemesh/backend/pkg/common"
	"github.com/notemesh/backend/pkg/store"
)

func TestListDocumentsOrdering(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s := New(
		common.Document{ID: "c", UserID: "u1", CreatedAt: base.Add(time.Hour)},
		common.Document{ID: "b", UserID: "u1", CreatedAt: base},
		common.Document{ID: "a", UserID: "u1", CreatedAt: base},
		common.Document{ID: "x", UserID: "u2", CreatedAt: base},
	)

	docs, err := s.ListDocuments(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListDocuments() error: %v", err)
	}

	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("document order = %#v, want %#v", ids, want)
	}
}

func TestGetDocument(t *testing.T) {
	s := New(common.Document{ID: "a", UserID: "u1", Title: "Mine"})

	doc, err := s.GetDocument(context.Background(), "u1", "a")
	if err != nil {
		t.Fatalf("GetDocument() error: %v", err)
	}
	if doc.Title != "Mine" {
		t.Errorf("Title = %q, want %q", doc.Title, "Mine")
	}

	if _, err := s.GetDocument(context.Background(), "u2", "a"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for another user's document, got %v", err)
	}
	if _, err := s.GetDocument(context.Background(), "u1", "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing document, got %v", err)
	}
}

func TestUpdateDocumentLinks(t *testing.T) {
	s := New(common.Document{ID: "a", UserID: "u1"})

	if err := s.UpdateDocumentLinks(context.Background(), "u1", "a", []string{"b", "c"}); err != nil {
		t.Fatalf("UpdateDocumentLinks() error: %v", err)
	}

	doc, err := s.GetDocument(context.Background(), "u1", "a")
	if err != nil {
		t.Fatalf("GetDocument() error: %v", err)
	}
	if !reflect.DeepEqual(doc.LinkIDs, []string{"b", "c"}) {
		t.Errorf("LinkIDs = %#v, want %#v", doc.LinkIDs, []string{"b", "c"})
	}

	if err := s.UpdateDocumentLinks(context.Background(), "u2", "a", nil); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for another user's document, got %v", err)
	}
}
