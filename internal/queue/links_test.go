package queue

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/notemesh/backend/pkg/common"
	"github.com/notemesh/backend/pkg/leaselock"
	"github.com/notemesh/backend/pkg/linking"
	"github.com/notemesh/backend/pkg/store/memory"
)

type fakeLeaser struct {
	keys []string
}

func (f *fakeLeaser) WithLease(ctx context.Context, key string, opts leaselock.Options, fn func(ctx context.Context) error) error {
	f.keys = append(f.keys, key)
	return fn(ctx)
}

func TestLinkJobRoundTrip(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	docStore := memory.New(
		common.Document{
			ID: "one", UserID: "u1", Title: "Doc One",
			Content:   "See [[Doc Two]] and [[Missing Note]].",
			CreatedAt: base,
		},
		common.Document{
			ID: "two", UserID: "u1", Title: "Doc Two",
			Content:   "Target note.",
			CreatedAt: base.Add(time.Hour),
		},
	)
	engine := linking.NewEngine(docStore)
	locks := &fakeLeaser{}

	msg, err := NewLinkJob("u1", "one")
	if err != nil {
		t.Fatalf("NewLinkJob() error: %v", err)
	}
	if msg.CorrelationID == "" {
		t.Error("correlation ID is empty")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := ProcessLinkMessage(context.Background(), engine, docStore, locks, body); err != nil {
		t.Fatalf("ProcessLinkMessage() error: %v", err)
	}

	if !reflect.DeepEqual(locks.keys, []string{"document:one"}) {
		t.Errorf("lease keys = %#v, want [document:one]", locks.keys)
	}

	doc, err := docStore.GetDocument(context.Background(), "u1", "one")
	if err != nil {
		t.Fatalf("GetDocument() error: %v", err)
	}
	if !reflect.DeepEqual(doc.LinkIDs, []string{"two"}) {
		t.Errorf("LinkIDs = %#v, want [two]", doc.LinkIDs)
	}
}

func TestProcessLinkMessageRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{
			name: "not json",
			body: []byte("not json"),
		},
		{
			name: "missing user",
			body: mustMarshal(t, LinkJobMsg{DocumentID: "d1"}),
		},
		{
			name: "missing document",
			body: mustMarshal(t, LinkJobMsg{UserID: "u1"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProcessLinkMessage(context.Background(), nil, nil, nil, tt.body)
			if err == nil {
				t.Error("expected an error for invalid message body")
			}
		})
	}
}

func mustMarshal(t *testing.T, msg LinkJobMsg) []byte {
	t.Helper()
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}
