package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rabbitmq/amqp091-go"

	"github.com/notemesh/backend/pkg/leaselock"
	"github.com/notemesh/backend/pkg/linking"
	"github.com/notemesh/backend/pkg/logger"
	"github.com/notemesh/backend/pkg/store"
)

// LinkJobMsg asks the worker to re-resolve a document's wiki-links and
// persist the resulting target IDs.
type LinkJobMsg struct {
	UserID        string `json:"user_id"`
	DocumentID    string `json:"document_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewLinkJob builds a link-persistence job with a fresh correlation ID.
func NewLinkJob(userID, documentID string) (LinkJobMsg, error) {
	correlationID, err := gonanoid.New()
	if err != nil {
		return LinkJobMsg{}, err
	}
	return LinkJobMsg{
		UserID:        userID,
		DocumentID:    documentID,
		CorrelationID: correlationID,
	}, nil
}

// PublishLinkJob enqueues a link-persistence job. Callers treat failures
// as non-fatal: persisting links is a side effect of the read path that
// produced them.
func PublishLinkJob(ch *amqp091.Channel, userID, documentID string) error {
	msg, err := NewLinkJob(userID, documentID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal link job: %w", err)
	}

	return Publish(ch, LinksQueue, data)
}

// Leaser grants exclusive per-key leases. *leaselock.Client is the
// production implementation.
type Leaser interface {
	WithLease(ctx context.Context, key string, opts leaselock.Options, fn func(ctx context.Context) error) error
}

// ProcessLinkMessage handles one link-persistence job: it resolves the
// document's wiki-links against the current corpus and stores the matched
// target IDs, holding a per-document lease so concurrent workers never
// write the same document.
func ProcessLinkMessage(
	ctx context.Context,
	engine *linking.Engine,
	docStore store.DocumentStore,
	locks Leaser,
	body []byte,
) error {
	var msg LinkJobMsg
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal link job: %w", err)
	}
	if msg.UserID == "" || msg.DocumentID == "" {
		return fmt.Errorf("link job missing user or document ID")
	}

	logger.Info("[Links] Persisting resolved links",
		"user_id", msg.UserID,
		"document_id", msg.DocumentID,
		"correlation_id", msg.CorrelationID,
	)

	return locks.WithLease(ctx, "document:"+msg.DocumentID, leaselock.Options{
		TTL:  time.Minute,
		Wait: true,
	}, func(ctx context.Context) error {
		links, err := engine.ResolveLinks(ctx, msg.UserID, msg.DocumentID)
		if err != nil {
			return fmt.Errorf("failed to resolve links: %w", err)
		}

		ids := linking.LinkedDocumentIDs(links)
		if err := docStore.UpdateDocumentLinks(ctx, msg.UserID, msg.DocumentID, ids); err != nil {
			return fmt.Errorf("failed to update document links: %w", err)
		}

		logger.Info("[Links] Links persisted",
			"document_id", msg.DocumentID,
			"links", len(ids),
		)
		return nil
	})
}
