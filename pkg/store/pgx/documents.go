// Package pgx implements the DocumentStore against PostgreSQL.
package pgx

import (
	"context"
	"errors"
	"fmt"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/notemesh/backend/pkg/common"
	"github.com/notemesh/backend/pkg/store"
)

type pgxIConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgxv5.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgxv5.Row
}

// DocumentDBStore implements store.DocumentStore on a pgx connection pool.
type DocumentDBStore struct {
	conn pgxIConn
}

// NewDocumentDBStore creates a store using an existing connection or pool.
func NewDocumentDBStore(conn pgxIConn) *DocumentDBStore {
	return &DocumentDBStore{conn: conn}
}

const documentColumns = `id, user_id, title, kind, content, tags, link_ids, created_at, updated_at`

// ListDocuments returns the user's complete corpus ordered by creation
// time. The order is part of the contract: duplicate-title wiki-link
// resolution picks the first match.
func (s *DocumentDBStore) ListDocuments(ctx context.Context, userID string) ([]common.Document, error) {
	rows, err := s.conn.Query(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := []common.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}

	return docs, nil
}

func (s *DocumentDBStore) GetDocument(ctx context.Context, userID, id string) (common.Document, error) {
	row := s.conn.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE user_id = $1 AND id = $2`,
		userID, id,
	)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, pgxv5.ErrNoRows) {
			return common.Document{}, store.ErrNotFound
		}
		return common.Document{}, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// UpdateDocumentLinks persists resolved outbound link IDs. It does not
// touch updated_at: link persistence is a derived side effect, not a user
// edit, and must not shift recency scoring.
func (s *DocumentDBStore) UpdateDocumentLinks(ctx context.Context, userID, id string, linkIDs []string) error {
	tag, err := s.conn.Exec(ctx,
		`UPDATE documents SET link_ids = $3 WHERE user_id = $1 AND id = $2`,
		userID, id, linkIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to update document links: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanDocument(row pgxv5.Row) (common.Document, error) {
	var doc common.Document
	err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&doc.Kind,
		&doc.Content,
		&doc.Tags,
		&doc.LinkIDs,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	return doc, err
}
