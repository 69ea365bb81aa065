package common

import "time"

// DocumentKind categorizes a document by its dominant domain vocabulary.
// KindGeneral is the fallback when no vocabulary clearly dominates.
type DocumentKind string

const (
	KindResearch    DocumentKind = "research"
	KindEngineering DocumentKind = "engineering"
	KindHealthcare  DocumentKind = "healthcare"
	KindMeeting     DocumentKind = "meeting"
	KindGeneral     DocumentKind = "general"
)

// Kinds lists the classifiable kinds in their fixed enumeration order.
// Classification tie-breaks depend on this order, so it must not change.
var Kinds = []DocumentKind{
	KindResearch,
	KindEngineering,
	KindHealthcare,
	KindMeeting,
}

// Document is a single note in a user's corpus. The linking engine reads
// documents but never writes them, except for the LinkIDs side channel
// that the worker persists after wiki-link resolution.
type Document struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Title     string       `json:"title"`
	Kind      DocumentKind `json:"kind"`
	Content   string       `json:"content"`
	Tags      []string     `json:"tags"`
	LinkIDs   []string     `json:"link_ids"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// GraphNode is the per-document snapshot used during a single graph build.
// Nodes carry the extracted concept set so pairwise scoring never has to
// re-read document content.
type GraphNode struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Kind      DocumentKind `json:"kind"`
	Tags      []string     `json:"tags"`
	WordCount int          `json:"word_count"`
	Concepts  []string     `json:"concepts"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ConnectionType labels why two documents are connected. It is informational
// and never affects the numeric edge weight.
type ConnectionType string

const (
	ConnectionConcept  ConnectionType = "concept"
	ConnectionTag      ConnectionType = "tag"
	ConnectionContent  ConnectionType = "content"
	ConnectionTemporal ConnectionType = "temporal"
)

// GraphEdge is a derived, undirected relevance edge between two documents.
// Weight is in [0, 1] and symmetric: scoring (A,B) equals scoring (B,A).
type GraphEdge struct {
	Source         string         `json:"source"`
	Target         string         `json:"target"`
	Weight         float64        `json:"weight"`
	SharedConcepts []string       `json:"shared_concepts"`
	SharedTags     []string       `json:"shared_tags"`
	ConnectionType ConnectionType `json:"connection_type"`
}

// DocumentCluster groups same-kind documents. A cluster exists whenever a
// kind has at least two documents; CentralConcepts may be empty.
type DocumentCluster struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Kind            DocumentKind `json:"kind"`
	DocumentIDs     []string     `json:"document_ids"`
	CentralConcepts []string     `json:"central_concepts"`
}

// KnowledgeGraph is the full per-request graph build result.
type KnowledgeGraph struct {
	Nodes    []GraphNode       `json:"nodes"`
	Edges    []GraphEdge       `json:"edges"`
	Clusters []DocumentCluster `json:"clusters"`
}

// LinkSuggestion is a ranked candidate target for a link, produced by the
// recommendation and live-advisor paths.
type LinkSuggestion struct {
	DocumentID      string       `json:"document_id"`
	Title           string       `json:"title"`
	Kind            DocumentKind `json:"kind"`
	MatchedConcepts []string     `json:"matched_concepts"`
	Relevance       float64      `json:"relevance"`
	Snippet         string       `json:"snippet"`
	Reason          string       `json:"reason"`
}

// WikiLink is one [[Title]] or [[Title|Display]] span parsed from content.
// Start and End are byte offsets of the full span in the source document.
// TargetID is set when the title matched a document in the corpus.
type WikiLink struct {
	Title    string `json:"title"`
	Display  string `json:"display"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	TargetID string `json:"target_id,omitempty"`
	Matched  bool   `json:"matched"`
}

// Backlink is one source document that wiki-links to a target document.
// Multiple links from the same source collapse into a single entry.
type Backlink struct {
	SourceID    string `json:"source_id"`
	SourceTitle string `json:"source_title"`
	LinkCount   int    `json:"link_count"`
	Excerpt     string `json:"excerpt"`
}
