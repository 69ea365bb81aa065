package linking

import (
	"fmt"
	"strings"
	"time"

	"github.com/notemesh/backend/internal/util"
	"github.com/notemesh/backend/pkg/common"
)

// Fixed similarity weights. These are model constants, not configuration.
const (
	conceptWeight = 0.4
	tagWeight     = 0.3
	kindWeight    = 0.2
	recencyWeight = 0.1

	// GraphEdgeThreshold is the minimum weight for an edge to appear in
	// the knowledge graph.
	GraphEdgeThreshold = 0.1

	// SuggestionThreshold is the minimum weight for a live link
	// suggestion. It is stricter than the graph threshold: while typing,
	// precision beats recall.
	SuggestionThreshold = 0.3
)

// NodeFromDocument builds the scoring snapshot of a document. Tags are
// lower-cased and de-duplicated so tag overlap is case-insensitive.
func NodeFromDocument(doc common.Document) common.GraphNode {
	return common.GraphNode{
		ID:        doc.ID,
		Title:     doc.Title,
		Kind:      doc.Kind,
		Tags:      normalizeTags(doc.Tags),
		WordCount: util.WordCount(doc.Content),
		Concepts:  ExtractConcepts(doc.Content),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ScoreNodes computes the relevance edge between two nodes. The weight is
// symmetric and clamped to [0, 1]; callers decide whether it clears their
// threshold.
func ScoreNodes(a, b common.GraphNode) common.GraphEdge {
	sharedConcepts := intersect(a.Concepts, b.Concepts)
	sharedTags := intersect(a.Tags, b.Tags)
	sameKind := a.Kind == b.Kind

	weight := float64(len(sharedConcepts))*conceptWeight +
		float64(len(sharedTags))*tagWeight +
		temporalWeight(a.UpdatedAt, b.UpdatedAt)*recencyWeight
	// Sharing the general fallback kind says nothing about relatedness, so
	// only classified kinds earn the kind bonus.
	if sameKind && a.Kind != common.KindGeneral {
		weight += kindWeight
	}

	return common.GraphEdge{
		Source:         a.ID,
		Target:         b.ID,
		Weight:         clamp01(weight),
		SharedConcepts: sharedConcepts,
		SharedTags:     sharedTags,
		ConnectionType: connectionType(len(sharedConcepts), len(sharedTags), sameKind),
	}
}

// connectionType labels an edge by priority: tag when tags dominate,
// content when only the kind matches, concept otherwise. The label never
// influences the weight.
func connectionType(sharedConcepts, sharedTags int, sameKind bool) common.ConnectionType {
	switch {
	case sharedTags > sharedConcepts:
		return common.ConnectionTag
	case sameKind && sharedConcepts == 0:
		return common.ConnectionContent
	default:
		return common.ConnectionConcept
	}
}

// temporalWeight maps the gap between two update times onto a recency
// tier: same day 0.8, same week 0.5, same month 0.2, otherwise 0.
func temporalWeight(a, b time.Time) float64 {
	gap := a.Sub(b)
	if gap < 0 {
		gap = -gap
	}

	switch {
	case gap < 24*time.Hour:
		return 0.8
	case gap < 7*24*time.Hour:
		return 0.5
	case gap < 30*24*time.Hour:
		return 0.2
	default:
		return 0
	}
}

// edgeReason renders a human-readable justification for a suggestion.
func edgeReason(sharedConcepts []string, sharedTags []string, sameKind bool, kind common.DocumentKind) string {
	switch {
	case len(sharedConcepts) > 0:
		return fmt.Sprintf("shares %d concept(s): %s", len(sharedConcepts), strings.Join(sharedConcepts, ", "))
	case len(sharedTags) > 0:
		return fmt.Sprintf("shares %d tag(s): %s", len(sharedTags), strings.Join(sharedTags, ", "))
	case sameKind:
		return fmt.Sprintf("same %s focus", kind)
	default:
		return "edited around the same time"
	}
}

// intersect returns the items present in both slices, preserving the
// order of a and dropping duplicates.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return []string{}
	}

	inB := make(map[string]struct{}, len(b))
	for _, item := range b {
		inB[item] = struct{}{}
	}

	shared := []string{}
	seen := make(map[string]struct{})
	for _, item := range a {
		if _, ok := inB[item]; !ok {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		shared = append(shared, item)
	}
	return shared
}

func normalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
