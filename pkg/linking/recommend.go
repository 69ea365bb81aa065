package linking

import (
	"context"
	"fmt"

	"github.com/notemesh/backend/pkg/common"
)

const defaultRecommendationLimit = 5

// Recommendations returns the documents most related to the target
// document: the top-K neighbors of its node in a fresh graph build. A
// target with no corpus presence yields an empty result. A failed graph
// build propagates as an error; no partial result is returned.
func (e *Engine) Recommendations(ctx context.Context, userID, documentID string, limit int) ([]common.Document, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}

	graph, err := e.BuildGraph(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to build graph for recommendations: %w", err)
	}

	recommendations := make([]common.Document, 0, limit)
	for _, edge := range graph.Edges {
		if len(recommendations) >= limit {
			break
		}

		var neighborID string
		switch documentID {
		case edge.Source:
			neighborID = edge.Target
		case edge.Target:
			neighborID = edge.Source
		default:
			continue
		}

		doc, err := e.store.GetDocument(ctx, userID, neighborID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve recommended document %s: %w", neighborID, err)
		}
		recommendations = append(recommendations, doc)
	}

	return recommendations, nil
}
