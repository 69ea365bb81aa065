package linking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/notemesh/backend/pkg/common"
	"github.com/notemesh/backend/pkg/logger"
)

// BuildGraph constructs the knowledge graph for a user's full corpus. It
// scores every unordered document pair in parallel, keeps edges above
// GraphEdgeThreshold, and sorts them by weight descending (stable, pair
// enumeration order as tie-break). An empty corpus yields an empty graph,
// not an error; a repository failure propagates to the caller.
func (e *Engine) BuildGraph(ctx context.Context, userID string) (*common.KnowledgeGraph, error) {
	docs, err := e.store.ListDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	graph := &common.KnowledgeGraph{
		Nodes:    make([]common.GraphNode, 0, len(docs)),
		Edges:    []common.GraphEdge{},
		Clusters: []common.DocumentCluster{},
	}
	if len(docs) == 0 {
		return graph, nil
	}

	for _, doc := range docs {
		graph.Nodes = append(graph.Nodes, NodeFromDocument(doc))
	}

	edges, err := e.scorePairs(ctx, graph.Nodes)
	if err != nil {
		return nil, err
	}
	graph.Edges = edges

	clusters, err := identifyClusters(graph.Nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to identify clusters: %w", err)
	}
	graph.Clusters = clusters

	logger.Debug("[Linking] Graph built",
		"user_id", userID,
		"nodes", len(graph.Nodes),
		"edges", len(graph.Edges),
		"clusters", len(graph.Clusters),
	)

	return graph, nil
}

type pairIndex struct {
	a, b int
}

// scorePairs evaluates all unordered node pairs. Scoring is pure and
// side-effect free, so the pair list fans out across an errgroup and the
// surviving edges merge under a mutex before the final sort.
func (e *Engine) scorePairs(ctx context.Context, nodes []common.GraphNode) ([]common.GraphEdge, error) {
	pairs := make([]pairIndex, 0, len(nodes)*(len(nodes)-1)/2)
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			pairs = append(pairs, pairIndex{a: i, b: j})
		}
	}

	type orderedEdge struct {
		edge common.GraphEdge
		ord  int
	}

	var mu sync.Mutex
	kept := make([]orderedEdge, 0, len(pairs))

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.maxParallel)

	for ord, pair := range pairs {
		eg.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
				edge := ScoreNodes(nodes[pair.a], nodes[pair.b])
				if edge.Weight <= GraphEdgeThreshold {
					return nil
				}
				mu.Lock()
				kept = append(kept, orderedEdge{edge: edge, ord: ord})
				mu.Unlock()
				return nil
			}
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("failed to score document pairs: %w", err)
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].edge.Weight != kept[j].edge.Weight {
			return kept[i].edge.Weight > kept[j].edge.Weight
		}
		return kept[i].ord < kept[j].ord
	})

	edges := make([]common.GraphEdge, 0, len(kept))
	for _, oe := range kept {
		edges = append(edges, oe.edge)
	}
	return edges, nil
}
