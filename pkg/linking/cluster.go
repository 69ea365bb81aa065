package linking

import (
	"sort"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/notemesh/backend/pkg/common"
)

// identifyClusters partitions nodes by kind. A kind becomes a cluster only
// with two or more members; membership alone decides existence, so a
// cluster with no shared concepts is still emitted with an empty
// CentralConcepts list.
func identifyClusters(nodes []common.GraphNode) ([]common.DocumentCluster, error) {
	byKind := make(map[common.DocumentKind][]common.GraphNode)
	for _, node := range nodes {
		byKind[node.Kind] = append(byKind[node.Kind], node)
	}

	kinds := append(append([]common.DocumentKind{}, common.Kinds...), common.KindGeneral)

	clusters := []common.DocumentCluster{}
	for _, kind := range kinds {
		members := byKind[kind]
		if len(members) < 2 {
			continue
		}

		id, err := gonanoid.New()
		if err != nil {
			return nil, err
		}

		cluster := common.DocumentCluster{
			ID:              id,
			Name:            clusterName(kind),
			Kind:            kind,
			DocumentIDs:     make([]string, 0, len(members)),
			CentralConcepts: centralConcepts(members),
		}
		for _, member := range members {
			cluster.DocumentIDs = append(cluster.DocumentIDs, member.ID)
		}
		clusters = append(clusters, cluster)
	}

	return clusters, nil
}

// centralConcepts tallies concept frequency across a cluster's members.
// Concepts occurring in at least two members qualify, sorted by frequency
// descending (ties alphabetical), capped at five.
func centralConcepts(members []common.GraphNode) []string {
	freq := make(map[string]int)
	for _, member := range members {
		for _, concept := range member.Concepts {
			freq[concept]++
		}
	}

	qualifying := make([]string, 0, len(freq))
	for concept, count := range freq {
		if count >= 2 {
			qualifying = append(qualifying, concept)
		}
	}

	sort.Slice(qualifying, func(i, j int) bool {
		if freq[qualifying[i]] != freq[qualifying[j]] {
			return freq[qualifying[i]] > freq[qualifying[j]]
		}
		return qualifying[i] < qualifying[j]
	})

	if len(qualifying) > 5 {
		qualifying = qualifying[:5]
	}
	return qualifying
}

func clusterName(kind common.DocumentKind) string {
	name := string(kind)
	if name == "" {
		return "Notes"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " notes"
}
