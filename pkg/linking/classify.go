package linking

import "github.com/notemesh/backend/pkg/common"

// Classify scores text against every kind vocabulary and returns the kind
// with the strictly highest keyword count. Partial ties resolve to the
// earliest kind in the fixed enumeration order; a zero top score or a tie
// across all four kinds yields KindGeneral, since no vocabulary dominates.
// The result is deterministic for identical input.
func Classify(text string) common.DocumentKind {
	scores := make([]int, len(common.Kinds))
	bestScore := 0
	for i, kind := range common.Kinds {
		scores[i] = CountKeywords(text, VocabularyFor(kind))
		if scores[i] > bestScore {
			bestScore = scores[i]
		}
	}

	if bestScore == 0 {
		return common.KindGeneral
	}

	top := 0
	for _, score := range scores {
		if score == bestScore {
			top++
		}
	}
	if top == len(common.Kinds) {
		return common.KindGeneral
	}

	for i, score := range scores {
		if score == bestScore {
			return common.Kinds[i]
		}
	}
	return common.KindGeneral
}
