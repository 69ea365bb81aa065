package linking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/notemesh/backend/internal/util"
	"github.com/notemesh/backend/pkg/common"
)

const maxLiveSuggestions = 5

// WritingAnalysis is the live editor's view of an in-progress text: a
// rough quality score, actionable suggestions, and related documents
// worth linking.
type WritingAnalysis struct {
	QualityScore     float64                 `json:"quality_score"`
	DetectedKind     common.DocumentKind     `json:"detected_kind"`
	Concepts         []string                `json:"concepts"`
	DomainTerms      []string                `json:"domain_terms"`
	Suggestions      []string                `json:"suggestions"`
	RelatedDocuments []common.LinkSuggestion `json:"related_documents"`
}

// AnalyzeWritingContext evaluates in-progress text against the rest of the
// user's corpus. It extracts concepts and domain terms from the text and
// ranks every other document with the standard similarity formula, without
// building or caching a full graph. Safe to call on every debounced
// keystroke interval.
func (e *Engine) AnalyzeWritingContext(
	ctx context.Context,
	userID string,
	text string,
	documentID string,
	kind common.DocumentKind,
) (*WritingAnalysis, error) {
	// Editor text is untrusted input.
	text = util.SanitizeText(text)

	if kind == "" || kind == common.KindGeneral {
		kind = Classify(text)
	}

	concepts := ExtractConcepts(text)
	terms := DomainTerms(text, kind)

	related, err := e.suggestAgainstCorpus(ctx, userID, documentID, concepts, kind)
	if err != nil {
		return nil, err
	}

	return &WritingAnalysis{
		QualityScore:     qualityScore(text, concepts, terms),
		DetectedKind:     kind,
		Concepts:         concepts,
		DomainTerms:      terms,
		Suggestions:      writingSuggestions(text, terms, related),
		RelatedDocuments: related,
	}, nil
}

// SuggestLinksForSelection ranks link targets for a user-selected span of
// text instead of the whole document.
func (e *Engine) SuggestLinksForSelection(
	ctx context.Context,
	userID string,
	selectedText string,
	documentID string,
) ([]common.LinkSuggestion, error) {
	selectedText = util.SanitizeText(selectedText)

	concepts := ExtractConcepts(selectedText)
	kind := Classify(selectedText)
	return e.suggestAgainstCorpus(ctx, userID, documentID, concepts, kind)
}

// suggestAgainstCorpus scores the in-progress signals against every other
// document. The in-progress text has no persisted node, so each candidate
// is scored independently with SuggestionThreshold as the cut-off.
func (e *Engine) suggestAgainstCorpus(
	ctx context.Context,
	userID string,
	excludeID string,
	concepts []string,
	kind common.DocumentKind,
) ([]common.LinkSuggestion, error) {
	docs, err := e.store.ListDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	draft := common.GraphNode{
		Kind:      kind,
		Concepts:  concepts,
		UpdatedAt: e.now(),
	}

	suggestions := []common.LinkSuggestion{}
	for _, doc := range docs {
		if doc.ID == excludeID {
			continue
		}

		node := NodeFromDocument(doc)
		edge := ScoreNodes(draft, node)
		if edge.Weight <= SuggestionThreshold {
			continue
		}

		suggestions = append(suggestions, common.LinkSuggestion{
			DocumentID:      doc.ID,
			Title:           doc.Title,
			Kind:            doc.Kind,
			MatchedConcepts: edge.SharedConcepts,
			Relevance:       edge.Weight,
			Snippet:         conceptSnippet(doc.Content, edge.SharedConcepts),
			Reason:          edgeReason(edge.SharedConcepts, edge.SharedTags, kind == doc.Kind, kind),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Relevance > suggestions[j].Relevance
	})
	if len(suggestions) > maxLiveSuggestions {
		suggestions = suggestions[:maxLiveSuggestions]
	}
	return suggestions, nil
}

// conceptSnippet excerpts the candidate document around the first matched
// concept, falling back to the opening of the content.
func conceptSnippet(content string, matched []string) string {
	if len(matched) > 0 {
		idx := strings.Index(strings.ToLower(content), matched[0])
		if idx >= 0 {
			return util.Excerpt(content, idx, idx+len(matched[0]), 80)
		}
	}
	return util.Excerpt(content, 0, 0, 120)
}

// qualityScore is a bounded heuristic over length, concept density, and
// domain-term usage. It is informational, not part of the edge model.
func qualityScore(text string, concepts, terms []string) float64 {
	wordCount := util.WordCount(text)

	lengthScore := 0.4
	if wordCount < 50 {
		lengthScore = 0.4 * float64(wordCount) / 50
	}

	conceptScore := 0.03 * float64(len(concepts))
	if conceptScore > 0.3 {
		conceptScore = 0.3
	}

	termScore := 0.1 * float64(len(terms))
	if termScore > 0.3 {
		termScore = 0.3
	}

	return clamp01(lengthScore + conceptScore + termScore)
}

func writingSuggestions(text string, terms []string, related []common.LinkSuggestion) []string {
	suggestions := []string{}

	if util.WordCount(text) < 50 {
		suggestions = append(suggestions, "The note is quite short; consider expanding it.")
	}
	if len(terms) == 0 {
		suggestions = append(suggestions, "No domain terminology detected; adding specific terms improves linking.")
	}
	if len(related) > 0 {
		suggestions = append(suggestions, "Related notes found; link them with [[Title]] syntax.")
	}

	return suggestions
}
