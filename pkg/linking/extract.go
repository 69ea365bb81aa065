package linking

import (
	"regexp"
	"strings"

	"github.com/notemesh/backend/internal/util"
)

const (
	// conceptCap bounds the concept set per document so pairwise scoring
	// stays cheap on large corpora.
	conceptCap = 20

	minConceptLen = 4
	maxConceptLen = 24
)

// properNounRe matches multi-word capitalized sequences, the usual shape
// of proper nouns and technical terms ("Knowledge Graph", "Acme Corp").
var properNounRe = regexp.MustCompile(`[A-Z][A-Za-z0-9]+(?:[ \t][A-Z][A-Za-z0-9]+)+`)

// ExtractConcepts derives the normalized concept set from document text.
// Candidates come from two passes: capitalized multi-word sequences, then
// single word-like tokens that pass the stopword and length filters. The
// union is lower-cased, de-duplicated preserving first occurrence, and
// capped at conceptCap items. Empty or unparseable text yields an empty
// set. The result is deterministic for identical input.
func ExtractConcepts(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}

	concepts := make([]string, 0, conceptCap)
	seen := make(map[string]struct{})

	add := func(candidate string) bool {
		if len(concepts) >= conceptCap {
			return false
		}
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if len(candidate) < minConceptLen || len(candidate) > maxConceptLen {
			return true
		}
		if _, ok := seen[candidate]; ok {
			return true
		}
		seen[candidate] = struct{}{}
		concepts = append(concepts, candidate)
		return true
	}

	for _, phrase := range properNounRe.FindAllString(text, -1) {
		if !add(phrase) {
			break
		}
	}

	for _, token := range util.Words(text) {
		if len(concepts) >= conceptCap {
			break
		}
		if isStopword(token) || !isAlphabetic(token) {
			continue
		}
		add(token)
	}

	return concepts
}

// isAlphabetic reports whether a token is pure letters. Hyphenated words
// never reach here intact: word segmentation splits them, so each part is
// filtered on its own.
func isAlphabetic(token string) bool {
	for _, r := range token {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return token != ""
}

// stopwords are frequent function words that carry no topical signal.
// Words of three characters or fewer are already excluded by length.
var stopwords = map[string]struct{}{
	"about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"along": {}, "also": {}, "always": {}, "another": {}, "anything": {},
	"around": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "cannot": {}, "could": {},
	"does": {}, "doing": {}, "down": {}, "during": {}, "each": {},
	"either": {}, "else": {}, "ever": {}, "every": {}, "everything": {},
	"from": {}, "further": {}, "gets": {}, "getting": {}, "goes": {},
	"going": {}, "have": {}, "having": {}, "here": {}, "however": {},
	"into": {}, "itself": {}, "just": {}, "like": {}, "made": {},
	"make": {}, "makes": {}, "many": {}, "might": {}, "more": {},
	"most": {}, "much": {}, "must": {}, "need": {}, "needs": {},
	"never": {}, "only": {}, "other": {}, "others": {}, "over": {},
	"really": {}, "same": {}, "should": {}, "since": {}, "some": {},
	"something": {}, "still": {}, "such": {}, "take": {}, "than": {},
	"that": {}, "their": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"under": {}, "until": {}, "upon": {}, "used": {}, "using": {},
	"very": {}, "want": {}, "well": {}, "were": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "while": {}, "will": {},
	"with": {}, "within": {}, "without": {}, "would": {}, "your": {},
}

func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
