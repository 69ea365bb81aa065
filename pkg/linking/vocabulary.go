package linking

import (
	"github.com/notemesh/backend/internal/util"
	"github.com/notemesh/backend/pkg/common"
)

// Fixed per-kind vocabularies. Keywords are lower-case; multi-word entries
// match consecutive word tokens.
var (
	researchVocabulary = []string{
		"hypothesis", "methodology", "experiment", "analysis", "study",
		"literature", "citation", "abstract", "findings", "dataset",
		"survey", "theory", "variable", "peer review", "publication",
		"sample", "correlation", "conclusion",
	}

	engineeringVocabulary = []string{
		"architecture", "deployment", "latency", "database", "api",
		"refactor", "kubernetes", "microservice", "pipeline", "debugging",
		"interface", "scalability", "throughput", "backend", "frontend",
		"infrastructure", "endpoint", "migration", "code review",
	}

	healthcareVocabulary = []string{
		"patient", "diagnosis", "treatment", "clinical", "symptom",
		"medication", "therapy", "dosage", "prognosis", "vitals",
		"pathology", "triage", "immunology", "blood pressure",
		"prescription", "referral", "chronic",
	}

	meetingVocabulary = []string{
		"agenda", "minutes", "attendees", "action item", "follow-up",
		"stakeholder", "decision", "quarterly", "standup", "retrospective",
		"deadline", "milestone", "sync", "recap", "discussion",
	}
)

// VocabularyFor returns the fixed keyword vocabulary of a classifiable
// kind. KindGeneral has no vocabulary of its own.
func VocabularyFor(kind common.DocumentKind) []string {
	switch kind {
	case common.KindResearch:
		return researchVocabulary
	case common.KindEngineering:
		return engineeringVocabulary
	case common.KindHealthcare:
		return healthcareVocabulary
	case common.KindMeeting:
		return meetingVocabulary
	default:
		return nil
	}
}

// CountKeywords counts whole-word, case-insensitive occurrences of every
// vocabulary keyword in text and returns the sum.
func CountKeywords(text string, vocabulary []string) int {
	if text == "" || len(vocabulary) == 0 {
		return 0
	}

	tokens := util.Words(text)
	total := 0
	for _, keyword := range vocabulary {
		total += countKeyword(tokens, keyword)
	}
	return total
}

// DomainTerms returns the vocabulary keywords of kind that occur in text,
// each reported once, in vocabulary order.
func DomainTerms(text string, kind common.DocumentKind) []string {
	vocabulary := VocabularyFor(kind)
	if text == "" || len(vocabulary) == 0 {
		return []string{}
	}

	tokens := util.Words(text)
	terms := make([]string, 0, len(vocabulary))
	for _, keyword := range vocabulary {
		if countKeyword(tokens, keyword) > 0 {
			terms = append(terms, keyword)
		}
	}
	return terms
}

func countKeyword(tokens []string, keyword string) int {
	// Segment the keyword the same way as the text so hyphenated and
	// multi-word entries match token for token.
	parts := util.Words(keyword)
	if len(parts) == 0 {
		return 0
	}
	if len(parts) == 1 {
		count := 0
		for _, token := range tokens {
			if token == parts[0] {
				count++
			}
		}
		return count
	}

	count := 0
	for i := 0; i+len(parts) <= len(tokens); i++ {
		matched := true
		for j, part := range parts {
			if tokens[i+j] != part {
				matched = false
				break
			}
		}
		if matched {
			count++
		}
	}
	return count
}
