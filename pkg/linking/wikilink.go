package linking

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/notemesh/backend/internal/util"
	"github.com/notemesh/backend/pkg/common"
)

// wikiLinkRe matches [[Title]] and [[Title|Display Text]] spans.
var wikiLinkRe = regexp.MustCompile(`\[\[([^\[\]|]+)(?:\|([^\[\]]+))?\]\]`)

// ParseWikiLinks extracts every wiki-link span from content with its byte
// offsets. Matching against the corpus happens separately; parsed links
// start out unmatched.
func ParseWikiLinks(content string) []common.WikiLink {
	matches := wikiLinkRe.FindAllStringSubmatchIndex(content, -1)
	links := make([]common.WikiLink, 0, len(matches))

	for _, m := range matches {
		title := strings.TrimSpace(content[m[2]:m[3]])
		if title == "" {
			continue
		}

		display := title
		if m[4] >= 0 {
			display = strings.TrimSpace(content[m[4]:m[5]])
		}

		links = append(links, common.WikiLink{
			Title:   title,
			Display: display,
			Start:   m[0],
			End:     m[1],
		})
	}

	return links
}

// titleIndex maps lower-cased titles to documents. With duplicate titles
// the first document in repository order wins, which keeps resolution
// stable across calls.
func titleIndex(docs []common.Document) map[string]common.Document {
	index := make(map[string]common.Document, len(docs))
	for _, doc := range docs {
		key := strings.ToLower(strings.TrimSpace(doc.Title))
		if key == "" {
			continue
		}
		if _, ok := index[key]; !ok {
			index[key] = doc
		}
	}
	return index
}

// ResolveLinks parses a document's wiki-links and matches each title
// against the corpus, case-insensitively. Links without a matching title
// are reported as unmatched, never as errors.
func (e *Engine) ResolveLinks(ctx context.Context, userID, documentID string) ([]common.WikiLink, error) {
	doc, err := e.store.GetDocument(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	docs, err := e.store.ListDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	index := titleIndex(docs)
	links := ParseWikiLinks(doc.Content)
	for i := range links {
		target, ok := index[strings.ToLower(links[i].Title)]
		if !ok || target.ID == documentID {
			continue
		}
		links[i].TargetID = target.ID
		links[i].Matched = true
	}

	return links, nil
}

// LinkedDocumentIDs reduces resolved links to the de-duplicated target ID
// list, the shape UpdateDocumentLinks persists.
func LinkedDocumentIDs(links []common.WikiLink) []string {
	ids := []string{}
	seen := make(map[string]struct{})
	for _, link := range links {
		if !link.Matched {
			continue
		}
		if _, ok := seen[link.TargetID]; ok {
			continue
		}
		seen[link.TargetID] = struct{}{}
		ids = append(ids, link.TargetID)
	}
	return ids
}

// Backlinks finds every other document that wiki-links to the target
// document's title. Multiple links from one source collapse into a single
// entry carrying a link count and an excerpt around the first match.
func (e *Engine) Backlinks(ctx context.Context, userID, documentID string) ([]common.Backlink, error) {
	target, err := e.store.GetDocument(ctx, userID, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	targetTitle := strings.ToLower(strings.TrimSpace(target.Title))

	docs, err := e.store.ListDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	backlinks := []common.Backlink{}
	for _, doc := range docs {
		if doc.ID == documentID {
			continue
		}

		count := 0
		var first *common.WikiLink
		for _, link := range ParseWikiLinks(doc.Content) {
			if strings.ToLower(link.Title) != targetTitle {
				continue
			}
			count++
			if first == nil {
				l := link
				first = &l
			}
		}
		if count == 0 {
			continue
		}

		backlinks = append(backlinks, common.Backlink{
			SourceID:    doc.ID,
			SourceTitle: doc.Title,
			LinkCount:   count,
			Excerpt:     util.Excerpt(doc.Content, first.Start, first.End, 100),
		})
	}

	return backlinks, nil
}

// ValidateWikiLink reports whether a title resolves to any document in the
// user's corpus.
func (e *Engine) ValidateWikiLink(ctx context.Context, userID, title string) (bool, error) {
	docs, err := e.store.ListDocuments(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to list documents: %w", err)
	}

	_, ok := titleIndex(docs)[strings.ToLower(strings.TrimSpace(title))]
	return ok, nil
}
