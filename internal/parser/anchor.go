package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	separatorRun = regexp.MustCompile(`[ /-]+`)
	nonWordChar  = regexp.MustCompile(`[^a-z0-9_]`)
)

// AnchorNamer derives URL-safe anchors from header titles and keeps them
// unique within one scan. Not safe for reuse across documents.
type AnchorNamer struct {
	seen map[string]int
}

// NewAnchorNamer creates an empty namer
func NewAnchorNamer() *AnchorNamer {
	return &AnchorNamer{seen: make(map[string]int)}
}

// Name converts a header title into a unique anchor. Repeated candidates
// get a numeric suffix counting prior occurrences: setup, setup_1, setup_2.
func (n *AnchorNamer) Name(title string) string {
	candidate := slugify(title)
	if candidate == "" {
		// Titles made entirely of stripped punctuation still need a
		// usable link target
		candidate = "section"
	}

	prior, ok := n.seen[candidate]
	n.seen[candidate]++
	if !ok {
		return candidate
	}
	return fmt.Sprintf("%s_%d", candidate, prior)
}

// slugify lowercases the title, collapses runs of spaces, hyphens and
// slashes into single underscores, trims edge underscores, then drops
// whatever is left that is not alphanumeric or underscore
func slugify(title string) string {
	s := strings.ToLower(title)
	s = separatorRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	return nonWordChar.ReplaceAllString(s, "")
}
