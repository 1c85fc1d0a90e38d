// Package richtext reconstructs question text that embeds indexed LaTeX
// placeholders into an ordered sequence of display segments.
package richtext

import (
	"fmt"
	"strings"

	"examprep-service/internal/models"
)

type SegmentKind int

const (
	Text SegmentKind = iota
	Math
)

// Segment is one piece of rendered content: literal text or math source.
type Segment struct {
	Kind    SegmentKind
	Content string
}

// Render substitutes each recognized placeholder with its math fragment.
// Two placeholder forms are accepted per fragment index: the tag form
// `<tm-math id="N" />` and the hash form `#latexN#`. Fragments whose
// placeholder is absent are dropped; placeholders with no matching
// fragment stay literal. Non-breaking spaces inside math source are
// normalized to regular spaces. Rendering never fails: with no matches
// the raw content comes back as a single text segment.
func Render(content string, latexes []models.LatexFragment) []Segment {
	if content == "" {
		return nil
	}

	var segments []Segment
	lastIndex := 0

	for i, fragment := range latexes {
		tagForm := fmt.Sprintf(`<tm-math id="%d" />`, i)
		hashForm := fmt.Sprintf("#latex%d#", i)

		placeholder := tagForm
		at := strings.Index(content[lastIndex:], tagForm)
		if at == -1 {
			placeholder = hashForm
			at = strings.Index(content[lastIndex:], hashForm)
		}
		if at == -1 {
			continue
		}
		at += lastIndex

		if at > lastIndex {
			segments = append(segments, Segment{Kind: Text, Content: content[lastIndex:at]})
		}
		segments = append(segments, Segment{
			Kind:    Math,
			Content: strings.ReplaceAll(fragment.Latex, " ", " "),
		})
		lastIndex = at + len(placeholder)
	}

	if len(segments) == 0 {
		// No placeholder matched; trust the source text as-is.
		return []Segment{{Kind: Text, Content: content}}
	}

	if lastIndex < len(content) {
		segments = append(segments, Segment{Kind: Text, Content: content[lastIndex:]})
	}
	return segments
}

// Plain flattens segments back to a single string, math content included
// verbatim. Useful for logs and summary text.
func Plain(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Content)
	}
	return b.String()
}
