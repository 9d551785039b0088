// Package geo implements the heuristics behind generative-engine
// optimization: signals that make content citable by AI search engines.
// Detectors operate on level-2-heading-delimited sections or on whole
// documents and are pure functions over the raw body.
package geo

import (
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// Section is a slice of the document owned by one H2 heading. Lead holds
// the content before the first H2 when non-empty.
type Section struct {
	Heading   textmetrics.Heading
	Body      string
	StartLine int // 1-indexed line of the heading, or 1 for the lead
	Lead      bool
}

// SplitSections divides a body into H2-delimited sections. Content before
// the first H2 becomes a lead section without a heading. Headings inside
// fenced code are not section boundaries.
func SplitSections(body string) []Section {
	lines := strings.Split(body, "\n")
	headings := textmetrics.ExtractHeadings(body)

	var h2s []textmetrics.Heading
	for _, h := range headings {
		if h.Level == 2 {
			h2s = append(h2s, h)
		}
	}

	if len(h2s) == 0 {
		if strings.TrimSpace(body) == "" {
			return nil
		}
		return []Section{{Body: body, StartLine: 1, Lead: true}}
	}

	var sections []Section
	if lead := strings.Join(lines[:h2s[0].Line-1], "\n"); strings.TrimSpace(lead) != "" {
		sections = append(sections, Section{Body: lead, StartLine: 1, Lead: true})
	}
	for i, h := range h2s {
		end := len(lines)
		if i+1 < len(h2s) {
			end = h2s[i+1].Line - 1
		}
		sections = append(sections, Section{
			Heading:   h,
			Body:      strings.Join(lines[h.Line:end], "\n"),
			StartLine: h.Line,
		})
	}
	return sections
}

// FirstSentence returns the first sentence of a section's canonical text,
// or empty when the section has no prose.
func (s Section) FirstSentence() string {
	sentences := textmetrics.Sentences(textmetrics.Canonicalize(s.Body))
	if len(sentences) == 0 {
		return ""
	}
	return sentences[0]
}
