package geo

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

var tableSeparatorRe = regexp.MustCompile(`^\s*\|?[\s:|-]*-{3,}[\s:|-]*\|`)

// HasTable reports whether the body contains a markdown table, recognized
// by its |--- separator row outside fenced code.
func HasTable(body string) bool {
	fences := textmetrics.IndexFences(body)
	for i, line := range strings.Split(body, "\n") {
		if fences.Inside(i + 1) {
			continue
		}
		if tableSeparatorRe.MatchString(line) {
			return true
		}
	}
	return false
}

// maxWordsBetweenHeadings is the largest prose gap tolerated without a
// structuring heading.
const maxWordsBetweenHeadings = 300

// HeadingGap is a stretch of prose exceeding the heading-density budget.
type HeadingGap struct {
	AfterHeading string // empty for the gap before the first heading
	Line         int
	Words        int
}

// FindHeadingGaps measures the word count between consecutive headings
// (and from document start to the first heading) and reports every gap
// above 300 words.
func FindHeadingGaps(body string) []HeadingGap {
	lines := strings.Split(body, "\n")
	headings := textmetrics.ExtractHeadings(body)

	segmentWords := func(from, to int) int { // line numbers, 1-indexed, exclusive of headings
		if from > to {
			return 0
		}
		segment := strings.Join(lines[from-1:to], "\n")
		return textmetrics.WordCount(textmetrics.Canonicalize(segment))
	}

	var gaps []HeadingGap
	if len(headings) == 0 {
		if n := segmentWords(1, len(lines)); n > maxWordsBetweenHeadings {
			gaps = append(gaps, HeadingGap{Line: 1, Words: n})
		}
		return gaps
	}

	if n := segmentWords(1, headings[0].Line-1); n > maxWordsBetweenHeadings {
		gaps = append(gaps, HeadingGap{Line: 1, Words: n})
	}
	for i, h := range headings {
		end := len(lines)
		if i+1 < len(headings) {
			end = headings[i+1].Line - 1
		}
		if n := segmentWords(h.Line+1, end); n > maxWordsBetweenHeadings {
			gaps = append(gaps, HeadingGap{AfterHeading: h.Text, Line: h.Line, Words: n})
		}
	}
	return gaps
}

// StructuralElements counts the distinct structural element kinds present
// in a body: table, ordered list, unordered list, blockquote, code block.
type StructuralElements struct {
	Table      bool
	Ordered    bool
	Unordered  bool
	Blockquote bool
	CodeBlock  bool
}

// Present returns how many element kinds the body uses.
func (s StructuralElements) Present() int {
	n := 0
	for _, b := range []bool{s.Table, s.Ordered, s.Unordered, s.Blockquote, s.CodeBlock} {
		if b {
			n++
		}
	}
	return n
}

var (
	orderedItemRe   = regexp.MustCompile(`^\s*\d+\.\s+`)
	unorderedItemRe = regexp.MustCompile(`^\s*[-*+]\s+`)
)

// CountStructuralElements inventories the body's structural variety.
func CountStructuralElements(body string) StructuralElements {
	fences := textmetrics.IndexFences(body)
	var s StructuralElements
	for i, line := range strings.Split(body, "\n") {
		lineNo := i + 1
		if fences.Inside(lineNo) {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				s.CodeBlock = true
			}
			continue
		}
		switch {
		case tableSeparatorRe.MatchString(line):
			s.Table = true
		case orderedItemRe.MatchString(line):
			s.Ordered = true
		case unorderedItemRe.MatchString(line):
			s.Unordered = true
		case strings.HasPrefix(strings.TrimSpace(line), ">"):
			s.Blockquote = true
		}
	}
	return s
}

// ExpectedStructuralElements returns how many structural element kinds a
// document of the given word count should use: one per 500 words, capped
// at the five known kinds.
func ExpectedStructuralElements(words int) int {
	expected := words / 500
	if expected > 5 {
		return 5
	}
	return expected
}

// TriggerBlock is an extraction-trigger phrase followed by a list or
// steps, the shape AI engines lift wholesale.
type TriggerBlock struct {
	Trigger string
	Line    int
}

// FindTriggerBlocks locates configured trigger phrases ("key takeaways",
// "step by step", ...) appearing on their own line or in a heading.
func FindTriggerBlocks(body string, triggers []string) []TriggerBlock {
	if len(triggers) == 0 {
		return nil
	}
	fences := textmetrics.IndexFences(body)
	var out []TriggerBlock
	for i, line := range strings.Split(body, "\n") {
		lineNo := i + 1
		if fences.Inside(lineNo) {
			continue
		}
		lower := strings.ToLower(line)
		for _, t := range triggers {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			if strings.Contains(lower, t) {
				out = append(out, TriggerBlock{Trigger: t, Line: lineNo})
				break
			}
		}
	}
	return out
}

// CountEntityMentions counts case-insensitive substring occurrences of an
// entity name (brand, city) in the text.
func CountEntityMentions(text, entity string) int {
	entity = strings.TrimSpace(entity)
	if entity == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(entity))
}
