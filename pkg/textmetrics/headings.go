package textmetrics

import (
	"regexp"
	"strings"
)

// Heading is a markdown heading with its 1-indexed source line.
type Heading struct {
	Level int
	Text  string
	Line  int
}

var headingLineRe = regexp.MustCompile(`^(#{1,6})[ \t]+(.*)$`)

// ExtractHeadings returns all ATX headings in document order, skipping
// lines inside fenced code blocks.
func ExtractHeadings(body string) []Heading {
	fences := IndexFences(body)
	var headings []Heading
	for i, line := range strings.Split(body, "\n") {
		lineNo := i + 1
		if fences.Inside(lineNo) {
			continue
		}
		m := headingLineRe.FindStringSubmatch(strings.TrimRight(line, " \t"))
		if m == nil {
			continue
		}
		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(m[2]),
			Line:  lineNo,
		})
	}
	return headings
}

// HierarchyIssue reports a heading that skips levels, e.g. an H4 directly
// under an H2.
type HierarchyIssue struct {
	Heading          Heading
	PreviousLevel    int
	ExpectedMaxLevel int
}

// ValidateHierarchy walks headings in order and flags any heading whose
// level exceeds the previous heading's level by more than one. The first
// heading never violates (previous level starts at zero).
func ValidateHierarchy(headings []Heading) []HierarchyIssue {
	var issues []HierarchyIssue
	previous := 0
	for _, h := range headings {
		if previous > 0 && h.Level > previous+1 {
			issues = append(issues, HierarchyIssue{
				Heading:          h,
				PreviousLevel:    previous,
				ExpectedMaxLevel: previous + 1,
			})
		}
		previous = h.Level
	}
	return issues
}
