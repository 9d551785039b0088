package geo

import (
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// IsQuestionHeading reports whether a heading reads as a question: it ends
// with a question mark or begins with a locale question word.
func IsQuestionHeading(text string, locale content.Locale) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, "?") {
		return true
	}
	words := textmetrics.Words(strings.ToLower(trimmed))
	if len(words) == 0 {
		return false
	}
	for _, q := range textmetrics.QuestionWords(locale) {
		if words[0] == q {
			return true
		}
	}
	return false
}

// QuestionHeadingRatio returns the fraction of H2/H3 headings phrased as
// questions. Zero headings yield a ratio of zero.
func QuestionHeadingRatio(body string, locale content.Locale) (ratio float64, total int) {
	for _, h := range textmetrics.ExtractHeadings(body) {
		if h.Level != 2 && h.Level != 3 {
			continue
		}
		total++
		if IsQuestionHeading(h.Text, locale) {
			ratio++
		}
	}
	if total == 0 {
		return 0, 0
	}
	return ratio / float64(total), total
}

// DirectnessResult describes a section whose lead sentence fails to answer
// its heading directly.
type DirectnessResult struct {
	Section  string
	Line     int
	Sentence string
	Filler   string // the matched filler opening, when any
}

// CheckDirectness inspects each H2 section's first sentence. A sentence
// opening with a filler pattern (configured ones plus the locale defaults)
// is flagged; sections without prose are skipped.
func CheckDirectness(body string, locale content.Locale, extraFillers []string) []DirectnessResult {
	fillers := append([]string{}, textmetrics.FillerOpenings(locale)...)
	fillers = append(fillers, extraFillers...)

	var results []DirectnessResult
	for _, s := range SplitSections(body) {
		if s.Lead {
			continue
		}
		first := s.FirstSentence()
		if first == "" {
			continue
		}
		lower := strings.ToLower(first)
		for _, f := range fillers {
			f = strings.ToLower(strings.TrimSpace(f))
			if f == "" {
				continue
			}
			if strings.HasPrefix(lower, f) {
				results = append(results, DirectnessResult{
					Section:  s.Heading.Text,
					Line:     s.StartLine,
					Sentence: first,
					Filler:   f,
				})
				break
			}
		}
	}
	return results
}
