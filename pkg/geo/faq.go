package geo

import (
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// FAQPair is one H3 question with its answer text.
type FAQPair struct {
	Question string
	Answer   string
	Line     int
}

// FAQSection is an H2 section recognized as a FAQ with its Q/A pairs.
type FAQSection struct {
	Heading textmetrics.Heading
	Pairs   []FAQPair
}

var faqMarkers = []string{"faq", "frequently asked", "häufige fragen", "häufig gestellte"}

// isFAQHeading recognizes FAQ section headings in either locale.
func isFAQHeading(text string) bool {
	lower := strings.ToLower(text)
	for _, m := range faqMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// FindFAQ locates the first FAQ section and extracts its H3 question/
// answer pairs. Returns nil when the document has no FAQ heading.
func FindFAQ(body string) *FAQSection {
	sections := SplitSections(body)
	for _, s := range sections {
		if s.Lead || !isFAQHeading(s.Heading.Text) {
			continue
		}
		faq := &FAQSection{Heading: s.Heading}

		lines := strings.Split(s.Body, "\n")
		subHeadings := textmetrics.ExtractHeadings(s.Body)
		var h3s []textmetrics.Heading
		for _, h := range subHeadings {
			if h.Level == 3 {
				h3s = append(h3s, h)
			}
		}
		for i, h := range h3s {
			end := len(lines)
			if i+1 < len(h3s) {
				end = h3s[i+1].Line - 1
			}
			answer := strings.TrimSpace(strings.Join(lines[h.Line:end], "\n"))
			faq.Pairs = append(faq.Pairs, FAQPair{
				Question: h.Text,
				Answer:   answer,
				Line:     s.StartLine + h.Line,
			})
		}
		return faq
	}
	return nil
}

// FAQQuality summarizes how well a FAQ section serves as citable content.
type FAQQuality struct {
	Pairs          int
	QuestionRatio  float64 // questions actually phrased as questions
	AnswerInRange  float64 // answers inside the target word range
	MinAnswerWords int
	MaxAnswerWords int
}

// AssessFAQ measures a FAQ section against an answer-length word range.
// Callers choose the range: [20,150] for presence-style checks, [30,75]
// for the stricter extractability check.
func AssessFAQ(faq *FAQSection, locale content.Locale, minWords, maxWords int) FAQQuality {
	q := FAQQuality{MinAnswerWords: minWords, MaxAnswerWords: maxWords}
	if faq == nil || len(faq.Pairs) == 0 {
		return q
	}
	q.Pairs = len(faq.Pairs)

	questions := 0
	inRange := 0
	for _, p := range faq.Pairs {
		if IsQuestionHeading(p.Question, locale) {
			questions++
		}
		words := textmetrics.WordCount(textmetrics.Canonicalize(p.Answer))
		if words >= minWords && words <= maxWords {
			inRange++
		}
	}
	q.QuestionRatio = float64(questions) / float64(q.Pairs)
	q.AnswerInRange = float64(inRange) / float64(q.Pairs)
	return q
}
