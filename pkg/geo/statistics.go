package geo

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// Statistic patterns: percentages, multipliers, currency amounts, large
// separated numbers, and scale words next to figures.
var (
	percentRe    = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s?%`)
	multiplierRe = regexp.MustCompile(`\b\d+(?:[.,]\d+)?x\b`)
	currencyRe   = regexp.MustCompile(`[$€£]\s?\d+(?:[.,]\d+)*|\b\d+(?:[.,]\d+)*\s?(?:EUR|USD|GBP|Euro)\b`)
	largeNumRe   = regexp.MustCompile(`\b\d{1,3}(?:[.,]\d{3})+\b`)
	scaleRe      = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s?(?:million|billion|thousand|millionen|milliarden|tausend|mio|mrd)\b`)
)

var statPatterns = []*regexp.Regexp{percentRe, multiplierRe, currencyRe, largeNumRe, scaleRe}

// StatisticMatch is a quantitative claim found in the body.
type StatisticMatch struct {
	Text  string
	Start int // byte offset into the searched text
}

// FindStatistics returns every statistic-shaped match in the text in
// document order. Overlapping matches from different patterns are
// deduplicated by start offset.
func FindStatistics(text string) []StatisticMatch {
	seen := make(map[int]bool)
	var out []StatisticMatch
	for _, re := range statPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if seen[loc[0]] {
				continue
			}
			seen[loc[0]] = true
			out = append(out, StatisticMatch{Text: text[loc[0]:loc[1]], Start: loc[0]})
		}
	}
	// Insertion order across patterns is not positional; sort by offset.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Start < out[j-1].Start; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// StatisticDensity returns statistics per 100 words of canonical text.
func StatisticDensity(body string) (density float64, count, words int) {
	canonical := textmetrics.Canonicalize(body)
	words = textmetrics.WordCount(canonical)
	count = len(FindStatistics(canonical))
	if words == 0 {
		return 0, count, 0
	}
	return float64(count) / float64(words) * 100, count, words
}

// Context markers that ground a statistic: attribution verbs/sources,
// years, or a markdown link nearby.
var (
	attributionRe = regexp.MustCompile(`(?i)\b(according to|study|survey|report|research|source|analysis|data from|laut|studie|umfrage|bericht|quelle|untersuchung)\b`)
	yearRe        = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	mdLinkRe      = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)
)

// ContextlessStatistic is a statistic with no supporting context in its
// surrounding window.
type ContextlessStatistic struct {
	Statistic string
	Window    string
}

// contextWindow is the symmetric range around a statistic searched for
// attribution.
const contextWindow = 100

// FindContextlessStatistics flags percentages and multipliers whose
// surrounding ±100 characters contain no attribution marker, year, or
// markdown link. Callers must leave link markup in the text so links
// still count as context.
func FindContextlessStatistics(body string) []ContextlessStatistic {
	var out []ContextlessStatistic
	for _, re := range []*regexp.Regexp{percentRe, multiplierRe} {
		for _, loc := range re.FindAllStringIndex(body, -1) {
			start := loc[0] - contextWindow
			if start < 0 {
				start = 0
			}
			end := loc[1] + contextWindow
			if end > len(body) {
				end = len(body)
			}
			window := body[start:end]
			if attributionRe.MatchString(window) || yearRe.MatchString(window) || mdLinkRe.MatchString(window) {
				continue
			}
			out = append(out, ContextlessStatistic{
				Statistic: strings.TrimSpace(body[loc[0]:loc[1]]),
				Window:    window,
			})
		}
	}
	return out
}
