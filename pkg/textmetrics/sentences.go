package textmetrics

import (
	"math"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

// SentenceStats holds length statistics over a document's sentences.
type SentenceStats struct {
	Count     int
	Mean      float64 // words per sentence
	Max       int
	Variation float64 // coefficient of variation (stdev / mean)
}

// AnalyzeSentences computes sentence-length statistics for canonical
// text. The coefficient of variation requires at least two sentences and
// is zero otherwise.
func AnalyzeSentences(text string) SentenceStats {
	sentences := Sentences(text)
	stats := SentenceStats{Count: len(sentences)}
	if stats.Count == 0 {
		return stats
	}

	lengths := make([]int, len(sentences))
	total := 0
	for i, s := range sentences {
		n := WordCount(s)
		lengths[i] = n
		total += n
		if n > stats.Max {
			stats.Max = n
		}
	}
	stats.Mean = float64(total) / float64(stats.Count)

	if stats.Count >= 2 && stats.Mean > 0 {
		sumSq := 0.0
		for _, n := range lengths {
			d := float64(n) - stats.Mean
			sumSq += d * d
		}
		stdev := math.Sqrt(sumSq / float64(stats.Count))
		stats.Variation = stdev / stats.Mean
	}
	return stats
}

// BeginningRun is a run of consecutive sentences opening with the same
// effective word.
type BeginningRun struct {
	Word       string
	Count      int
	StartIndex int
}

// effectiveOpener returns the word that characterizes a sentence's
// opening: the first word, or the second when the first is a locale
// function word (article, demonstrative, low cardinal).
func effectiveOpener(sentence string, locale content.Locale) string {
	words := Words(strings.ToLower(sentence))
	if len(words) == 0 {
		return ""
	}
	if FunctionWords(locale)[words[0]] && len(words) > 1 {
		return words[1]
	}
	return words[0]
}

// FindBeginningRuns flags runs of three or more consecutive sentences
// sharing the same effective opening word.
func FindBeginningRuns(text string, locale content.Locale) []BeginningRun {
	sentences := Sentences(text)
	var runs []BeginningRun

	runWord := ""
	runStart := 0
	runLen := 0

	flush := func() {
		if runLen >= 3 && runWord != "" {
			runs = append(runs, BeginningRun{Word: runWord, Count: runLen, StartIndex: runStart})
		}
	}

	for i, s := range sentences {
		w := effectiveOpener(s, locale)
		if w != "" && w == runWord {
			runLen++
			continue
		}
		flush()
		runWord = w
		runStart = i
		runLen = 1
	}
	flush()
	return runs
}

// TransitionRatio returns the fraction of sentences containing at least
// one locale transition word or phrase.
func TransitionRatio(text string, locale content.Locale) float64 {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return 0
	}
	single := TransitionWords(locale)
	phrases := TransitionPhrases(locale)

	hits := 0
	for _, s := range sentences {
		lower := strings.ToLower(s)
		found := false
		for _, w := range Words(lower) {
			if single[w] {
				found = true
				break
			}
		}
		if !found {
			for _, p := range phrases {
				if strings.Contains(lower, p) {
					found = true
					break
				}
			}
		}
		if found {
			hits++
		}
	}
	return float64(hits) / float64(len(sentences))
}
