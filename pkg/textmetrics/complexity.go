package textmetrics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

func complexityLengthThreshold(locale content.Locale) int {
	if locale == content.LocaleEN {
		return 7
	}
	// German compounds run long; a higher floor avoids flagging ordinary
	// vocabulary.
	return 10
}

// IsComplexWord classifies a word as hard vocabulary. A word is complex
// when it is longer than the locale threshold, estimates to three or more
// syllables, and is not in the locale's top-frequency set. For English,
// capitalized words are excluded as likely proper nouns; German
// capitalizes every noun, so no such exclusion applies there.
func IsComplexWord(word string, locale content.Locale) bool {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)

	if utf8.RuneCountInString(lower) <= complexityLengthThreshold(locale) {
		return false
	}
	if CountSyllables(lower, locale) < 3 {
		return false
	}
	if CommonWords(locale)[lower] {
		return false
	}
	if locale == content.LocaleEN {
		first := []rune(trimmed)[0]
		if unicode.IsUpper(first) {
			return false
		}
	}
	return true
}

// ComplexWordRatio returns the fraction of words classified as complex.
func ComplexWordRatio(words []string, locale content.Locale) float64 {
	if len(words) == 0 {
		return 0
	}
	complex := 0
	for _, w := range words {
		if IsComplexWord(w, locale) {
			complex++
		}
	}
	return float64(complex) / float64(len(words))
}

// TypeTokenRatio returns unique words divided by total words, a
// vocabulary-diversity signal. Comparison is case-insensitive.
func TypeTokenRatio(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[strings.ToLower(w)] = true
	}
	return float64(len(unique)) / float64(len(words))
}
