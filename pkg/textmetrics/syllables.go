package textmetrics

import (
	"math"
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

func isVowel(r rune, locale content.Locale) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	case 'y':
		return locale == content.LocaleEN
	case 'ä', 'ö', 'ü':
		return locale == content.LocaleDE
	}
	return false
}

// CountSyllables estimates the syllable count of a single word using
// vowel-group counting with locale corrections:
//
//   - en: a trailing silent "e" discounts half a syllable when the raw
//     count is above one.
//   - de: long compounds (>12 letters) are raised to ceil(letters/4) when
//     the vowel-group estimate comes in lower.
//
// The result is never below one.
func CountSyllables(word string, locale content.Locale) int {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return 1
	}

	count := 0.0
	length := 0
	prevVowel := false
	for _, r := range w {
		length++
		v := isVowel(r, locale)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if locale == content.LocaleEN && count > 1 && strings.HasSuffix(w, "e") {
		count -= 0.5
	}

	estimate := int(math.Floor(count))
	if locale == content.LocaleDE && length > 12 {
		if byLength := int(math.Ceil(float64(length) / 4)); byLength > estimate {
			estimate = byLength
		}
	}

	if estimate < 1 {
		return 1
	}
	return estimate
}

// AverageSyllablesPerWord computes the mean syllable estimate over words.
func AverageSyllablesPerWord(words []string, locale content.Locale) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += CountSyllables(w, locale)
	}
	return float64(total) / float64(len(words))
}
