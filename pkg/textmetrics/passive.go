package textmetrics

import (
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
)

func passiveWindow(locale content.Locale) int {
	if locale == content.LocaleEN {
		return 3
	}
	// German participles drift to the clause end, so the window is wider.
	return 5
}

func auxiliaries(locale content.Locale) map[string]bool {
	if locale == content.LocaleEN {
		return auxiliariesEN
	}
	return auxiliariesDE
}

// isParticipleEN recognizes English past participles: the irregular set or
// a plain -ed suffix.
func isParticipleEN(word string) bool {
	if irregularParticiplesEN[word] {
		return true
	}
	return len(word) > 3 && strings.HasSuffix(word, "ed")
}

var inseparablePrefixesDE = []string{"be", "emp", "ent", "er", "ge", "miss", "ver", "zer"}

var separablePrefixesDE = []string{
	"ab", "an", "auf", "aus", "bei", "ein", "mit", "nach",
	"vor", "weg", "zu", "zurück", "zusammen", "über", "um", "unter", "durch",
}

// isParticipleDE recognizes the common German participle shapes:
// ge...t, ge...en, -iert, separable prefixes with an inserted "ge"
// (aufgebaut), and inseparable-prefix forms without "ge" (verkauft).
func isParticipleDE(word string) bool {
	if len(word) < 5 {
		return false
	}
	if strings.HasSuffix(word, "iert") {
		return true
	}
	hasParticipleSuffix := strings.HasSuffix(word, "t") || strings.HasSuffix(word, "en")
	if !hasParticipleSuffix {
		return false
	}
	if strings.HasPrefix(word, "ge") {
		return true
	}
	for _, p := range separablePrefixesDE {
		if strings.HasPrefix(word, p+"ge") && len(word) > len(p)+4 {
			return true
		}
	}
	for _, p := range inseparablePrefixesDE {
		if strings.HasPrefix(word, p) && len(word) > len(p)+3 {
			return true
		}
	}
	return false
}

// IsPassiveSentence reports whether a sentence contains an auxiliary
// followed, within the locale window, by a participle.
func IsPassiveSentence(sentence string, locale content.Locale) bool {
	words := Words(strings.ToLower(sentence))
	window := passiveWindow(locale)
	aux := auxiliaries(locale)

	for i, w := range words {
		if !aux[w] {
			continue
		}
		limit := i + window
		if limit > len(words)-1 {
			limit = len(words) - 1
		}
		for j := i + 1; j <= limit; j++ {
			candidate := words[j]
			if locale == content.LocaleEN {
				if isParticipleEN(candidate) {
					return true
				}
			} else if isParticipleDE(candidate) {
				return true
			}
		}
		// German auxiliaries often trail the participle ("... gebaut wird").
		if locale == content.LocaleDE {
			low := i - window
			if low < 0 {
				low = 0
			}
			for j := low; j < i; j++ {
				if isParticipleDE(words[j]) {
					return true
				}
			}
		}
	}
	return false
}

// PassiveStats summarizes passive-voice usage over a set of sentences.
type PassiveStats struct {
	Total   int
	Passive int
	Ratio   float64
}

// AnalyzePassiveVoice computes the passive-sentence ratio of canonical
// text.
func AnalyzePassiveVoice(text string, locale content.Locale) PassiveStats {
	sentences := Sentences(text)
	stats := PassiveStats{Total: len(sentences)}
	for _, s := range sentences {
		if IsPassiveSentence(s, locale) {
			stats.Passive++
		}
	}
	if stats.Total > 0 {
		stats.Ratio = float64(stats.Passive) / float64(stats.Total)
	}
	return stats
}
