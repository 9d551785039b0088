package textmetrics

import "github.com/leapstack-labs/sitelint/pkg/content"

// readabilityCoefficients parameterize the Flesch-style formula
// score = intercept - asl*avgSentenceLength - asw*avgSyllablesPerWord.
type readabilityCoefficients struct {
	intercept float64
	asl       float64
	asw       float64
}

func coefficientsFor(locale content.Locale) readabilityCoefficients {
	switch locale {
	case content.LocaleEN:
		// Flesch Reading Ease.
		return readabilityCoefficients{intercept: 206.835, asl: 1.015, asw: 84.6}
	default:
		// Flesch-Amstad, the German adaptation. Also the fallback.
		return readabilityCoefficients{intercept: 180, asl: 1.0, asw: 58.5}
	}
}

// ReadabilityScore computes the locale's Flesch-style reading ease for
// canonical text, clamped to [0, 100]. Empty text scores zero.
func ReadabilityScore(text string, locale content.Locale) float64 {
	sentences := Sentences(text)
	words := Words(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	asl := float64(len(words)) / float64(len(sentences))
	asw := AverageSyllablesPerWord(words, locale)

	c := coefficientsFor(locale)
	score := c.intercept - c.asl*asl - c.asw*asw

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// InterpretReadability maps a score onto the locale's qualitative band.
// German scores sit lower than English ones for comparable prose, so the
// cut points differ per locale.
func InterpretReadability(score float64, locale content.Locale) string {
	if locale == content.LocaleEN {
		switch {
		case score >= 90:
			return "very easy"
		case score >= 80:
			return "easy"
		case score >= 70:
			return "fairly easy"
		case score >= 60:
			return "standard"
		case score >= 50:
			return "fairly difficult"
		case score >= 30:
			return "difficult"
		default:
			return "very difficult"
		}
	}
	switch {
	case score >= 70:
		return "very easy"
	case score >= 60:
		return "easy"
	case score >= 50:
		return "fairly easy"
	case score >= 40:
		return "standard"
	case score >= 30:
		return "fairly difficult"
	case score >= 20:
		return "difficult"
	default:
		return "very difficult"
	}
}
