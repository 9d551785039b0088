package textmetrics

import "github.com/leapstack-labs/sitelint/pkg/content"

// Locale word tables. These are deliberately small, auditable lists; the
// analysis stays heuristic and explainable rather than model-driven.

var commonWordsEN = toSet([]string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
	"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
	"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
	"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",
	"something", "important", "different", "between", "through", "another",
	"example", "information", "question", "business", "website", "content",
	"customers", "company", "service", "services", "product", "products",
	"everything", "anything", "together", "without", "however", "therefore",
})

var commonWordsDE = toSet([]string{
	"der", "die", "das", "und", "in", "zu", "den", "mit", "von", "sich",
	"des", "auf", "für", "ist", "im", "dem", "nicht", "ein", "eine", "als",
	"auch", "es", "an", "werden", "aus", "er", "hat", "dass", "sie", "nach",
	"wird", "bei", "einer", "um", "am", "sind", "noch", "wie", "einem", "über",
	"einen", "so", "zum", "war", "haben", "nur", "oder", "aber", "vor", "zur",
	"bis", "mehr", "durch", "man", "sein", "wurde", "sei", "wenn", "unter",
	"wir", "diese", "dieser", "dieses", "ihre", "ihren", "seinem", "seinen",
	"können", "müssen", "sollen", "wollen", "machen", "geben", "kommen",
	"jahr", "jahre", "jahren", "zeit", "beispiel", "unternehmen", "kunden",
	"website", "inhalte", "fragen", "antwort", "wichtig", "gerne", "bereits",
	"zwischen", "während", "außerdem", "dabei", "dafür", "damit", "darauf",
	"deshalb", "trotzdem", "allerdings", "natürlich", "eigentlich",
})

// functionWords are skipped when determining the effective first word of a
// sentence: articles, demonstratives and low cardinals carry no signal for
// beginning-repetition detection.
var functionWordsEN = toSet([]string{
	"the", "a", "an", "this", "that", "these", "those",
	"one", "two", "three", "some", "any", "each", "every",
	"my", "your", "our", "their", "its",
})

var functionWordsDE = toSet([]string{
	"der", "die", "das", "ein", "eine", "einen", "einem", "einer", "eines",
	"dieser", "diese", "dieses", "diesen", "diesem",
	"jener", "jene", "jenes", "eins", "zwei", "drei",
	"mein", "meine", "dein", "deine", "unser", "unsere", "ihr", "ihre",
})

var transitionWordsEN = toSet([]string{
	"however", "therefore", "furthermore", "moreover", "additionally",
	"consequently", "meanwhile", "nevertheless", "nonetheless", "instead",
	"similarly", "likewise", "accordingly", "subsequently", "finally",
	"first", "second", "third", "next", "then", "also", "besides",
	"thus", "hence", "still", "yet", "conversely", "alternatively",
	"ultimately", "overall", "specifically", "notably", "importantly",
})

var transitionPhrasesEN = []string{
	"in addition", "for example", "for instance", "on the other hand",
	"as a result", "in contrast", "in conclusion", "in summary",
	"in other words", "at the same time", "in fact", "of course",
	"above all", "after all", "in particular", "to sum up",
	"on top of that", "as well as", "in the end", "by comparison",
}

var transitionWordsDE = toSet([]string{
	"jedoch", "deshalb", "deswegen", "daher", "außerdem", "zudem",
	"allerdings", "trotzdem", "dennoch", "stattdessen", "ebenso",
	"folglich", "anschließend", "schließlich", "zunächst", "danach",
	"dann", "auch", "zusätzlich", "somit", "also", "weiterhin",
	"einerseits", "andererseits", "gleichzeitig", "letztendlich",
	"insbesondere", "beispielsweise", "dementsprechend", "demnach",
})

var transitionPhrasesDE = []string{
	"zum beispiel", "auf der anderen seite", "im gegensatz dazu",
	"aus diesem grund", "darüber hinaus", "im vergleich dazu",
	"mit anderen worten", "zur gleichen zeit", "in der tat",
	"vor allem", "im ergebnis", "zusammenfassend lässt sich sagen",
	"unter dem strich", "nicht zuletzt", "im folgenden",
}

var auxiliariesEN = toSet([]string{
	"is", "are", "was", "were", "be", "been", "being",
	"am", "get", "got", "gets", "getting",
})

var auxiliariesDE = toSet([]string{
	"werden", "wird", "wurde", "wurden", "worden",
	"werde", "wirst", "werdet", "würde", "würden", "würdest",
})

// irregularParticiplesEN covers common English past participles that do
// not end in -ed.
var irregularParticiplesEN = toSet([]string{
	"done", "made", "built", "written", "given", "taken", "seen", "known",
	"shown", "found", "held", "kept", "left", "lost", "meant", "paid",
	"put", "read", "said", "sent", "set", "sold", "told", "thought",
	"understood", "won", "chosen", "broken", "spoken", "driven", "drawn",
	"eaten", "fallen", "felt", "gotten", "grown", "heard", "hidden", "hit",
	"led", "met", "run", "spent", "stood", "taught", "thrown", "worn",
	"brought", "bought", "caught", "cut", "begun", "become", "created",
})

var questionWordsEN = []string{
	"what", "why", "how", "when", "where", "who", "which",
	"can", "do", "does", "is", "are", "should", "will",
}

var questionWordsDE = []string{
	"was", "warum", "wie", "wann", "wo", "wer", "welche", "welcher",
	"welches", "wieso", "weshalb", "kann", "ist", "sind", "sollte",
}

// backReferencesEN are sentence openers that point at content the reader
// of an isolated section cannot see.
var backReferencesEN = []string{
	"this", "that", "these", "those", "it", "they", "he", "she",
	"such", "there", "here",
}

var backReferencePhrasesEN = []string{
	"as mentioned", "as described", "as noted", "as discussed",
	"as shown above", "as we saw", "the above", "the aforementioned",
	"like we said", "as stated earlier",
}

var backReferencesDE = []string{
	"dies", "diese", "dieser", "dieses", "das", "es", "sie", "er",
	"solche", "dort", "hier", "dabei", "damit", "dadurch", "darauf",
}

var backReferencePhrasesDE = []string{
	"wie erwähnt", "wie beschrieben", "wie oben gezeigt",
	"wie bereits gesagt", "wie wir gesehen haben", "das oben genannte",
}

// fillerOpeningsEN are throat-clearing patterns that delay a section's
// actual answer; the directness detector skips past them.
var fillerOpeningsEN = []string{
	"in this section", "in this article", "in this post", "let's talk about",
	"let's take a look", "it is important to note", "it's important to note",
	"it is worth noting", "before we begin", "first of all", "to begin with",
	"as you may know", "as we all know", "needless to say",
	"when it comes to", "there are many", "there is a lot",
}

var fillerOpeningsDE = []string{
	"in diesem abschnitt", "in diesem artikel", "in diesem beitrag",
	"werfen wir einen blick", "es ist wichtig zu beachten",
	"es ist erwähnenswert", "bevor wir beginnen", "zunächst einmal",
	"wie sie vielleicht wissen", "wie wir alle wissen",
	"wenn es um", "es gibt viele",
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// CommonWords returns the locale's top-frequency word set.
func CommonWords(locale content.Locale) map[string]bool {
	if locale == content.LocaleEN {
		return commonWordsEN
	}
	return commonWordsDE
}

// FunctionWords returns the locale's skip set for sentence beginnings.
func FunctionWords(locale content.Locale) map[string]bool {
	if locale == content.LocaleEN {
		return functionWordsEN
	}
	return functionWordsDE
}

// TransitionWords returns the locale's single-word transition set.
func TransitionWords(locale content.Locale) map[string]bool {
	if locale == content.LocaleEN {
		return transitionWordsEN
	}
	return transitionWordsDE
}

// TransitionPhrases returns the locale's multi-word transition list.
func TransitionPhrases(locale content.Locale) []string {
	if locale == content.LocaleEN {
		return transitionPhrasesEN
	}
	return transitionPhrasesDE
}

// QuestionWords returns the locale's interrogative openers.
func QuestionWords(locale content.Locale) []string {
	if locale == content.LocaleEN {
		return questionWordsEN
	}
	return questionWordsDE
}

// BackReferences returns the locale's unresolved-opening words.
func BackReferences(locale content.Locale) []string {
	if locale == content.LocaleEN {
		return backReferencesEN
	}
	return backReferencesDE
}

// BackReferencePhrases returns the locale's unresolved-opening phrases.
func BackReferencePhrases(locale content.Locale) []string {
	if locale == content.LocaleEN {
		return backReferencePhrasesEN
	}
	return backReferencePhrasesDE
}

// FillerOpenings returns the locale's default filler-opening phrases.
func FillerOpenings(locale content.Locale) []string {
	if locale == content.LocaleEN {
		return fillerOpeningsEN
	}
	return fillerOpeningsDE
}
