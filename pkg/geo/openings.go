package geo

import (
	"strings"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/textmetrics"
)

// UnresolvedOpening is a section whose first sentence starts with a
// pronoun or back-reference that an AI snippet reader cannot resolve.
type UnresolvedOpening struct {
	Section  string
	Line     int
	Sentence string
	Marker   string
}

// FindUnresolvedOpenings checks each H2 section's first sentence for
// opening pronouns ("This", "Es") or back-reference phrases ("as
// mentioned above"). Sections lifted out of context must stand on their
// own to be citable.
func FindUnresolvedOpenings(body string, locale content.Locale) []UnresolvedOpening {
	words := textmetrics.BackReferences(locale)
	phrases := textmetrics.BackReferencePhrases(locale)

	var out []UnresolvedOpening
	for _, s := range SplitSections(body) {
		if s.Lead {
			continue
		}
		first := s.FirstSentence()
		if first == "" {
			continue
		}
		lower := strings.ToLower(first)

		marker := ""
		for _, p := range phrases {
			if strings.HasPrefix(lower, p) {
				marker = p
				break
			}
		}
		if marker == "" {
			tokens := textmetrics.Words(lower)
			if len(tokens) > 0 {
				for _, w := range words {
					if tokens[0] == w {
						marker = w
						break
					}
				}
			}
		}
		if marker == "" {
			continue
		}
		out = append(out, UnresolvedOpening{
			Section:  s.Heading.Text,
			Line:     s.StartLine,
			Sentence: first,
			Marker:   marker,
		})
	}
	return out
}
