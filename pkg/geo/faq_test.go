package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sitelint/pkg/content"
	"github.com/leapstack-labs/sitelint/pkg/geo"
)

const faqBody = `Einleitung zum Thema.

## Häufige Fragen

### Was kostet das?

Die Preise beginnen bei hundert Euro pro Monat.

### Wie lange dauert die Einrichtung?

Die Einrichtung dauert in der Regel zwei Werktage.

### Gibt es eine Testphase?

Ja, die ersten vierzehn Tage sind kostenlos.
`

func TestFindFAQ(t *testing.T) {
	faq := geo.FindFAQ(faqBody)
	require.NotNil(t, faq)
	require.Len(t, faq.Pairs, 3)
	assert.Equal(t, "Was kostet das?", faq.Pairs[0].Question)
	assert.Contains(t, faq.Pairs[0].Answer, "hundert Euro")
	assert.Contains(t, faq.Pairs[2].Answer, "kostenlos")

	assert.Nil(t, geo.FindFAQ("## Einrichtung\n\nKeine Fragen hier."))
}

func TestAssessFAQ(t *testing.T) {
	faq := geo.FindFAQ(faqBody)
	require.NotNil(t, faq)

	q := geo.AssessFAQ(faq, content.LocaleDE, 3, 20)
	assert.Equal(t, 3, q.Pairs)
	assert.InDelta(t, 1.0, q.QuestionRatio, 1e-9)
	assert.InDelta(t, 1.0, q.AnswerInRange, 1e-9)

	// A tight range pushes every answer out of bounds.
	q = geo.AssessFAQ(faq, content.LocaleDE, 100, 200)
	assert.Zero(t, q.AnswerInRange)

	empty := geo.AssessFAQ(nil, content.LocaleDE, 20, 150)
	assert.Zero(t, empty.Pairs)
}
