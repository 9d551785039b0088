package geo

import (
	"regexp"
	"strconv"
	"time"
)

var referencedYearRe = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// staleAfter is how long after a year's end a reference to it counts as
// stale: 18 months past December 31 of that year.
const staleAfter = 18 * 30 * 24 * time.Hour

// StaleYear is a year reference old enough to undermine the content's
// freshness for citation.
type StaleYear struct {
	Year  int
	Count int
}

// FindStaleYears returns years referenced in the text whose end date lies
// more than 18 months before now, in first-seen order. The now parameter
// keeps the check deterministic in tests.
func FindStaleYears(text string, now time.Time) []StaleYear {
	counts := make(map[int]int)
	var order []int
	for _, m := range referencedYearRe.FindAllString(text, -1) {
		year, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if _, seen := counts[year]; !seen {
			order = append(order, year)
		}
		counts[year]++
	}

	var out []StaleYear
	for _, year := range order {
		yearEnd := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
		if now.Sub(yearEnd) > staleAfter {
			out = append(out, StaleYear{Year: year, Count: counts[year]})
		}
	}
	return out
}
