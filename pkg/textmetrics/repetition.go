package textmetrics

import (
	"sort"
	"strings"
)

// paragraphs splits a raw body into blank-line-delimited blocks, dropping
// heading lines and table rows which would distort similarity. Code is
// removed up front; the surviving blocks are canonicalized so shingles
// compare prose, not markup.
func paragraphs(body string) []string {
	blocks := strings.Split(StripCode(body), "\n\n")
	var out []string
	for _, block := range blocks {
		var keep []string
		for _, line := range strings.Split(block, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "|") {
				continue
			}
			keep = append(keep, trimmed)
		}
		p := Canonicalize(strings.Join(keep, " "))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// shingles returns the set of n-word shingles of the text, lowercased.
func shingles(text string, n int) map[string]bool {
	words := Words(strings.ToLower(text))
	set := make(map[string]bool)
	if len(words) < n {
		return set
	}
	for i := 0; i+n <= len(words); i++ {
		set[strings.Join(words[i:i+n], " ")] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for s := range a {
		if b[s] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// ParagraphSimilarity computes the average pairwise Jaccard similarity of
// 3-word shingle sets across the paragraphs of a raw markdown body. Zero
// when fewer than two paragraphs exist.
func ParagraphSimilarity(body string) float64 {
	paras := paragraphs(body)
	if len(paras) < 2 {
		return 0
	}
	sets := make([]map[string]bool, len(paras))
	for i, p := range paras {
		sets[i] = shingles(p, 3)
	}
	sum := 0.0
	pairs := 0
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			sum += jaccard(sets[i], sets[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}

// RepeatedPhrase is a 5-word shingle that recurs through the document.
type RepeatedPhrase struct {
	Phrase string
	Count  int
}

// RepeatedPhrases finds 5-word shingles occurring three or more times in
// the document, ranked by count (ties broken alphabetically for
// deterministic output).
func RepeatedPhrases(text string) []RepeatedPhrase {
	words := Words(strings.ToLower(text))
	const n = 5
	if len(words) < n {
		return nil
	}
	counts := make(map[string]int)
	for i := 0; i+n <= len(words); i++ {
		counts[strings.Join(words[i:i+n], " ")]++
	}

	var out []RepeatedPhrase
	for phrase, count := range counts {
		if count >= 3 {
			out = append(out, RepeatedPhrase{Phrase: phrase, Count: count})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Phrase < out[j].Phrase
	})
	return out
}
