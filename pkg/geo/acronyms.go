package geo

import (
	"regexp"
	"strings"
)

var (
	acronymRe       = regexp.MustCompile(`\b[A-Z]{2,}s?\b`)
	trailingParenRe = regexp.MustCompile(`^\s*\(([^)]+)\)`)
)

// defaultAcronymAllowlist covers acronyms so common that expanding them
// would read as noise. User configuration extends this list.
var defaultAcronymAllowlist = []string{
	"AI", "API", "B2B", "B2C", "CEO", "CTO", "CSS", "CMS", "CRM", "DIY",
	"DNS", "EU", "FAQ", "GEO", "GDPR", "HTML", "HTTP", "HTTPS", "ID", "IT",
	"JSON", "KI", "KPI", "LLC", "LLM", "PDF", "PHP", "PR", "QR", "ROI",
	"RSS", "SaaS", "SEA", "SEM", "SEO", "SQL", "SSL", "TLS", "TV", "UI",
	"URL", "USA", "USP", "UX", "VPN", "WWW", "XML",
}

// UnexpandedAcronym is an acronym never introduced with a parenthetical
// expansion anywhere in the document.
type UnexpandedAcronym struct {
	Acronym string
	Count   int
}

// FindUnexpandedAcronyms scans canonical text for sequences of two or more
// uppercase letters that are neither allow-listed nor followed, at any
// occurrence, by a parenthetical expansion like "CDN (Content Delivery
// Network)". Results come back in first-seen order.
func FindUnexpandedAcronyms(text string, allowlist []string) []UnexpandedAcronym {
	allowed := make(map[string]bool, len(defaultAcronymAllowlist)+len(allowlist))
	for _, a := range defaultAcronymAllowlist {
		allowed[strings.ToUpper(a)] = true
	}
	for _, a := range allowlist {
		allowed[strings.ToUpper(strings.TrimSpace(a))] = true
	}

	counts := make(map[string]int)
	expanded := make(map[string]bool)
	var order []string

	for _, loc := range acronymRe.FindAllStringIndex(text, -1) {
		raw := text[loc[0]:loc[1]]
		acronym := strings.TrimSuffix(raw, "s")
		if len(acronym) < 2 || allowed[acronym] {
			continue
		}
		if _, seen := counts[acronym]; !seen {
			order = append(order, acronym)
		}
		counts[acronym]++

		// A parenthetical right after this occurrence expands the acronym
		// for the whole document.
		rest := text[loc[1]:]
		if m := trailingParenRe.FindStringSubmatch(rest); m != nil {
			if expansionMatches(acronym, m[1]) {
				expanded[acronym] = true
			}
		}
		// The reverse form "Content Delivery Network (CDN)" counts too.
		if strings.HasPrefix(rest, ")") && loc[0] > 0 && text[loc[0]-1] == '(' {
			expanded[acronym] = true
		}
	}

	var out []UnexpandedAcronym
	for _, a := range order {
		if expanded[a] {
			continue
		}
		out = append(out, UnexpandedAcronym{Acronym: a, Count: counts[a]})
	}
	return out
}

// expansionMatches checks that the parenthetical's word initials line up
// with the acronym's letters ("Content Delivery Network" for CDN).
func expansionMatches(acronym, expansion string) bool {
	words := strings.Fields(expansion)
	if len(words) < 2 {
		return false
	}
	initials := strings.Builder{}
	for _, w := range words {
		r := []rune(w)
		if len(r) > 0 {
			initials.WriteRune(r[0])
		}
	}
	return strings.EqualFold(initials.String(), acronym) ||
		strings.HasPrefix(strings.ToUpper(initials.String()), strings.ToUpper(acronym))
}
