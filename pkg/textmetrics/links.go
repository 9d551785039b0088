package textmetrics

import (
	"net/url"
	"regexp"
	"strings"
)

// Link is an extracted hyperlink with its 1-indexed source line.
// Normalized holds the site-relative form for internal links; for external
// links it equals URL.
type Link struct {
	URL        string
	Normalized string
	Text       string
	Line       int
	Internal   bool
}

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)[^)]*\)`)
	hrefAttrRe     = regexp.MustCompile(`href=["']([^"']+)["']`)
)

// LinkExtractor classifies and normalizes links against one canonical site
// domain, e.g. "example.com".
type LinkExtractor struct {
	domain string
}

// NewLinkExtractor creates an extractor bound to the site domain. The
// domain may be given as a bare host or a full URL; scheme, "www." prefix
// and any path are ignored.
func NewLinkExtractor(site string) *LinkExtractor {
	host := site
	if u, err := url.Parse(site); err == nil && u.Host != "" {
		host = u.Host
	}
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	host = strings.TrimSuffix(host, "/")
	return &LinkExtractor{domain: host}
}

// Domain returns the canonical host the extractor is bound to.
func (e *LinkExtractor) Domain() string { return e.domain }

// Extract returns every link in the body in document order, skipping
// fenced code. A link captured by both the bracket syntax and an href
// attribute on the same line with the same target is reported once.
func (e *LinkExtractor) Extract(body string) []Link {
	fences := IndexFences(body)
	var links []Link
	for i, line := range strings.Split(body, "\n") {
		lineNo := i + 1
		if fences.Inside(lineNo) {
			continue
		}

		seen := make(map[string]bool)
		for _, m := range markdownLinkRe.FindAllStringSubmatch(line, -1) {
			// Skip image syntax; the image extractor owns those.
			if idx := strings.Index(line, m[0]); idx > 0 && line[idx-1] == '!' {
				continue
			}
			target := m[2]
			links = append(links, e.makeLink(target, m[1], lineNo))
			seen[target] = true
		}
		for _, m := range hrefAttrRe.FindAllStringSubmatch(line, -1) {
			if seen[m[1]] {
				continue
			}
			links = append(links, e.makeLink(m[1], "", lineNo))
		}
	}
	return links
}

func (e *LinkExtractor) makeLink(target, text string, line int) Link {
	l := Link{URL: target, Normalized: target, Text: text, Line: line}
	if e.IsInternal(target) {
		l.Internal = true
		l.Normalized = e.Normalize(target)
	}
	return l
}

// IsInternal reports whether a URL points at the bound site: relative
// paths, root-relative paths, and absolute URLs whose host is
// (www.)?domain, with or without a scheme.
func (e *LinkExtractor) IsInternal(raw string) bool {
	if raw == "" {
		return false
	}
	if strings.HasPrefix(raw, "#") {
		return true
	}
	if strings.HasPrefix(raw, "mailto:") || strings.HasPrefix(raw, "tel:") {
		return false
	}
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return true
	}

	rest, hasScheme := stripScheme(raw)
	host := rest
	if idx := strings.IndexAny(rest, "/?#"); idx >= 0 {
		host = rest[:idx]
	}
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	if host == e.domain {
		return true
	}
	if hasScheme || strings.Contains(host, ".") {
		// Absolute URL (or bare foreign host) pointing elsewhere.
		return false
	}
	// Plain relative path like "blog/post" or "./about".
	return true
}

// Normalize converts an internal URL to its site-relative form: scheme and
// domain stripped, query and fragment dropped, and any trailing slash
// removed except on the root path.
func (e *LinkExtractor) Normalize(raw string) string {
	s := raw
	if rest, ok := stripScheme(s); ok {
		s = rest
		lower := strings.ToLower(s)
		for _, prefix := range []string{"www." + e.domain, e.domain} {
			if strings.HasPrefix(lower, prefix) {
				s = s[len(prefix):]
				break
			}
		}
	} else {
		lower := strings.ToLower(s)
		for _, prefix := range []string{"www." + e.domain, e.domain} {
			if strings.HasPrefix(lower, prefix) {
				s = s[len(prefix):]
				break
			}
		}
	}
	if idx := strings.IndexAny(s, "?#"); idx >= 0 {
		s = s[:idx]
	}
	if s == "" {
		return "/"
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + strings.TrimPrefix(s, "./")
	}
	if s != "/" {
		s = strings.TrimSuffix(s, "/")
	}
	return s
}

func stripScheme(raw string) (string, bool) {
	for _, scheme := range []string{"https://", "http://", "//"} {
		if strings.HasPrefix(raw, scheme) {
			return raw[len(scheme):], true
		}
	}
	return raw, false
}
