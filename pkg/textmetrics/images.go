package textmetrics

import (
	"regexp"
	"strings"
)

// Image is an extracted image reference with its 1-indexed source line.
type Image struct {
	Source string
	Alt    string
	Line   int
	HasAlt bool
}

var (
	markdownImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)[^)]*\)`)
	imgTagRe        = regexp.MustCompile(`<img\b[^>]*>`)
	srcAttrRe       = regexp.MustCompile(`src=["']([^"']+)["']`)
	altAttrRe       = regexp.MustCompile(`alt=["']([^"']*)["']`)
)

// ExtractImages returns every image reference in document order, skipping
// fenced code. An <img> tag duplicating a markdown image on the same line
// with the same source is reported once.
func ExtractImages(body string) []Image {
	fences := IndexFences(body)
	var images []Image
	for i, line := range strings.Split(body, "\n") {
		lineNo := i + 1
		if fences.Inside(lineNo) {
			continue
		}

		seen := make(map[string]bool)
		for _, m := range markdownImageRe.FindAllStringSubmatch(line, -1) {
			alt := strings.TrimSpace(m[1])
			images = append(images, Image{
				Source: m[2],
				Alt:    alt,
				Line:   lineNo,
				HasAlt: alt != "",
			})
			seen[m[2]] = true
		}
		for _, tag := range imgTagRe.FindAllString(line, -1) {
			src := ""
			if m := srcAttrRe.FindStringSubmatch(tag); m != nil {
				src = m[1]
			}
			if src == "" || seen[src] {
				continue
			}
			alt := ""
			if m := altAttrRe.FindStringSubmatch(tag); m != nil {
				alt = strings.TrimSpace(m[1])
			}
			images = append(images, Image{
				Source: src,
				Alt:    alt,
				Line:   lineNo,
				HasAlt: alt != "",
			})
		}
	}
	return images
}
