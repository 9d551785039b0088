// Package textmetrics turns raw markdown bodies into measurable signals:
// plain text, sentences, words, structural elements, and the locale-aware
// linguistic metrics built on top of them.
//
// All functions are pure. Word and sentence counts are always computed from
// canonicalized text, never from raw markup.
package textmetrics

import (
	"regexp"
	"strings"
)

var (
	fencedCodeRe  = regexp.MustCompile("(?s)```.*?```")
	openFenceRe   = regexp.MustCompile("(?s)```.*$")
	inlineCodeRe  = regexp.MustCompile("`[^`\n]*`")
	imageRe       = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe        = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	htmlTagRe     = regexp.MustCompile(`<[^>\n]+>`)
	headingMarkRe = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	emphasisRe    = regexp.MustCompile(`(\*\*|__|\*|_|~~)`)
	blockquoteRe  = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	bulletRe      = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	orderedRe     = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	hrRe          = regexp.MustCompile(`(?m)^[ \t]*(-{3,}|\*{3,}|_{3,})[ \t]*$`)
	directiveRe   = regexp.MustCompile(`(?m)^[ \t]*(import|export)\b[^\n]*$`)
)

// StripCode removes fenced blocks and inline code spans from a raw body,
// leaving all other markup intact. Detectors that need link or parenthesis
// context in place use this instead of full canonicalization.
func StripCode(body string) string {
	s := fencedCodeRe.ReplaceAllString(body, "")
	// An unterminated fence swallows everything after it; code is never prose.
	s = openFenceRe.ReplaceAllString(s, "")
	return inlineCodeRe.ReplaceAllString(s, "")
}

// Canonicalize strips markup from a raw body, leaving plain prose suitable
// for word and sentence counting. The operation is idempotent: running it
// on already-canonical text returns the text unchanged.
func Canonicalize(body string) string {
	s := StripCode(body)
	s = imageRe.ReplaceAllString(s, "")
	s = linkRe.ReplaceAllString(s, "$1")
	s = directiveRe.ReplaceAllString(s, "")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = headingMarkRe.ReplaceAllString(s, "")
	s = hrRe.ReplaceAllString(s, "")
	s = blockquoteRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "")
	s = orderedRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

// FenceIndex records, per 1-indexed line, whether the line sits inside a
// fenced code block. The opening and closing fence lines themselves count
// as inside.
type FenceIndex []bool

// Inside reports whether the given 1-indexed line is part of a fenced
// code block. Lines outside the indexed range are outside.
func (f FenceIndex) Inside(line int) bool {
	if line < 1 || line > len(f) {
		return false
	}
	return f[line-1]
}

// IndexFences scans the raw body and marks every line that belongs to a
// fenced code block. Every line-oriented extractor consults this index so
// that code samples never produce structural matches.
func IndexFences(body string) FenceIndex {
	lines := strings.Split(body, "\n")
	idx := make(FenceIndex, len(lines))
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			idx[i] = true
			inFence = !inFence
			continue
		}
		idx[i] = inFence
	}
	return idx
}

var wordSplitRe = regexp.MustCompile(`[^\p{L}\p{N}'’-]+`)

// Words tokenizes canonical text into words. Tokens without at least one
// letter or digit are dropped.
func Words(text string) []string {
	raw := wordSplitRe.Split(text, -1)
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.Trim(w, "'’-")
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}

// WordCount returns the number of words in canonical text.
func WordCount(text string) int {
	return len(Words(text))
}

var sentenceEndRe = regexp.MustCompile(`[.!?]+(\s+|$)`)

// Sentences splits canonical text into sentences. A sentence boundary is
// one or more of [.!?] followed by whitespace or end of input.
func Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	bounds := sentenceEndRe.FindAllStringIndex(text, -1)
	var out []string
	start := 0
	for _, b := range bounds {
		s := strings.TrimSpace(text[start:b[1]])
		if s != "" {
			out = append(out, s)
		}
		start = b[1]
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		out = append(out, rest)
	}
	return out
}
