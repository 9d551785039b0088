// Package quality provides the locale-aware prose quality rules:
// readability, vocabulary, passive voice, sentence rhythm and
// repetition. All checks share a word-count floor so that stub pages
// are not graded on statistics that need real prose to mean anything.
package quality
