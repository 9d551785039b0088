package content

import "golang.org/x/text/language"

// Locale selects the language tables used by the linguistic metrics.
// All locale dispatch in the analysis code switches exhaustively over this
// type; unsupported tags resolve to LocaleDE, matching the readability
// formula's documented fallback.
type Locale int

const (
	// LocaleEN selects the English heuristics (Flesch Reading Ease).
	LocaleEN Locale = iota
	// LocaleDE selects the German heuristics (Flesch-Amstad). Also the
	// fallback for unsupported tags.
	LocaleDE
)

// String returns the ISO 639-1 code for the locale.
func (l Locale) String() string {
	if l == LocaleEN {
		return "en"
	}
	return "de"
}

// supported is the matcher priority list; order matters for ambiguous tags.
var supported = []language.Tag{language.German, language.English}

var matcher = language.NewMatcher(supported)

// ParseLocale resolves a tag string ("en", "en-US", "de-AT", ...) to a
// Locale. Invalid or unsupported tags resolve to LocaleDE.
func ParseLocale(tag string) Locale {
	if tag == "" {
		return LocaleDE
	}
	t, err := language.Parse(tag)
	if err != nil {
		return LocaleDE
	}
	base, _ := t.Base()
	switch base.String() {
	case "en":
		return LocaleEN
	case "de":
		return LocaleDE
	}
	// Let the matcher decide for regional variants before falling back.
	if _, idx, conf := matcher.Match(t); conf >= language.High {
		if supported[idx] == language.English {
			return LocaleEN
		}
	}
	return LocaleDE
}
