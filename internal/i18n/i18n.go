// Package i18n resolves the language used for user-facing email copy.
// Finnish is the site's primary language; English is the only alternative.
package i18n

import "golang.org/x/text/language"

type Lang int

const (
	Finnish Lang = iota
	English
)

// Order matters: the first tag is the fallback for unknown input.
var supported = []language.Tag{language.Finnish, language.English}

var matcher = language.NewMatcher(supported)

// Match resolves a client-supplied language preference ("fi", "en-GB",
// an Accept-Language value, ...) to a supported language. Empty or
// unparseable input falls back to Finnish.
func Match(preferred string) Lang {
	if preferred == "" {
		return Finnish
	}

	_, index := language.MatchStrings(matcher, preferred)
	return Lang(index)
}

func (l Lang) String() string {
	if l == English {
		return "en"
	}
	return "fi"
}
