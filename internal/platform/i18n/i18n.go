// Package i18n resolves localized strings and numbers for the client.
//
// Every lookup funnels through ResolveLocalizedString, which reads a
// catalog.Bundle, falls back to the base locale, and renders positional
// arguments with an x/text message printer bound to that bundle. Missing
// keys never fail: the key itself is returned so the UI always has text.
package i18n

import (
	"strings"

	"github.com/textualirc/support/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.MustParse(catalog.BaseLocale),
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// SupportedTags returns the locales the application bundle ships.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// DefaultTag returns the base locale tag.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it names a supported locale.
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if tag == parsed {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported locale for the preferred tags.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return DefaultTag()
	}
	_, index, confidence := tagMatcher.Match(preferred...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}
