package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Translator looks up strings for a single locale.
// A zero Translator returns every key unchanged.
type Translator struct {
	locale   string
	messages map[string]string
}

// New returns a Translator for locale. Unsupported locales yield a Translator with no messages,
// so every lookup falls back to the key.
func New(locale string) Translator {
	return Translator{locale: locale, messages: catalogs[locale]}
}

// Locale returns the locale code the translator was built for.
func (t Translator) Locale() string { return t.locale }

// T returns the localized string for key, or key itself when the locale has no entry.
// There is no fallback to another locale.
func (t Translator) T(key string) string {
	if msg, ok := t.messages[key]; ok && msg != "" {
		return msg
	}
	return key
}

var (
	matcherTags = []language.Tag{language.English, language.Bengali, language.Hindi}
	matcher     = language.NewMatcher(matcherTags)
)

// Match picks the best supported locale for an Accept-Language header value.
// It reports false when the header is empty, malformed, or names no supported language.
func Match(acceptLanguage string) (string, bool) {
	if strings.TrimSpace(acceptLanguage) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	return supportedLocales[idx], true
}
