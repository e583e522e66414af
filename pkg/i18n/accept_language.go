package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage parses the Accept-Language header and returns the most
// applicable locale from available. Matching follows BCP 47 rules, so
// "de-AT" selects "de" and "en-US" selects "en". If nothing matches, the
// first available locale is returned.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if match, ok := MatchLanguage(header, available); ok {
		return match
	}
	return available[0]
}

// MatchLanguage returns the locale from available that best matches value,
// which is a single tag ("pl-PL") or a full Accept-Language header.
// ok is false when value is empty or unparseable or nothing matches.
func MatchLanguage(value string, available []string) (string, bool) {
	if value == "" || len(available) == 0 {
		return "", false
	}
	if len(value) > maxAcceptLanguageLength {
		value = value[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	// Keep the positions of parseable locales so the match maps back to available.
	supported := make([]language.Tag, 0, len(available))
	positions := make([]int, 0, len(available))
	for i, code := range available {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		positions = append(positions, i)
	}
	if len(supported) == 0 {
		return "", false
	}

	_, idx, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return "", false
	}
	return available[positions[idx]], true
}
