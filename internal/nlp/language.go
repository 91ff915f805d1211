package nlp

import "strings"

// Supported locale codes (ISO 639-1). English is the default and the
// authoring language of every phrase table.
const (
	LocaleEnglish = "en"
	LocaleHindi   = "hi"
	LocaleOdia    = "or"
	LocaleMarathi = "mr"
	LocaleBengali = "bn"
)

// languageRules matches romanized tokens of regional languages, first
// match wins. Detection runs once per session, on the creating message.
var languageRules = []struct {
	locale   string
	keywords []string
}{
	{LocaleHindi, []string{"chahiye", "mujhe", "kya", "kaise", "hai"}},
	{LocaleOdia, []string{"mu ", "tume", "khojuchi", "darkar"}},
	{LocaleMarathi, []string{"mala", "pahije", "ahe", "kaay"}},
	{LocaleBengali, []string{"amar", "chai", "lagbe", "kothay"}},
}

// DetectLanguage maps raw text to a locale code, defaulting to English.
func DetectLanguage(message string) string {
	msg := strings.ToLower(message)

	for _, rule := range languageRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.locale
			}
		}
	}

	return LocaleEnglish
}
