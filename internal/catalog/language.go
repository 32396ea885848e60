package catalog

import "strings"

// DefaultLanguage is used when a template requests a language selector and
// the user has not picked one.
const DefaultLanguage = "English"

// Languages lists the supported output languages, default first.
var Languages = []string{
	"English",
	"Telugu",
	"Hindi",
	"Tamil",
	"Kannada",
	"Bengali",
	"Marathi",
	"Malayalam",
}

var languageToCode = map[string]string{
	"English":   "en-US",
	"Telugu":    "te-IN",
	"Hindi":     "hi-IN",
	"Tamil":     "ta-IN",
	"Kannada":   "kn-IN",
	"Bengali":   "bn-IN",
	"Marathi":   "mr-IN",
	"Malayalam": "ml-IN",
}

// LanguageCode returns the BCP-47 tag for a display language, or "en-US"
// for unknown languages.
func LanguageCode(language string) string {
	if code, ok := languageToCode[language]; ok {
		return code
	}
	return "en-US"
}

// SearchLanguageCode returns the bare ISO-639 code used as a relevance hint
// for video search (e.g. "te" for Telugu).
func SearchLanguageCode(language string) string {
	code := LanguageCode(language)
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}
