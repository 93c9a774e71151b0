package metadata

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageName returns the English name of a language code such as "ja",
// or the code itself when it is not a valid BCP 47 tag.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.English.Languages().Name(tag)
	if name == "" {
		return code
	}
	return name
}
