package library

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns the lowercase form used for every title/path comparison.
// It is plain Unicode lowercasing with no folding, so "ß" stays distinct from
// "ss" and a final capital sigma lowers to "ς".
// A Caser holds state, so each call gets its own.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
