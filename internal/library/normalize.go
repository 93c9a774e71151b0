package library

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// episodeMarker finds "s01e02" or "1x02" style markers in a cleaned name.
	episodeMarker = regexp.MustCompile(`\bs\d{1,2}e\d{1,3}\b|\b\d{1,2}x\d{2,3}\b`)
	yearMarker    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// cleanTitle lowercases, strips accents and punctuation, drops a leading
// article and collapses whitespace.
func cleanTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "'", "")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	s = strings.Join(strings.Fields(b.String()), " ")
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}

// nameFromPath extracts the probable title part of a file or folder name:
// everything before the first episode or year marker.
func nameFromPath(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); len(ext) <= 5 {
		base = strings.TrimSuffix(base, ext)
	}
	s := cleanTitle(base)

	cut := len(s)
	for _, re := range []*regexp.Regexp{episodeMarker, yearMarker} {
		for _, loc := range re.FindAllStringIndex(s, -1) {
			if loc[0] > 0 {
				cut = min(cut, loc[0])
				break
			}
		}
	}
	return strings.TrimSpace(s[:cut])
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
