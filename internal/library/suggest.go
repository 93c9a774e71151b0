package library

import (
	"sort"

	"github.com/hbollon/go-edlib"
	"github.com/vmunix/arrpath/pkg/arr"
)

// minSuggestScore is the Jaro-Winkler floor for a title to be suggested.
const minSuggestScore = 0.70

// Suggest returns up to n distinct titles closest to the name in path,
// best first. It is a diagnostic for misses and never affects matching.
func Suggest(path string, files []arr.FileRecord, n int) []string {
	name := nameFromPath(path)
	if name == "" || n <= 0 {
		return nil
	}

	type scored struct {
		title string
		score float32
	}

	seen := make(map[string]bool)
	var ranked []scored
	for _, f := range files {
		if f.Title == "" || seen[f.Title] {
			continue
		}
		seen[f.Title] = true

		score := edlib.JaroWinklerSimilarity(name, cleanTitle(f.Title))
		if score >= minSuggestScore {
			ranked = append(ranked, scored{title: f.Title, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	titles := make([]string, len(ranked))
	for i, r := range ranked {
		titles[i] = r.title
	}
	return titles
}
