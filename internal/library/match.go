package library

import (
	"log/slog"
	"strings"

	"github.com/vmunix/arrpath/pkg/arr"
)

// FindByPath is the reference linear scan: it returns the first record, in
// list order, whose lowercased title is a substring of the lowercased path.
// Records with an empty path or title never match.
// An empty path or a miss logs one warning and returns nil.
func FindByPath(path string, files []arr.FileRecord, log *slog.Logger) *arr.FileRecord {
	if log == nil {
		log = slog.Default()
	}
	if path == "" {
		log.Warn("no path passed in to find file record")
		return nil
	}

	lowered := Lower(path)
	for i := range files {
		if matchable(&files[i]) && strings.Contains(lowered, Lower(files[i].Title)) {
			return &files[i]
		}
	}

	log.Warn("unable to find file record for path", "path", path)
	return nil
}

func matchable(f *arr.FileRecord) bool {
	return f.Path != "" && f.Title != ""
}
