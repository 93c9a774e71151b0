// Package arr provides a small client for the Sonarr/Radarr v3 API.
package arr

import "fmt"

// Kind selects which backend flavour a Client talks to.
type Kind string

const (
	KindSonarr Kind = "sonarr"
	KindRadarr Kind = "radarr"
)

// ParseKind maps a config value to a Kind. Empty defaults to Sonarr.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindSonarr:
		return KindSonarr, nil
	case KindRadarr:
		return KindRadarr, nil
	default:
		return "", fmt.Errorf("unknown backend kind %q", s)
	}
}

// ItemsEndpoint is the endpoint listing every library item.
func (k Kind) ItemsEndpoint() string {
	if k == KindRadarr {
		return "movie"
	}
	return "series"
}

// FilesEndpoint is the endpoint listing file records for one item.
func (k Kind) FilesEndpoint() string {
	if k == KindRadarr {
		return "moviefile"
	}
	return "episodefile"
}

// ItemParam is the query parameter scoping FilesEndpoint to one item.
func (k Kind) ItemParam() string {
	if k == KindRadarr {
		return "movieId"
	}
	return "seriesId"
}

// LibraryItem is a series or movie owned by the backend.
type LibraryItem struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	IMDbID string `json:"imdbId,omitempty"` // e.g., "tt0903747"
	TVDbID int64  `json:"tvdbId,omitempty"`
	TMDbID int64  `json:"tmdbId,omitempty"` // Radarr only
}

// FileRecord is a file on disk known to the backend.
type FileRecord struct {
	ID    int64  `json:"id"`
	Path  string `json:"path"`
	Title string `json:"title"`

	// Parent is attached by the indexer; it is never part of the API response.
	Parent *LibraryItem `json:"-"`
}

// QueueEntry is an active or stalled download in the backend queue.
type QueueEntry struct {
	ID                    int64  `json:"id"`
	Title                 string `json:"title"`
	DownloadClient        string `json:"downloadClient"`
	Status                string `json:"status,omitempty"`
	TrackedDownloadState  string `json:"trackedDownloadState,omitempty"`
	TrackedDownloadStatus string `json:"trackedDownloadStatus,omitempty"`
	Protocol              string `json:"protocol,omitempty"`
	Size                  int64  `json:"size,omitempty"`
	SizeLeft              int64  `json:"sizeleft,omitempty"`
}

// QueuePage is the paginated queue response.
type QueuePage struct {
	Page         int          `json:"page"`
	PageSize     int          `json:"pageSize"`
	TotalRecords int          `json:"totalRecords"`
	Records      []QueueEntry `json:"records"`
}
