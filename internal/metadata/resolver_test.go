package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/arrpath/pkg/arr"
)

func TestResolver_FooShowIMDbID(t *testing.T) {
	log, _ := newTestLogger()
	srv := newSonarrServer(t,
		[]arr.LibraryItem{{ID: 1, Title: "Foo Show", IMDbID: "tt1", TVDbID: 100}},
		map[string][]arr.FileRecord{"1": {{ID: 10, Title: "Foo Show", Path: "/x/Foo Show S01E01.mkv"}}},
	)
	r := NewResolver(newLibraryMatcher(srv, log), nil, log)

	id, ok := r.IMDbID(context.Background(), "/x/Foo Show S01E01.mkv")
	require.True(t, ok)
	assert.Equal(t, "tt1", id)

	tvdb, ok := r.TVDbID(context.Background(), "/x/Foo Show S01E01.mkv")
	require.True(t, ok)
	assert.Equal(t, int64(100), tvdb)
}

func TestResolver_FooShowMiss(t *testing.T) {
	log, logs := newTestLogger()
	srv := newSonarrServer(t,
		[]arr.LibraryItem{{ID: 1, Title: "Foo Show", IMDbID: "tt1"}},
		map[string][]arr.FileRecord{"1": {{ID: 10, Title: "Foo Show", Path: "/x/Foo Show S01E01.mkv"}}},
	)
	r := NewResolver(newLibraryMatcher(srv, log), nil, log)

	id, ok := r.IMDbID(context.Background(), "/x/Bar Show S01E01.mkv")
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Contains(t, logs.warnings(), "unable to get IMDb ID for path")
}

func TestResolver_IDs(t *testing.T) {
	parent := &arr.LibraryItem{ID: 1, Title: "Heat", IMDbID: "tt0113277", TMDbID: 949}
	bare := &arr.LibraryItem{ID: 2, Title: "Bare"}
	m := stubMatcher{
		"/movies/Heat.mkv":   {ID: 1, Title: "Heat", Parent: parent},
		"/movies/Bare.mkv":   {ID: 2, Title: "Bare", Parent: bare},
		"/movies/Orphan.mkv": {ID: 3, Title: "Orphan"},
	}
	log, _ := newTestLogger()
	r := NewResolver(m, nil, log)
	ctx := context.Background()

	tmdb, ok := r.TMDbID(ctx, "/movies/Heat.mkv")
	require.True(t, ok)
	assert.Equal(t, int64(949), tmdb)

	_, ok = r.TVDbID(ctx, "/movies/Heat.mkv")
	assert.False(t, ok, "zero TVDb id is not an id")

	_, ok = r.IMDbID(ctx, "/movies/Bare.mkv")
	assert.False(t, ok)

	_, ok = r.IMDbID(ctx, "/movies/Orphan.mkv")
	assert.False(t, ok, "record without parent")

	_, ok = r.TMDbID(ctx, "")
	assert.False(t, ok)
}

func TestResolver_OriginalLanguage(t *testing.T) {
	parent := &arr.LibraryItem{ID: 1, Title: "Foo Show", IMDbID: "tt1"}
	m := stubMatcher{"/x/Foo Show S01E01.mkv": {ID: 10, Title: "Foo Show", Parent: parent}}
	fetcher := &stubFetcher{pages: map[string]string{"https://www.imdb.com/title/tt1/": languagePage}}
	log, _ := newTestLogger()
	r := NewResolver(m, NewScraper(fetcher, "", nil, log), log)

	lang, ok := r.OriginalLanguage(context.Background(), "/x/Foo Show S01E01.mkv")
	require.True(t, ok)
	assert.Equal(t, "ja", lang)
	assert.Equal(t, []string{"https://www.imdb.com/title/tt1/"}, fetcher.urls)
}

func TestResolver_OriginalLanguage_Failures(t *testing.T) {
	withID := &arr.LibraryItem{ID: 1, Title: "Foo Show", IMDbID: "tt1"}
	noID := &arr.LibraryItem{ID: 2, Title: "No ID"}
	m := stubMatcher{
		"/x/foo.mkv":  {ID: 10, Title: "Foo Show", Parent: withID},
		"/x/noid.mkv": {ID: 20, Title: "No ID", Parent: noID},
	}

	tests := []struct {
		name string
		path string
		page string
		want string
	}{
		{name: "empty path", path: "", want: "unable to get language for path"},
		{name: "no match", path: "/x/other.mkv", want: "unable to get language for path"},
		{name: "missing imdb id", path: "/x/noid.mkv", want: "no IMDb ID to look up language"},
		{name: "fetch failure", path: "/x/foo.mkv", want: "failed to fetch title page"},
		{name: "no languages row", path: "/x/foo.mkv", page: "<html></html>", want: "failed to lookup IMDb language"},
		{
			name: "no primary language",
			path: "/x/foo.mkv",
			page: `<li data-testid="title-details-languages">None listed</li>`,
			want: "failed to lookup IMDb primary language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := map[string]string{}
			if tt.page != "" {
				pages["https://www.imdb.com/title/tt1/"] = tt.page
			}
			log, logs := newTestLogger()
			r := NewResolver(m, NewScraper(&stubFetcher{pages: pages}, "", nil, log), log)

			lang, ok := r.OriginalLanguage(context.Background(), tt.path)
			assert.False(t, ok)
			assert.Empty(t, lang)
			assert.Equal(t, []string{tt.want}, logs.warnings())
		})
	}
}

func TestResolver_OriginalLanguage_Disabled(t *testing.T) {
	log, logs := newTestLogger()
	r := NewResolver(stubMatcher{}, nil, log)

	_, ok := r.OriginalLanguage(context.Background(), "/x/foo.mkv")
	assert.False(t, ok)
	assert.Equal(t, []string{"language lookup disabled"}, logs.warnings())
}
