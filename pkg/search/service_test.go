package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery(t *testing.T) {
	t.Parallel()

	svc := NewService("https://www.googleapis.com/books/v1")

	tests := []struct {
		name string
		opts SearchQuery
		want string
	}{
		{
			name: "search terms replace spaces with plus",
			opts: SearchQuery{SearchTerms: "left hand darkness"},
			want: "https://www.googleapis.com/books/v1/volumes?q=left+hand+darkness",
		},
		{
			name: "exact phrase is quoted",
			opts: SearchQuery{ExactPhrase: "the left hand"},
			want: `https://www.googleapis.com/books/v1/volumes?q="the+left+hand"`,
		},
		{
			name: "exact phrase precedes search terms",
			opts: SearchQuery{SearchTerms: "darkness", ExactPhrase: "left hand"},
			want: `https://www.googleapis.com/books/v1/volumes?q="left+hand"+darkness`,
		},
		{
			name: "exclusions append with minus",
			opts: SearchQuery{SearchTerms: "dune", Exclude: "messiah children"},
			want: "https://www.googleapis.com/books/v1/volumes?q=dune-messiah-children",
		},
		{
			name: "author alone starts without plus",
			opts: SearchQuery{Author: "Ursula Le Guin"},
			want: "https://www.googleapis.com/books/v1/volumes?q=inauthor:Ursula+inauthor:Le+inauthor:Guin",
		},
		{
			name: "author after search terms keeps leading plus",
			opts: SearchQuery{SearchTerms: "dispossessed", Author: "Le Guin"},
			want: "https://www.googleapis.com/books/v1/volumes?q=dispossessed+inauthor:Le+inauthor:Guin",
		},
		{
			name: "title alone starts without plus",
			opts: SearchQuery{Title: "A Wizard of Earthsea"},
			want: "https://www.googleapis.com/books/v1/volumes?q=intitle:A+intitle:Wizard+intitle:of+intitle:Earthsea",
		},
		{
			name: "author keeps leading plus when title present",
			opts: SearchQuery{Author: "Le Guin", Title: "Earthsea"},
			want: "https://www.googleapis.com/books/v1/volumes?q=+inauthor:Le+inauthor:Guin+intitle:Earthsea",
		},
		{
			name: "isbn alone",
			opts: SearchQuery{ISBN: "9780441478125"},
			want: "https://www.googleapis.com/books/v1/volumes?q=isbn:9780441478125",
		},
		{
			name: "isbn after title keeps leading plus",
			opts: SearchQuery{Title: "Earthsea", ISBN: "9780441478125"},
			want: "https://www.googleapis.com/books/v1/volumes?q=intitle:Earthsea+isbn:9780441478125",
		},
		{
			name: "pagination parameters",
			opts: SearchQuery{SearchTerms: "dune", StartIndex: 20, MaxResults: 10},
			want: "https://www.googleapis.com/books/v1/volumes?q=dune&startIndex=20&maxResults=10",
		},
		{
			name: "max results clamps to 40",
			opts: SearchQuery{SearchTerms: "dune", MaxResults: 100},
			want: "https://www.googleapis.com/books/v1/volumes?q=dune&maxResults=40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, svc.BuildQuery(tt.opts))
		})
	}
}

const upstreamPayload = `{
	"totalItems": 212,
	"items": [
		{
			"id": "zFhbzH-BMNcC",
			"volumeInfo": {
				"title": "The Left Hand of Darkness",
				"authors": ["Ursula K. Le Guin"],
				"publisher": "Penguin",
				"publishedDate": "1987",
				"description": "A groundbreaking work.",
				"pageCount": 304,
				"categories": ["Fiction"],
				"averageRating": 4,
				"language": "en",
				"industryIdentifiers": [
					{"type": "ISBN_10", "identifier": "0441478123"},
					{"type": "ISBN_13", "identifier": "9780441478125"}
				],
				"imageLinks": {
					"smallThumbnail": "http://books.google.com/small.jpg",
					"thumbnail": "http://books.google.com/thumb.jpg"
				}
			},
			"saleInfo": {"buyLink": "https://play.google.com/buy"},
			"accessInfo": {"webReaderLink": "http://play.google.com/reader", "publicDomain": false},
			"searchInfo": {"textSnippet": "Winter is an Earth-like planet..."}
		},
		{
			"id": "sparse",
			"volumeInfo": {"title": "Sparse Volume"}
		}
	]
}`

func TestSearch_ReshapesUpstreamVolumes(t *testing.T) {
	t.Parallel()

	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamPayload))
	}))
	t.Cleanup(upstream.Close)

	svc := NewService(upstream.URL)

	resp, err := svc.Search(context.Background(), SearchQuery{SearchTerms: "left hand darkness"})
	require.NoError(t, err)

	assert.Equal(t, "/volumes?q=left+hand+darkness", gotPath)
	assert.Equal(t, 212, resp.TotalItems)
	assert.Equal(t, 2, resp.ReturnedItemsLength)
	require.Len(t, resp.Results, 2)

	full := resp.Results[0]
	assert.Equal(t, "zFhbzH-BMNcC", full.GoogleID)
	assert.Equal(t, "The Left Hand of Darkness", full.Title)
	assert.Equal(t, "Ursula K. Le Guin", full.Authors)
	assert.Equal(t, "Penguin", full.Publisher)
	assert.Equal(t, "Fiction", full.Categories)
	require.NotNil(t, full.PageCount)
	assert.Equal(t, 304, *full.PageCount)
	require.NotNil(t, full.AverageRating)
	assert.InDelta(t, 4.0, *full.AverageRating, 0.001)
	assert.Equal(t, "0441478123", full.ISBN10)
	assert.Equal(t, "9780441478125", full.ISBN13)
	assert.Equal(t, "http://books.google.com/thumb.jpg", full.Thumbnail)
	assert.Equal(t, "Winter is an Earth-like planet...", full.TextSnippet)
	assert.False(t, full.PublicDomain)

	sparse := resp.Results[1]
	assert.Equal(t, "sparse", sparse.GoogleID)
	assert.Equal(t, "Sparse Volume", sparse.Title)
	assert.Empty(t, sparse.Authors)
	assert.Nil(t, sparse.PageCount)
	assert.Nil(t, sparse.AverageRating)
	assert.Empty(t, sparse.ISBN10)
}

func TestSearch_UpstreamErrorSurfaces(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend unavailable", http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)

	svc := NewService(upstream.URL)

	_, err := svc.Search(context.Background(), SearchQuery{SearchTerms: "dune"})
	assert.Error(t, err)
}

func TestSearch_NoItemsKey(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	}))
	t.Cleanup(upstream.Close)

	svc := NewService(upstream.URL)

	resp, err := svc.Search(context.Background(), SearchQuery{SearchTerms: "zzzzz"})
	require.NoError(t, err)

	assert.Zero(t, resp.TotalItems)
	assert.Zero(t, resp.ReturnedItemsLength)
	assert.Empty(t, resp.Results)
}
