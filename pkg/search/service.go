package search

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// Service proxies book searches to the Google Books volumes API. The base
// URL and client are injectable so tests can point at a local server.
type Service struct {
	baseURL string
	client  *http.Client
}

// NewService creates a search service against the given Google Books base
// URL, e.g. "https://www.googleapis.com/books/v1".
func NewService(baseURL string) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// WithClient swaps the HTTP client. Used by tests.
func (s *Service) WithClient(client *http.Client) *Service {
	s.client = client
	return s
}

// Result is one normalized book summary from a search. Absent fields become
// empty strings, except pageCount and averageRating which are null, and
// publicDomain which defaults to false.
type Result struct {
	GoogleID       string   `json:"googleId"`
	Title          string   `json:"title"`
	Authors        string   `json:"authors"`
	Publisher      string   `json:"publisher"`
	PublishedDate  string   `json:"publishedDate"`
	Description    string   `json:"description"`
	PageCount      *int     `json:"pageCount"`
	Categories     string   `json:"categories"`
	Thumbnail      string   `json:"thumbnail"`
	SmallThumbnail string   `json:"smallThumbnail"`
	Language       string   `json:"language"`
	WebReaderLink  string   `json:"webReaderLink"`
	TextSnippet    string   `json:"textSnippet"`
	BuyLink        string   `json:"buyLink"`
	PublicDomain   bool     `json:"publicDomain"`
	AverageRating  *float64 `json:"averageRating"`
	ISBN10         string   `json:"isbn10"`
	ISBN13         string   `json:"isbn13"`
}

// Response is the reshaped payload returned to the client.
type Response struct {
	TotalItems          int       `json:"totalItems"`
	ReturnedItemsLength int       `json:"returnedItemsLength"`
	Results             []*Result `json:"results"`
}

// volume mirrors the slice of a Google Books volume the proxy consumes.
type volume struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title               string   `json:"title"`
		Authors             []string `json:"authors"`
		Publisher           string   `json:"publisher"`
		PublishedDate       string   `json:"publishedDate"`
		Description         string   `json:"description"`
		PageCount           *int     `json:"pageCount"`
		Categories          []string `json:"categories"`
		AverageRating       *float64 `json:"averageRating"`
		Language            string   `json:"language"`
		IndustryIdentifiers []struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		} `json:"industryIdentifiers"`
		ImageLinks struct {
			Thumbnail      string `json:"thumbnail"`
			SmallThumbnail string `json:"smallThumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
	SaleInfo struct {
		BuyLink string `json:"buyLink"`
	} `json:"saleInfo"`
	AccessInfo struct {
		WebReaderLink string `json:"webReaderLink"`
		PublicDomain  bool   `json:"publicDomain"`
	} `json:"accessInfo"`
	SearchInfo struct {
		TextSnippet string `json:"textSnippet"`
	} `json:"searchInfo"`
}

type volumesPage struct {
	TotalItems int       `json:"totalItems"`
	Items      []*volume `json:"items"`
}

// BuildQuery assembles the upstream URL. The q parameter is deliberately
// left unencoded; Google accepts the raw +, quote, and colon syntax, and
// clients of the original API depend on these exact prefix rules.
func (s *Service) BuildQuery(opts SearchQuery) string {
	searchTerms := strings.ReplaceAll(opts.SearchTerms, " ", "+")
	exactPhrase := opts.ExactPhrase
	if exactPhrase != "" {
		exactPhrase = `"` + strings.ReplaceAll(exactPhrase, " ", "+") + `"`
	}

	query := s.baseURL + "/volumes?q="
	switch {
	case searchTerms != "" && exactPhrase != "":
		query += exactPhrase + "+" + searchTerms
	case searchTerms != "":
		query += searchTerms
	case exactPhrase != "":
		query += exactPhrase
	}

	if opts.Exclude != "" {
		for _, term := range strings.Split(opts.Exclude, " ") {
			query += "-" + term
		}
	}

	if opts.Author != "" {
		terms := strings.Split(opts.Author, " ")
		// The first field operator drops its leading + only when it starts
		// the whole q expression.
		if exactPhrase == "" && searchTerms == "" && opts.Title == "" && opts.Exclude == "" && opts.ISBN == "" {
			query += "inauthor:" + terms[0]
			for _, term := range terms[1:] {
				query += "+inauthor:" + term
			}
		} else {
			for _, term := range terms {
				query += "+inauthor:" + term
			}
		}
	}

	if opts.Title != "" {
		terms := strings.Split(opts.Title, " ")
		if exactPhrase == "" && searchTerms == "" && opts.Author == "" && opts.Exclude == "" && opts.ISBN == "" {
			query += "intitle:" + terms[0]
			for _, term := range terms[1:] {
				query += "+intitle:" + term
			}
		} else {
			for _, term := range terms {
				query += "+intitle:" + term
			}
		}
	}

	if opts.ISBN != "" {
		if exactPhrase == "" && searchTerms == "" && opts.Author == "" && opts.Exclude == "" {
			query += "isbn:" + opts.ISBN
		} else {
			query += "+isbn:" + opts.ISBN
		}
	}

	if opts.StartIndex != 0 {
		query += "&startIndex=" + strconv.Itoa(opts.StartIndex)
	}

	maxResults := opts.MaxResults
	if maxResults > 40 {
		maxResults = 40
	}
	if maxResults != 0 {
		query += "&maxResults=" + strconv.Itoa(maxResults)
	}

	return query
}

// Search runs the query upstream and reshapes the volumes into normalized
// book summaries.
func (s *Service) Search(ctx context.Context, opts SearchQuery) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BuildQuery(opts), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("google books returned status %d", res.StatusCode)
	}

	page := volumesPage{}
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		return nil, errors.WithStack(err)
	}

	results := make([]*Result, 0, len(page.Items))
	for _, v := range page.Items {
		results = append(results, reshape(v))
	}

	return &Response{
		TotalItems:          page.TotalItems,
		ReturnedItemsLength: len(results),
		Results:             results,
	}, nil
}

func reshape(v *volume) *Result {
	r := &Result{
		GoogleID:       v.ID,
		Title:          v.VolumeInfo.Title,
		Authors:        strings.Join(v.VolumeInfo.Authors, ", "),
		Publisher:      v.VolumeInfo.Publisher,
		PublishedDate:  v.VolumeInfo.PublishedDate,
		Description:    v.VolumeInfo.Description,
		PageCount:      v.VolumeInfo.PageCount,
		Categories:     strings.Join(v.VolumeInfo.Categories, ", "),
		Thumbnail:      v.VolumeInfo.ImageLinks.Thumbnail,
		SmallThumbnail: v.VolumeInfo.ImageLinks.SmallThumbnail,
		Language:       v.VolumeInfo.Language,
		WebReaderLink:  v.AccessInfo.WebReaderLink,
		TextSnippet:    v.SearchInfo.TextSnippet,
		BuyLink:        v.SaleInfo.BuyLink,
		PublicDomain:   v.AccessInfo.PublicDomain,
		AverageRating:  v.VolumeInfo.AverageRating,
	}
	for _, ident := range v.VolumeInfo.IndustryIdentifiers {
		switch ident.Type {
		case "ISBN_10":
			r.ISBN10 = ident.Identifier
		case "ISBN_13":
			r.ISBN13 = ident.Identifier
		}
	}
	return r
}
