package search

// SearchQuery carries the search criteria. The original API read these from
// a GET request body; here they come in as query parameters, which GET
// clients can actually send.
type SearchQuery struct {
	SearchTerms string `query:"searchTerms" json:"searchTerms"`
	ExactPhrase string `query:"exactPhrase" json:"exactPhrase"`
	Title       string `query:"title" json:"title"`
	Author      string `query:"author" json:"author"`
	ISBN        string `query:"isbn" json:"isbn"`
	Exclude     string `query:"exclude" json:"exclude"`
	StartIndex  int    `query:"startIndex" json:"startIndex" validate:"omitempty,gte=0"`
	MaxResults  int    `query:"maxResults" json:"maxResults" validate:"omitempty,gte=0"`
}
