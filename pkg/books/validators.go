package books

import "github.com/readshelf/readshelf/pkg/models"

// CreateBookPayload is the request body for creating a book. Everything is
// optional at the HTTP layer; the schema's NOT NULL constraints on googleId,
// title, and authors surface as storage failures, matching the original
// API.
type CreateBookPayload struct {
	ID             *int     `json:"id"`
	GoogleID       *string  `json:"googleId"`
	Title          *string  `json:"title"`
	Authors        *string  `json:"authors"`
	Publisher      *string  `json:"publisher"`
	PublishedDate  *string  `json:"publishedDate"`
	Description    *string  `json:"description"`
	ISBN10         *string  `json:"isbn10"`
	ISBN13         *string  `json:"isbn13"`
	PageCount      *int     `json:"pageCount"`
	Categories     *string  `json:"categories"`
	Thumbnail      *string  `json:"thumbnail"`
	SmallThumbnail *string  `json:"smallThumbnail"`
	Language       *string  `json:"language"`
	WebReaderLink  *string  `json:"webReaderLink"`
	TextSnippet    *string  `json:"textSnippet"`
	BuyLink        *string  `json:"buyLink"`
	PublicDomain   *bool    `json:"publicDomain"`
	AverageRating  *float64 `json:"averageRating"`
}

func (p *CreateBookPayload) toModel() *models.Book {
	book := &models.Book{
		Publisher:      p.Publisher,
		PublishedDate:  p.PublishedDate,
		Description:    p.Description,
		ISBN10:         p.ISBN10,
		ISBN13:         p.ISBN13,
		PageCount:      p.PageCount,
		Categories:     p.Categories,
		Thumbnail:      p.Thumbnail,
		SmallThumbnail: p.SmallThumbnail,
		Language:       p.Language,
		WebReaderLink:  p.WebReaderLink,
		TextSnippet:    p.TextSnippet,
		BuyLink:        p.BuyLink,
		PublicDomain:   p.PublicDomain,
		AverageRating:  p.AverageRating,
	}
	if p.ID != nil {
		book.ID = *p.ID
	}
	if p.GoogleID != nil {
		book.GoogleID = *p.GoogleID
	}
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.Authors != nil {
		book.Authors = *p.Authors
	}
	return book
}
