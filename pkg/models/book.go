package models

import (
	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	// ID may be supplied by the caller on create; when it's zero the
	// database assigns the next rowid.
	ID             int      `bun:",pk,nullzero" json:"id"`
	GoogleID       string   `bun:"googleId,nullzero" json:"googleId"`
	Title          string   `bun:"title,nullzero" json:"title"`
	Authors        string   `bun:"authors,nullzero" json:"authors"`
	Publisher      *string  `bun:"publisher" json:"publisher"`
	PublishedDate  *string  `bun:"publishedDate" json:"publishedDate"`
	Description    *string  `bun:"description" json:"description"`
	ISBN10         *string  `bun:"isbn10" json:"isbn10"`
	ISBN13         *string  `bun:"isbn13" json:"isbn13"`
	PageCount      *int     `bun:"pageCount" json:"pageCount"`
	Categories     *string  `bun:"categories" json:"categories"`
	Thumbnail      *string  `bun:"thumbnail" json:"thumbnail"`
	SmallThumbnail *string  `bun:"smallThumbnail" json:"smallThumbnail"`
	Language       *string  `bun:"language" json:"language"`
	WebReaderLink  *string  `bun:"webReaderLink" json:"webReaderLink"`
	TextSnippet    *string  `bun:"textSnippet" json:"textSnippet"`
	BuyLink        *string  `bun:"buyLink" json:"buyLink"`
	PublicDomain   *bool    `bun:"publicDomain" json:"publicDomain"`
	AverageRating  *float64 `bun:"averageRating" json:"averageRating"`
}
