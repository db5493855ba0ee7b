package connections

import (
	"time"

	"github.com/readshelf/readshelf/pkg/models"
)

// CreateConnectionPayload is the request body for creating a profile-book
// connection. profileId, bookId, and readingStatus are required and must be
// non-zero; zero values count as missing, matching the original API's
// truthiness check.
type CreateConnectionPayload struct {
	ProfileID      *int       `json:"profileId"`
	BookID         *int       `json:"bookId"`
	ReadingStatus  *int       `json:"readingStatus"`
	DateStarted    *time.Time `json:"dateStarted"`
	DateFinished   *time.Time `json:"dateFinished"`
	DateAdded      *time.Time `json:"dateAdded"`
	Favorite       *bool      `json:"favorite"`
	PersonalRating *float64   `json:"personalRating"`
}

func (p *CreateConnectionPayload) missingRequired() bool {
	return p.ProfileID == nil || *p.ProfileID == 0 ||
		p.BookID == nil || *p.BookID == 0 ||
		p.ReadingStatus == nil || *p.ReadingStatus == 0
}

func (p *CreateConnectionPayload) toModel() *models.ProfileBookConnection {
	return &models.ProfileBookConnection{
		ProfileID:      *p.ProfileID,
		BookID:         *p.BookID,
		ReadingStatus:  *p.ReadingStatus,
		DateStarted:    p.DateStarted,
		DateFinished:   p.DateFinished,
		DateAdded:      p.DateAdded,
		Favorite:       p.Favorite,
		PersonalRating: p.PersonalRating,
	}
}

// UpdateConnectionPayload is the request body for updating a profile-book
// connection. Only the fields present in the body get written.
type UpdateConnectionPayload struct {
	ProfileID      *int       `json:"profileId"`
	BookID         *int       `json:"bookId"`
	ReadingStatus  *int       `json:"readingStatus"`
	DateStarted    *time.Time `json:"dateStarted"`
	DateFinished   *time.Time `json:"dateFinished"`
	DateAdded      *time.Time `json:"dateAdded"`
	Favorite       *bool      `json:"favorite"`
	PersonalRating *float64   `json:"personalRating"`
}

func (p *UpdateConnectionPayload) isEmpty() bool {
	return p.ProfileID == nil &&
		p.BookID == nil &&
		p.ReadingStatus == nil &&
		p.DateStarted == nil &&
		p.DateFinished == nil &&
		p.DateAdded == nil &&
		p.Favorite == nil &&
		p.PersonalRating == nil
}
