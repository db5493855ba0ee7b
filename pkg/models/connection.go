package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ProfileBookConnection is a profile's reading relationship to a book. At
// most one connection exists per (profileId, bookId) pair; the pair is
// checked before insert rather than enforced with a unique constraint, so a
// concurrent double-post can slip through. That window is a documented part
// of the contract.
type ProfileBookConnection struct {
	bun.BaseModel `bun:"table:profile_book_connections,alias:pbc"`

	ID             int        `bun:",pk,nullzero" json:"id"`
	ProfileID      int        `bun:"profileId,nullzero" json:"profileId"`
	BookID         int        `bun:"bookId,nullzero" json:"bookId"`
	ReadingStatus  int        `bun:"readingStatus,nullzero" json:"readingStatus"`
	DateStarted    *time.Time `bun:"dateStarted" json:"dateStarted"`
	DateFinished   *time.Time `bun:"dateFinished" json:"dateFinished"`
	DateAdded      *time.Time `bun:"dateAdded" json:"dateAdded"`
	Favorite       *bool      `bun:"favorite" json:"favorite"`
	PersonalRating *float64   `bun:"personalRating" json:"personalRating"`

	// Relations
	Profile *Profile `bun:"rel:belongs-to,join:profileId=id" json:"profile,omitempty"`
	Book    *Book    `bun:"rel:belongs-to,join:bookId=id" json:"book,omitempty"`
}

// ShelfBookConnection places a profile-book connection onto a shelf. The
// capitalized wire names are load-bearing: clients of the original API
// receive ShelfId and ConnectionId spelled exactly like this.
type ShelfBookConnection struct {
	bun.BaseModel `bun:"table:shelf_book_connections,alias:sbc"`

	ID           int `bun:",pk,nullzero" json:"id"`
	ShelfID      int `bun:"ShelfId,nullzero" json:"ShelfId"`
	ConnectionID int `bun:"ConnectionId,nullzero" json:"ConnectionId"`

	// Relations
	Shelf      *Shelf                 `bun:"rel:belongs-to,join:ShelfId=id" json:"shelf,omitempty"`
	Connection *ProfileBookConnection `bun:"rel:belongs-to,join:ConnectionId=id" json:"connection,omitempty"`
}
