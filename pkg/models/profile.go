package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Profile struct {
	bun.BaseModel `bun:"table:profiles,alias:p"`

	ID int `bun:",pk,nullzero" json:"id"`
	// OktaUserID is stored but never serialized; API responses expose only
	// the public projection of a profile.
	OktaUserID string    `bun:"oktaUserId,nullzero" json:"-"`
	Email      *string   `bun:"email" json:"email"`
	Name       *string   `bun:"name" json:"name"`
	AvatarURL  *string   `bun:"avatarUrl" json:"avatarUrl"`
	CreatedAt  time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time `bun:",nullzero,notnull,default:current_timestamp" json:"updated_at"`

	// Relations
	Shelves     []*Shelf                 `bun:"rel:has-many,join:id=profileId" json:"shelves,omitempty"`
	Connections []*ProfileBookConnection `bun:"rel:has-many,join:id=profileId" json:"connections,omitempty"`
}
