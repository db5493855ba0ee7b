package models

import (
	"github.com/uptrace/bun"
)

type Shelf struct {
	bun.BaseModel `bun:"table:shelves,alias:s"`

	ID        int    `bun:",pk,nullzero" json:"id"`
	Name      string `bun:"name,nullzero" json:"name"`
	ProfileID int    `bun:"profileId,nullzero" json:"profileId"`

	// Relations
	Profile *Profile `bun:"rel:belongs-to,join:profileId=id" json:"profile,omitempty"`
}
