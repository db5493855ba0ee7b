package models

import (
	"github.com/uptrace/bun"
)

// Reading status ids, seeded by the initial migration.
const (
	ReadingStatusToRead   = 1
	ReadingStatusReading  = 2
	ReadingStatusFinished = 3
)

// ReadingOption is the lookup table behind a connection's readingStatus.
type ReadingOption struct {
	bun.BaseModel `bun:"table:reading_options,alias:ro"`

	ID     int    `bun:",pk,nullzero" json:"id"`
	Status string `bun:"status,nullzero" json:"status"`
}
