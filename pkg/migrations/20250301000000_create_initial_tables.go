package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		// Column names are quoted camelCase to match the wire names the API
		// has always used.
		_, err := db.Exec(`
			CREATE TABLE profiles (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				"oktaUserId" TEXT NOT NULL,
				email TEXT,
				name TEXT,
				"avatarUrl" TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		// Book ids can be supplied by the caller, so no AUTOINCREMENT here;
		// SQLite still assigns the next rowid when the id comes in NULL.
		_, err = db.Exec(`
			CREATE TABLE books (
				id INTEGER PRIMARY KEY,
				"googleId" TEXT NOT NULL UNIQUE,
				title TEXT NOT NULL,
				authors TEXT NOT NULL,
				publisher TEXT,
				"publishedDate" TEXT,
				description TEXT,
				isbn10 TEXT,
				isbn13 TEXT,
				"pageCount" INTEGER,
				categories TEXT,
				thumbnail TEXT,
				"smallThumbnail" TEXT,
				language TEXT,
				"webReaderLink" TEXT,
				"textSnippet" TEXT,
				"buyLink" TEXT,
				"publicDomain" BOOLEAN,
				"averageRating" DECIMAL
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`
			CREATE TABLE reading_options (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				status TEXT NOT NULL
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`
			CREATE TABLE shelves (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				"profileId" INTEGER NOT NULL REFERENCES profiles (id) ON DELETE CASCADE ON UPDATE CASCADE
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`CREATE INDEX ix_shelves_profile_id ON shelves ("profileId")`)
		if err != nil {
			return errors.WithStack(err)
		}

		// No unique index on (profileId, bookId): the pair is checked at the
		// application layer before insert.
		_, err = db.Exec(`
			CREATE TABLE profile_book_connections (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				"profileId" INTEGER NOT NULL REFERENCES profiles (id) ON DELETE CASCADE ON UPDATE CASCADE,
				"bookId" INTEGER NOT NULL REFERENCES books (id) ON DELETE CASCADE ON UPDATE CASCADE,
				"readingStatus" INTEGER NOT NULL REFERENCES reading_options (id) ON DELETE CASCADE ON UPDATE CASCADE,
				"dateStarted" TIMESTAMPTZ,
				"dateFinished" TIMESTAMPTZ,
				"dateAdded" TIMESTAMPTZ,
				favorite BOOLEAN,
				"personalRating" DECIMAL
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`CREATE INDEX ix_pbc_profile_id ON profile_book_connections ("profileId")`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`CREATE INDEX ix_pbc_book_id ON profile_book_connections ("bookId")`)
		if err != nil {
			return errors.WithStack(err)
		}

		// Same deal: no unique index on (ShelfId, ConnectionId).
		_, err = db.Exec(`
			CREATE TABLE shelf_book_connections (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				"ShelfId" INTEGER NOT NULL REFERENCES shelves (id) ON DELETE CASCADE ON UPDATE CASCADE,
				"ConnectionId" INTEGER NOT NULL REFERENCES profile_book_connections (id) ON DELETE CASCADE ON UPDATE CASCADE
			)
		`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`CREATE INDEX ix_sbc_shelf_id ON shelf_book_connections ("ShelfId")`)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = db.Exec(`
			INSERT INTO reading_options (status) VALUES ('to read'), ('reading'), ('finished')
		`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		tables := []string{
			"shelf_book_connections",
			"profile_book_connections",
			"shelves",
			"reading_options",
			"books",
			"profiles",
		}
		for _, table := range tables {
			_, err := db.Exec("DROP TABLE IF EXISTS " + table)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
