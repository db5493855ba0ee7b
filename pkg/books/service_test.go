package books

import (
	"context"
	"database/sql"
	"strconv"
	"testing"

	"github.com/readshelf/readshelf/pkg/migrations"
	"github.com/readshelf/readshelf/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and makes the
	// pragma stick.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func createTestBook(ctx context.Context, t *testing.T, db *bun.DB, googleID string) *models.Book {
	t.Helper()

	book := &models.Book{
		GoogleID: googleID,
		Title:    "The Fifth Season",
		Authors:  "N. K. Jemisin",
	}
	_, err := db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)

	return book
}

func TestServiceFindAll_EmptyStore(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	books, err := svc.FindAll(ctx)
	require.NoError(t, err)

	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestServiceFindByID_Missing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	book, err := svc.FindByID(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestServiceFindByID_NonNumericID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	createTestBook(ctx, t, db, "g1")

	book, err := svc.FindByID(ctx, "not-a-number")
	require.NoError(t, err)
	assert.Nil(t, book)
}

func TestServiceCreate_AssignsID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	book, err := svc.Create(ctx, &models.Book{
		GoogleID: "g2",
		Title:    "The Obelisk Gate",
		Authors:  "N. K. Jemisin",
	})
	require.NoError(t, err)

	assert.NotZero(t, book.ID)
	assert.Equal(t, "g2", book.GoogleID)
}

func TestServiceCreate_CallerSuppliedID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	book, err := svc.Create(ctx, &models.Book{
		ID:       77,
		GoogleID: "g3",
		Title:    "The Stone Sky",
		Authors:  "N. K. Jemisin",
	})
	require.NoError(t, err)

	assert.Equal(t, 77, book.ID)
}

func TestServiceRemove_ReportsCount(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	book := createTestBook(ctx, t, db, "g4")
	id := strconv.Itoa(book.ID)

	count, err := svc.Remove(ctx, "999")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.Remove(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	gone, err := svc.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
