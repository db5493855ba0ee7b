package books

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles book storage operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new books service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

// FindAll returns every book. An empty store yields an empty slice, never
// nil.
func (s *Service) FindAll(ctx context.Context) ([]*models.Book, error) {
	books := []*models.Book{}
	err := s.db.NewSelect().
		Model(&books).
		Order("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return books, nil
}

// FindByID returns the book with the given id, or nil when no row matches.
// The id is the raw path parameter; a non-numeric value simply matches
// nothing.
func (s *Service) FindByID(ctx context.Context, id string) (*models.Book, error) {
	book := &models.Book{}
	err := s.db.NewSelect().
		Model(book).
		Where("b.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return book, nil
}

// DuplicateCheck looks up a book by the id supplied on create, zero when the
// caller sent none. With database-assigned ids this almost always checks id
// 0 and finds nothing; googleId uniqueness is enforced by the schema
// instead. Kept for compatibility with the original API.
func (s *Service) DuplicateCheck(ctx context.Context, id int) (*models.Book, error) {
	book := &models.Book{}
	err := s.db.NewSelect().
		Model(book).
		Where("b.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return book, nil
}

// Create inserts the book and re-reads the stored row.
func (s *Service) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	_, err := s.db.NewInsert().Model(book).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s.FindByID(ctx, strconv.Itoa(book.ID))
}

// Remove deletes the book with the given id and reports how many rows went
// away.
func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*models.Book)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return count, nil
}
