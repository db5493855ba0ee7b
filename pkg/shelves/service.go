package shelves

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles shelf storage operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new shelves service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

func (s *Service) FindAll(ctx context.Context) ([]*models.Shelf, error) {
	shelves := []*models.Shelf{}
	err := s.db.NewSelect().
		Model(&shelves).
		Order("s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return shelves, nil
}

// FindByID returns the shelf with the given id, or nil when no row matches.
func (s *Service) FindByID(ctx context.Context, id string) (*models.Shelf, error) {
	shelf := &models.Shelf{}
	err := s.db.NewSelect().
		Model(shelf).
		Where("s.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return shelf, nil
}

// FindByProfileID returns every shelf belonging to the profile. A profile
// with no shelves yields an empty slice.
func (s *Service) FindByProfileID(ctx context.Context, profileID string) ([]*models.Shelf, error) {
	shelves := []*models.Shelf{}
	err := s.db.NewSelect().
		Model(&shelves).
		Where(`s."profileId" = ?`, profileID).
		Order("s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return shelves, nil
}

// DuplicateCheck looks up a shelf by the id supplied on create, zero when
// the caller sent none. Mirrors the original API's id-keyed duplicate
// check.
func (s *Service) DuplicateCheck(ctx context.Context, id int) (*models.Shelf, error) {
	shelf := &models.Shelf{}
	err := s.db.NewSelect().
		Model(shelf).
		Where("s.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return shelf, nil
}

func (s *Service) Create(ctx context.Context, shelf *models.Shelf) (*models.Shelf, error) {
	_, err := s.db.NewInsert().Model(shelf).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s.FindByID(ctx, strconv.Itoa(shelf.ID))
}

// Update writes the given columns of the shelf and re-reads the stored row.
func (s *Service) Update(ctx context.Context, shelf *models.Shelf, columns []string) (*models.Shelf, error) {
	if len(columns) > 0 {
		_, err := s.db.NewUpdate().
			Model(shelf).
			Column(columns...).
			WherePK().
			Exec(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return s.FindByID(ctx, strconv.Itoa(shelf.ID))
}

func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*models.Shelf)(nil)).
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
