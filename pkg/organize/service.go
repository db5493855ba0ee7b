package organize

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles shelf-book connection storage operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new organize service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

func (s *Service) FindAll(ctx context.Context) ([]*models.ShelfBookConnection, error) {
	connections := []*models.ShelfBookConnection{}
	err := s.db.NewSelect().
		Model(&connections).
		Order("sbc.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return connections, nil
}

// FindByID returns the shelf-book connection with the given id, or nil when
// no row matches.
func (s *Service) FindByID(ctx context.Context, id string) (*models.ShelfBookConnection, error) {
	connection := &models.ShelfBookConnection{}
	err := s.db.NewSelect().
		Model(connection).
		Where("sbc.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return connection, nil
}

// FindByShelfID returns every shelf-book connection on the shelf.
func (s *Service) FindByShelfID(ctx context.Context, shelfID string) ([]*models.ShelfBookConnection, error) {
	connections := []*models.ShelfBookConnection{}
	err := s.db.NewSelect().
		Model(&connections).
		Where(`sbc."ShelfId" = ?`, shelfID).
		Order("sbc.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return connections, nil
}

// DuplicateCheck returns the existing connection for the (ShelfId,
// ConnectionId) pair, or nil when the pair is unused. Both keys are the raw
// path parameters.
func (s *Service) DuplicateCheck(ctx context.Context, shelfID, connectionID string) (*models.ShelfBookConnection, error) {
	connection := &models.ShelfBookConnection{}
	err := s.db.NewSelect().
		Model(connection).
		Where(`sbc."ShelfId" = ?`, shelfID).
		Where(`sbc."ConnectionId" = ?`, connectionID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return connection, nil
}

// Create inserts the placement keyed by the two path parameters. Non-numeric
// parameters fail here and surface as a storage error, like the original's
// database type errors did.
func (s *Service) Create(ctx context.Context, shelfID, connectionID string) (*models.ShelfBookConnection, error) {
	si, err := strconv.Atoi(shelfID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	ci, err := strconv.Atoi(connectionID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	connection := &models.ShelfBookConnection{
		ShelfID:      si,
		ConnectionID: ci,
	}
	_, err = s.db.NewInsert().Model(connection).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s.FindByID(ctx, strconv.Itoa(connection.ID))
}

func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*models.ShelfBookConnection)(nil)).
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
