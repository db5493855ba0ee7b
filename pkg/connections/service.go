package connections

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles profile-book connection storage operations.
type Service struct {
	db *bun.DB
}

// NewService creates a new connections service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

func (s *Service) FindAll(ctx context.Context) ([]*models.ProfileBookConnection, error) {
	connections := []*models.ProfileBookConnection{}
	err := s.db.NewSelect().
		Model(&connections).
		Order("pbc.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return connections, nil
}

// FindByID returns the connection with the given id, or nil when no row
// matches.
func (s *Service) FindByID(ctx context.Context, id string) (*models.ProfileBookConnection, error) {
	connection := &models.ProfileBookConnection{}
	err := s.db.NewSelect().
		Model(connection).
		Where("pbc.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return connection, nil
}

// FindByProfileID returns every connection belonging to the profile.
func (s *Service) FindByProfileID(ctx context.Context, profileID string) ([]*models.ProfileBookConnection, error) {
	connections := []*models.ProfileBookConnection{}
	err := s.db.NewSelect().
		Model(&connections).
		Where(`pbc."profileId" = ?`, profileID).
		Order("pbc.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return connections, nil
}

// DuplicateCheck returns the existing connection for the (profileId, bookId)
// pair, or nil when the pair is unused. The check-then-create sequence is
// not transactional; see the model's note on the duplicate window.
func (s *Service) DuplicateCheck(ctx context.Context, profileID, bookID int) (*models.ProfileBookConnection, error) {
	connection := &models.ProfileBookConnection{}
	err := s.db.NewSelect().
		Model(connection).
		Where(`pbc."profileId" = ?`, profileID).
		Where(`pbc."bookId" = ?`, bookID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return connection, nil
}

func (s *Service) Create(ctx context.Context, connection *models.ProfileBookConnection) (*models.ProfileBookConnection, error) {
	_, err := s.db.NewInsert().Model(connection).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s.FindByID(ctx, strconv.Itoa(connection.ID))
}

// Update writes the given columns of the connection and re-reads the stored
// row.
func (s *Service) Update(ctx context.Context, connection *models.ProfileBookConnection, columns []string) (*models.ProfileBookConnection, error) {
	if len(columns) > 0 {
		_, err := s.db.NewUpdate().
			Model(connection).
			Column(columns...).
			WherePK().
			Exec(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return s.FindByID(ctx, strconv.Itoa(connection.ID))
}

func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*models.ProfileBookConnection)(nil)).
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
