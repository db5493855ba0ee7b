package profiles

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/models"
	"github.com/uptrace/bun"
)

// Service handles profile storage operations, including the library
// aggregate.
type Service struct {
	db *bun.DB
}

// NewService creates a new profiles service.
func NewService(db *bun.DB) *Service {
	return &Service{db: db}
}

func (s *Service) FindAll(ctx context.Context) ([]*models.Profile, error) {
	profiles := []*models.Profile{}
	err := s.db.NewSelect().
		Model(&profiles).
		Order("p.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return profiles, nil
}

// FindByID returns the profile with the given id, or nil when no row
// matches.
func (s *Service) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	profile := &models.Profile{}
	err := s.db.NewSelect().
		Model(profile).
		Where("p.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return profile, nil
}

func (s *Service) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	_, err := s.db.NewInsert().Model(profile).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return s.FindByID(ctx, strconv.Itoa(profile.ID))
}

// Update writes the given columns of the profile and re-reads the stored
// row.
func (s *Service) Update(ctx context.Context, profile *models.Profile, columns []string) (*models.Profile, error) {
	if len(columns) > 0 {
		profile.UpdatedAt = time.Now()
		columns = append(columns, "updated_at")

		_, err := s.db.NewUpdate().
			Model(profile).
			Column(columns...).
			WherePK().
			Exec(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}
	return s.FindByID(ctx, strconv.Itoa(profile.ID))
}

func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	res, err := s.db.NewDelete().
		Model((*models.Profile)(nil)).
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

// ShelfSummary is the trimmed shelf projection used inside the library
// aggregate.
type ShelfSummary struct {
	ID   int    `bun:"id" json:"id"`
	Name string `bun:"name" json:"name"`
}

// LibraryBook is one shelved book in a profile's library: the shelf
// placement, the reading state, and the book's bibliographic fields
// flattened into a single record.
type LibraryBook struct {
	ShelfID        int        `bun:"ShelfId" json:"ShelfId"`
	ConnectionID   int        `bun:"ConnectionId" json:"ConnectionId"`
	ReadingStatus  int        `bun:"readingStatus" json:"readingStatus"`
	DateStarted    *time.Time `bun:"dateStarted" json:"dateStarted"`
	DateFinished   *time.Time `bun:"dateFinished" json:"dateFinished"`
	DateAdded      *time.Time `bun:"dateAdded" json:"dateAdded"`
	Favorite       *bool      `bun:"favorite" json:"favorite"`
	PersonalRating *float64   `bun:"personalRating" json:"personalRating"`
	GoogleID       string     `bun:"googleId" json:"googleId"`
	Title          string     `bun:"title" json:"title"`
	Authors        string     `bun:"authors" json:"authors"`
	Publisher      *string    `bun:"publisher" json:"publisher"`
	PublishedDate  *string    `bun:"publishedDate" json:"publishedDate"`
	Description    *string    `bun:"description" json:"description"`
	ISBN10         *string    `bun:"isbn10" json:"isbn10"`
	ISBN13         *string    `bun:"isbn13" json:"isbn13"`
	PageCount      *int       `bun:"pageCount" json:"pageCount"`
	Categories     *string    `bun:"categories" json:"categories"`
	Thumbnail      *string    `bun:"thumbnail" json:"thumbnail"`
	SmallThumbnail *string    `bun:"smallThumbnail" json:"smallThumbnail"`
	Language       *string    `bun:"language" json:"language"`
	WebReaderLink  *string    `bun:"webReaderLink" json:"webReaderLink"`
	TextSnippet    *string    `bun:"textSnippet" json:"textSnippet"`
	BuyLink        *string    `bun:"buyLink" json:"buyLink"`
	PublicDomain   *bool      `bun:"publicDomain" json:"publicDomain"`
	AverageRating  *float64   `bun:"averageRating" json:"averageRating"`
}

// Library is the aggregate returned by GET /profiles/:id/library.
type Library struct {
	User    *models.Profile `json:"user"`
	Shelves []*ShelfSummary `json:"shelves"`
	Books   []*LibraryBook  `json:"books"`
}

// Library assembles a profile's full library: the profile itself, its
// shelves, and every shelved book joined through the connection tables.
// Returns nil when the profile does not exist.
func (s *Service) Library(ctx context.Context, id string) (*Library, error) {
	profile, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	shelves := []*ShelfSummary{}
	err = s.db.NewSelect().
		Column("id", "name").
		Table("shelves").
		Where(`"profileId" = ?`, id).
		Order("id ASC").
		Scan(ctx, &shelves)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	books := []*LibraryBook{}
	err = s.db.NewSelect().
		ColumnExpr(`sbc."ShelfId", sbc."ConnectionId"`).
		ColumnExpr(`pbc."readingStatus", pbc."dateStarted", pbc."dateFinished", pbc."dateAdded", pbc."favorite", pbc."personalRating"`).
		ColumnExpr(`b."googleId", b."title", b."authors", b."publisher", b."publishedDate", b."description", b."isbn10", b."isbn13", b."pageCount", b."categories", b."thumbnail", b."smallThumbnail", b."language", b."webReaderLink", b."textSnippet", b."buyLink", b."publicDomain", b."averageRating"`).
		TableExpr("shelves AS s").
		Join(`JOIN shelf_book_connections AS sbc ON sbc."ShelfId" = s.id`).
		Join(`JOIN profile_book_connections AS pbc ON pbc.id = sbc."ConnectionId"`).
		Join(`JOIN books AS b ON b.id = pbc."bookId"`).
		Where(`s."profileId" = ?`, id).
		Order("sbc.id ASC").
		Scan(ctx, &books)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Library{
		User:    profile,
		Shelves: shelves,
		Books:   books,
	}, nil
}
