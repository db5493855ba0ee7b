package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/binder"
	"github.com/readshelf/readshelf/pkg/books"
	"github.com/readshelf/readshelf/pkg/config"
	"github.com/readshelf/readshelf/pkg/connections"
	"github.com/readshelf/readshelf/pkg/errcodes"
	"github.com/readshelf/readshelf/pkg/organize"
	"github.com/readshelf/readshelf/pkg/profiles"
	"github.com/readshelf/readshelf/pkg/search"
	"github.com/readshelf/readshelf/pkg/shelves"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	// The profiles and shelves services double as parent-existence checks
	// for the relation-scoped listings.
	profileService := profiles.RegisterRoutes(e, db)
	books.RegisterRoutes(e, db)
	shelfService := shelves.RegisterRoutes(e, db, profileService)
	connections.RegisterRoutes(e, db, profileService)
	organize.RegisterRoutes(e, db, shelfService)
	search.RegisterRoutes(e, search.NewService(cfg.GoogleBooksBaseURL))

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page not found.")
}
