package search

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/errcodes"
)

type handler struct {
	searchService *Service
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Request().Context()

	params := SearchQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	resp, err := h.searchService.Search(ctx, params)
	if err != nil {
		return errcodes.Storage("Failure to get Google Books API result.", err)
	}

	return c.JSON(http.StatusOK, resp)
}
