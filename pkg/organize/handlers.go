package organize

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/readshelf/readshelf/pkg/errcodes"
	"github.com/readshelf/readshelf/pkg/models"
	"github.com/readshelf/readshelf/pkg/shelves"
)

type handler struct {
	organizeService *Service
	shelfService    *shelves.Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	connections, err := h.organizeService.FindAll(ctx)
	if err != nil {
		return errcodes.Storage("Failure to GET shelf-book connections", err)
	}

	return c.JSON(http.StatusOK, connections)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	connection, err := h.organizeService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET shelf-book connection with id %s.", id), err)
	}
	if connection == nil {
		return errcodes.NotFound(fmt.Sprintf("Shelf-book connection with id %s not found.", id))
	}

	return c.JSON(http.StatusOK, connection)
}

// listByShelf distinguishes a missing shelf from a shelf with nothing on
// it; both are 404s but with different messages.
func (h *handler) listByShelf(c echo.Context) error {
	ctx := c.Request().Context()
	shelfID := c.Param("shelfId")

	shelf, err := h.shelfService.FindByID(ctx, shelfID)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET shelf-book connections where ShelfId is %s.", shelfID), err)
	}
	if shelf == nil {
		return errcodes.NotFound(fmt.Sprintf("Failure to GET shelf-book connections because shelf with ShelfId %s was not found.", shelfID))
	}

	connections, err := h.organizeService.FindByShelfID(ctx, shelfID)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET shelf-book connections where ShelfId is %s.", shelfID), err)
	}
	if len(connections) == 0 {
		return errcodes.NotFound(fmt.Sprintf("Shelf-book connections where ShelfId is %s are not found.", shelfID))
	}

	return c.JSON(http.StatusOK, connections)
}

// create takes both keys from the path; there is no request body.
func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()
	shelfID := c.Param("shelfId")
	connectionID := c.Param("profileBookConnectionId")

	existing, err := h.organizeService.DuplicateCheck(ctx, shelfID, connectionID)
	if err != nil {
		return errcodes.Storage("Failure to create new shelf-book connection", err)
	}
	if existing != nil {
		return errcodes.Conflict(fmt.Sprintf("shelf-book connection with id %d already exists", existing.ID))
	}

	connection, err := h.organizeService.Create(ctx, shelfID, connectionID)
	if err != nil {
		return errcodes.Storage("Failure to create new shelf-book connection", err)
	}

	resp := struct {
		Message    string                      `json:"message"`
		Connection *models.ShelfBookConnection `json:"connection"`
	}{
		Message:    "shelf-book connection created",
		Connection: connection,
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	connection, err := h.organizeService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Could not delete shelf-book connection with id: %s", id), err)
	}
	if connection == nil {
		return errcodes.NotFound(fmt.Sprintf("Shelf-book connection with id %s not found.", id))
	}

	count, err := h.organizeService.Remove(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Could not delete shelf-book connection with id: %s", id), err)
	}

	resp := struct {
		Message string `json:"message"`
		Count   int64  `json:"count_of_deleted_connections"`
	}{
		Message: fmt.Sprintf("Shelf-book connection with id %s was deleted.", id),
		Count:   count,
	}
	return c.JSON(http.StatusOK, resp)
}
