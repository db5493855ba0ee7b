package books

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/errcodes"
	"github.com/readshelf/readshelf/pkg/models"
)

type handler struct {
	bookService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.FindAll(ctx)
	if err != nil {
		return errcodes.Storage("Failure to GET books", err)
	}

	return c.JSON(http.StatusOK, books)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	book, err := h.bookService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET book with id %s.", id), err)
	}
	if book == nil {
		return errcodes.NotFound("BookNotFound")
	}

	return c.JSON(http.StatusOK, book)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		if errors.Is(err, errcodes.EmptyRequestBody()) {
			return errcodes.BadRequest("book missing")
		}
		return errors.WithStack(err)
	}

	// The original API deduplicates on the id column, not googleId, with
	// zero standing in when the caller omits an id.
	id := 0
	if params.ID != nil {
		id = *params.ID
	}

	existing, err := h.bookService.DuplicateCheck(ctx, id)
	if err != nil {
		return errcodes.Storage("Failure to create book", err)
	}
	if existing != nil {
		return errcodes.Conflict("book already exists")
	}

	book, err := h.bookService.Create(ctx, params.toModel())
	if err != nil {
		return errcodes.Storage("Failure to create book", err)
	}

	resp := struct {
		Message string       `json:"message"`
		Book    *models.Book `json:"book"`
	}{
		Message: "book created",
		Book:    book,
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	book, err := h.bookService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Could not delete Books with ID: %s", id), err)
	}
	if book == nil {
		return errcodes.NotFound("BookNotFound")
	}

	count, err := h.bookService.Remove(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Could not delete Books with ID: %s", id), err)
	}

	resp := struct {
		Message string `json:"message"`
		Count   int64  `json:"count_of_deleted_books"`
	}{
		Message: fmt.Sprintf("Books '%s' was deleted.", id),
		Count:   count,
	}
	return c.JSON(http.StatusOK, resp)
}
