package shelves

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/errcodes"
	"github.com/readshelf/readshelf/pkg/models"
	"github.com/readshelf/readshelf/pkg/profiles"
)

type handler struct {
	shelfService   *Service
	profileService *profiles.Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	shelves, err := h.shelfService.FindAll(ctx)
	if err != nil {
		return errcodes.Storage("Failure to GET shelves", err)
	}

	return c.JSON(http.StatusOK, shelves)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	shelf, err := h.shelfService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET shelf with id %s.", id), err)
	}
	if shelf == nil {
		return errcodes.NotFound("ShelfNotFound")
	}

	return c.JSON(http.StatusOK, shelf)
}

// listByProfile checks the parent profile first, then returns its shelves.
// A profile that exists but has no shelves still gets a 200 with an empty
// array.
func (h *handler) listByProfile(c echo.Context) error {
	ctx := c.Request().Context()
	profileID := c.Param("userId")

	profile, err := h.profileService.FindByID(ctx, profileID)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET shelves for user with profile id %s.", profileID), err)
	}
	if profile == nil {
		return errcodes.NotFound("ProfileNotFound")
	}

	shelves, err := h.shelfService.FindByProfileID(ctx, profileID)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET shelves for user with profile id %s.", profileID), err)
	}

	return c.JSON(http.StatusOK, shelves)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateShelfPayload{}
	if err := c.Bind(&params); err != nil {
		if errors.Is(err, errcodes.EmptyRequestBody()) {
			return errcodes.BadRequest("shelf info is missing in request body")
		}
		return errors.WithStack(err)
	}

	id := 0
	if params.ID != nil {
		id = *params.ID
	}

	existing, err := h.shelfService.DuplicateCheck(ctx, id)
	if err != nil {
		return errcodes.Storage("Failure to create shelf", err)
	}
	if existing != nil {
		return errcodes.Conflict("shelf already exists")
	}

	shelf, err := h.shelfService.Create(ctx, params.toModel())
	if err != nil {
		return errcodes.Storage("Failure to create shelf", err)
	}

	resp := struct {
		Message string        `json:"message"`
		Shelf   *models.Shelf `json:"shelf"`
	}{
		Message: "shelf created",
		Shelf:   shelf,
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := UpdateShelfPayload{}
	if err := c.Bind(&params); err != nil {
		if errors.Is(err, errcodes.EmptyRequestBody()) {
			return errcodes.BadRequest("Request body is missing the shelf info needed for an update.")
		}
		return errors.WithStack(err)
	}
	if params.isEmpty() {
		return errcodes.BadRequest("Request body is missing the shelf info needed for an update.")
	}

	shelf, err := h.shelfService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to update shelf with id %s", id), err)
	}
	if shelf == nil {
		return errcodes.BadRequest(fmt.Sprintf("Shelf with id %s not found.", id))
	}

	columns := []string{}
	if params.Name != nil {
		shelf.Name = *params.Name
		columns = append(columns, "name")
	}
	if params.ProfileID != nil {
		shelf.ProfileID = *params.ProfileID
		columns = append(columns, "profileId")
	}

	updated, err := h.shelfService.Update(ctx, shelf, columns)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to update shelf with id %s", id), err)
	}

	resp := struct {
		Message string        `json:"message"`
		Shelf   *models.Shelf `json:"shelf"`
	}{
		Message: fmt.Sprintf("Shelf with id %s is updated.", id),
		Shelf:   updated,
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	shelf, err := h.shelfService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Could not delete shelf with id: %s", id), err)
	}
	if shelf == nil {
		return errcodes.NotFound(fmt.Sprintf("Shelf with id %s not found.", id))
	}

	count, err := h.shelfService.Remove(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Could not delete shelf with id: %s", id), err)
	}

	resp := struct {
		Message string `json:"message"`
		Count   int64  `json:"count_of_deleted_shelves"`
	}{
		Message: fmt.Sprintf("Shelf with id %s was deleted.", id),
		Count:   count,
	}
	return c.JSON(http.StatusOK, resp)
}
