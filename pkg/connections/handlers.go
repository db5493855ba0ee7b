package connections

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
	connectionService *Service
	profileService    *profiles.Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	connections, err := h.connectionService.FindAll(ctx)
	if err != nil {
		return errcodes.Storage("Failure to GET profile-book connections", err)
	}

	return c.JSON(http.StatusOK, connections)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	connection, err := h.connectionService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET profile-book connection with id %s.", id), err)
	}
	if connection == nil {
		return errcodes.NotFound(fmt.Sprintf("Profile-book connection with id %s not found.", id))
	}

	return c.JSON(http.StatusOK, connection)
}

// listByProfile distinguishes a missing profile from a profile with no
// connections; both are 404s but with different messages.
func (h *handler) listByProfile(c echo.Context) error {
	ctx := c.Request().Context()
	profileID := c.Param("id")

	profile, err := h.profileService.FindByID(ctx, profileID)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET profile-book connections with profile id %s.", profileID), err)
	}
	if profile == nil {
		return errcodes.NotFound(fmt.Sprintf("Failure to get profile-book connections because profile with id %s not found.", profileID))
	}

	connections, err := h.connectionService.FindByProfileID(ctx, profileID)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET profile-book connections with profile id %s.", profileID), err)
	}
	if len(connections) == 0 {
		return errcodes.NotFound(fmt.Sprintf("Profile-book connections with profile id %s not found.", profileID))
	}

	return c.JSON(http.StatusOK, connections)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateConnectionPayload{}
	if err := c.Bind(&params); err != nil {
		if errors.Is(err, errcodes.EmptyRequestBody()) {
			return errcodes.BadRequest("Failure to create profile-book connection because info is missing in request body.")
		}
		return errors.WithStack(err)
	}
	if params.missingRequired() {
		return errcodes.BadRequest("Failure to create profile-book connection because info is missing in request body.")
	}

	existing, err := h.connectionService.DuplicateCheck(ctx, *params.ProfileID, *params.BookID)
	if err != nil {
		return errcodes.Storage("Failure to create profile-book connection", err)
	}
	if existing != nil {
		return errcodes.Conflict(fmt.Sprintf("Profile-book connection with id %d already exists", existing.ID))
	}

	connection, err := h.connectionService.Create(ctx, params.toModel())
	if err != nil {
		return errcodes.Storage("Failure to create profile-book connection", err)
	}

	resp := struct {
		Message    string                        `json:"message"`
		Connection *models.ProfileBookConnection `json:"connection"`
	}{
		Message:    "profile-book connection created",
		Connection: connection,
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := UpdateConnectionPayload{}
	if err := c.Bind(&params); err != nil {
		if errors.Is(err, errcodes.EmptyRequestBody()) {
			return errcodes.BadRequest(fmt.Sprintf("Failure to update profile-book connection with id %s because request body is missing.", id))
		}
		return errors.WithStack(err)
	}
	if params.isEmpty() {
		return errcodes.BadRequest(fmt.Sprintf("Failure to update profile-book connection with id %s because request body is missing.", id))
	}

	connection, err := h.connectionService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to update profile-book connection with id %s", id), err)
	}
	if connection == nil {
		return errcodes.BadRequest(fmt.Sprintf("Failure to update profile-book connection because profile-book connection with id %s was not found.", id))
	}

	columns := []string{}
	if params.ProfileID != nil {
		connection.ProfileID = *params.ProfileID
		columns = append(columns, "profileId")
	}
	if params.BookID != nil {
		connection.BookID = *params.BookID
		columns = append(columns, "bookId")
	}
	if params.ReadingStatus != nil {
		connection.ReadingStatus = *params.ReadingStatus
		columns = append(columns, "readingStatus")
	}
	if params.DateStarted != nil {
		connection.DateStarted = params.DateStarted
		columns = append(columns, "dateStarted")
	}
	if params.DateFinished != nil {
		connection.DateFinished = params.DateFinished
		columns = append(columns, "dateFinished")
	}
	if params.DateAdded != nil {
		connection.DateAdded = params.DateAdded
		columns = append(columns, "dateAdded")
	}
	if params.Favorite != nil {
		connection.Favorite = params.Favorite
		columns = append(columns, "favorite")
	}
	if params.PersonalRating != nil {
		connection.PersonalRating = params.PersonalRating
		columns = append(columns, "personalRating")
	}

	updated, err := h.connectionService.Update(ctx, connection, columns)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to update profile-book connection with id %s", id), err)
	}

	resp := struct {
		Message    string                        `json:"message"`
		Connection *models.ProfileBookConnection `json:"connection"`
	}{
		Message:    fmt.Sprintf("Profile-book connection with id %s is updated.", id),
		Connection: updated,
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	connection, err := h.connectionService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to delete profile-book connection with id %s", id), err)
	}
	if connection == nil {
		return errcodes.NotFoundMessage(fmt.Sprintf("Unable to delete profile-book connection because profile-book connection with id %s not found.", id))
	}

	count, err := h.connectionService.Remove(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to delete profile-book connection with id %s", id), err)
	}

	resp := struct {
		Message string `json:"message"`
		Count   int64  `json:"count_of_deleted_connections"`
	}{
		Message: fmt.Sprintf("Profile-book connection with id %s was deleted.", id),
		Count:   count,
	}
	return c.JSON(http.StatusOK, resp)
}
