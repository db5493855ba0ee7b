package profiles

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/readshelf/readshelf/pkg/errcodes"
	"github.com/readshelf/readshelf/pkg/models"
)

type handler struct {
	profileService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	profiles, err := h.profileService.FindAll(ctx)
	if err != nil {
		return errcodes.Storage("Failure to GET profiles", err)
	}

	return c.JSON(http.StatusOK, profiles)
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	profile, err := h.profileService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET profile with id %s.", id), err)
	}
	if profile == nil {
		return errcodes.NotFound("ProfileNotFound")
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *handler) library(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	library, err := h.profileService.Library(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to GET library for profile with id %s.", id), err)
	}
	if library == nil {
		return errcodes.NotFound("ProfileNotFound")
	}

	return c.JSON(http.StatusOK, library)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateProfilePayload{}
	if err := c.Bind(&params); err != nil {
		if errors.Is(err, errcodes.EmptyRequestBody()) {
			return errcodes.BadRequest("Failure to create profile because info is missing in request body.")
		}
		return errors.WithStack(err)
	}

	if params.OktaUserID == nil || *params.OktaUserID == "" {
		return errcodes.BadRequest("Failure to create profile because info is missing in request body.")
	}

	profile, err := h.profileService.Create(ctx, params.toModel())
	if err != nil {
		return errcodes.Storage("Failure to create profile", err)
	}

	resp := struct {
		Message string          `json:"message"`
		Profile *models.Profile `json:"profile"`
	}{
		Message: "profile created",
		Profile: profile,
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	params := UpdateProfilePayload{}
	if err := c.Bind(&params); err != nil {
		if errors.Is(err, errcodes.EmptyRequestBody()) {
			return errcodes.BadRequest("Request body is missing the profile info needed for an update.")
		}
		return errors.WithStack(err)
	}
	if params.isEmpty() {
		return errcodes.BadRequest("Request body is missing the profile info needed for an update.")
	}

	profile, err := h.profileService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to update profile with id %s", id), err)
	}
	// An update against a missing row reports 400, not 404. Clients of the
	// original API rely on that distinction.
	if profile == nil {
		return errcodes.BadRequest(fmt.Sprintf("Profile with id %s not found.", id))
	}

	columns := []string{}
	if params.Email != nil {
		profile.Email = params.Email
		columns = append(columns, "email")
	}
	if params.Name != nil {
		profile.Name = params.Name
		columns = append(columns, "name")
	}
	if params.AvatarURL != nil {
		profile.AvatarURL = params.AvatarURL
		columns = append(columns, "avatarUrl")
	}

	updated, err := h.profileService.Update(ctx, profile, columns)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to update profile with id %s", id), err)
	}

	resp := struct {
		Message string          `json:"message"`
		Profile *models.Profile `json:"profile"`
	}{
		Message: fmt.Sprintf("Profile with id %s is updated.", id),
		Profile: updated,
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	profile, err := h.profileService.FindByID(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to delete profile with id %s", id), err)
	}
	if profile == nil {
		return errcodes.NotFound(fmt.Sprintf("Profile with id %s not found.", id))
	}

	count, err := h.profileService.Remove(ctx, id)
	if err != nil {
		return errcodes.Storage(fmt.Sprintf("Failure to delete profile with id %s", id), err)
	}

	resp := struct {
		Message string `json:"message"`
		Count   int64  `json:"count_of_deleted_profiles"`
	}{
		Message: fmt.Sprintf("Profile with id %s was deleted.", id),
		Count:   count,
	}
	return c.JSON(http.StatusOK, resp)
}
