package shelves

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/readshelf/readshelf/pkg/binder"
	"github.com/readshelf/readshelf/pkg/errcodes"
	"github.com/readshelf/readshelf/pkg/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newShelvesTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(payload))
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func newShelvesHandler(db *bun.DB) *handler {
	return &handler{
		shelfService:   NewService(db),
		profileService: profiles.NewService(db),
	}
}

func TestHandlerRetrieve_Missing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)

	c, _ := newShelvesTestContext(t, http.MethodGet, "/shelves/42", "")
	c.SetPath("/shelves/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.retrieve(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
	assert.Equal(t, "ShelfNotFound", codeErr.Message)
}

func TestHandlerListByProfile_MissingProfile(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)

	c, _ := newShelvesTestContext(t, http.MethodGet, "/shelves/profile/42", "")
	c.SetPath("/shelves/profile/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("42")

	err := h.listByProfile(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
	assert.Equal(t, "ProfileNotFound", codeErr.Message)
	assert.Equal(t, errcodes.WireError, codeErr.Wire)
}

func TestHandlerListByProfile_NoShelvesReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)
	ctx := context.Background()

	profile := createTestProfile(ctx, t, db, "okta|bare")
	id := strconv.Itoa(profile.ID)

	c, rr := newShelvesTestContext(t, http.MethodGet, "/shelves/profile/"+id, "")
	c.SetPath("/shelves/profile/:userId")
	c.SetParamNames("userId")
	c.SetParamValues(id)

	err := h.listByProfile(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestHandlerCreate_EmptyBody(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)

	c, _ := newShelvesTestContext(t, http.MethodPost, "/shelves", "")

	err := h.create(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "shelf info is missing in request body", codeErr.Message)
}

func TestHandlerCreate_DuplicateID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)
	ctx := context.Background()

	profile := createTestProfile(ctx, t, db, "okta|dup")
	shelf := createTestShelf(ctx, t, db, profile.ID, "existing")

	c, _ := newShelvesTestContext(t, http.MethodPost, "/shelves", `{"id":`+strconv.Itoa(shelf.ID)+`,"name":"clone","profileId":`+strconv.Itoa(profile.ID)+`}`)

	err := h.create(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "shelf already exists", codeErr.Message)
}

func TestHandlerCreate_Success(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)
	ctx := context.Background()

	profile := createTestProfile(ctx, t, db, "okta|create")

	c, rr := newShelvesTestContext(t, http.MethodPost, "/shelves", `{"name":"to read","profileId":`+strconv.Itoa(profile.ID)+`}`)

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"shelf created"`)
	assert.Contains(t, rr.Body.String(), `"name":"to read"`)
}

func TestHandlerUpdate_MissingShelfIsBadRequest(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)

	c, _ := newShelvesTestContext(t, http.MethodPut, "/shelves/42", `{"name":"ghost"}`)
	c.SetPath("/shelves/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.update(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "Shelf with id 42 not found.", codeErr.Message)
}

func TestHandlerUpdate_Success(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)
	ctx := context.Background()

	profile := createTestProfile(ctx, t, db, "okta|upd2")
	shelf := createTestShelf(ctx, t, db, profile.ID, "old")
	id := strconv.Itoa(shelf.ID)

	c, rr := newShelvesTestContext(t, http.MethodPut, "/shelves/"+id, `{"name":"renamed"}`)
	c.SetPath("/shelves/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.update(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Shelf with id `+id+` is updated."`)
	assert.Contains(t, rr.Body.String(), `"name":"renamed"`)
}

func TestHandlerDelete_Missing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)

	c, _ := newShelvesTestContext(t, http.MethodDelete, "/shelves/42", "")
	c.SetPath("/shelves/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.delete(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
	assert.Equal(t, "Shelf with id 42 not found.", codeErr.Message)
	assert.Equal(t, errcodes.WireError, codeErr.Wire)
}

func TestHandlerDelete_Success(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newShelvesHandler(db)
	ctx := context.Background()

	profile := createTestProfile(ctx, t, db, "okta|del")
	shelf := createTestShelf(ctx, t, db, profile.ID, "doomed")
	id := strconv.Itoa(shelf.ID)

	c, rr := newShelvesTestContext(t, http.MethodDelete, "/shelves/"+id, "")
	c.SetPath("/shelves/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.delete(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Shelf with id `+id+` was deleted."`)
	assert.Contains(t, rr.Body.String(), `"count_of_deleted_shelves":1`)
}
