package organize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/readshelf/readshelf/pkg/binder"
	"github.com/readshelf/readshelf/pkg/errcodes"
	"github.com/readshelf/readshelf/pkg/shelves"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newOrganizeTestContext(t *testing.T, method, path string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func newOrganizeHandler(db *bun.DB) *handler {
	return &handler{
		organizeService: NewService(db),
		shelfService:    shelves.NewService(db),
	}
}

func TestHandlerCreate_Success(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newOrganizeHandler(db)
	ctx := context.Background()

	shelf, connection := fixtures(ctx, t, db)
	shelfID := strconv.Itoa(shelf.ID)
	connectionID := strconv.Itoa(connection.ID)

	c, rr := newOrganizeTestContext(t, http.MethodPost, "/organize/"+shelfID+"/"+connectionID)
	c.SetPath("/organize/:shelfId/:profileBookConnectionId")
	c.SetParamNames("shelfId", "profileBookConnectionId")
	c.SetParamValues(shelfID, connectionID)

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"shelf-book connection created"`)
	assert.Contains(t, rr.Body.String(), `"ShelfId":`+shelfID)
	assert.Contains(t, rr.Body.String(), `"ConnectionId":`+connectionID)
}

func TestHandlerCreate_DuplicateReportsExistingID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newOrganizeHandler(db)
	ctx := context.Background()

	shelf, connection := fixtures(ctx, t, db)
	shelfID := strconv.Itoa(shelf.ID)
	connectionID := strconv.Itoa(connection.ID)

	existing, err := h.organizeService.Create(ctx, shelfID, connectionID)
	require.NoError(t, err)

	c, _ := newOrganizeTestContext(t, http.MethodPost, "/organize/"+shelfID+"/"+connectionID)
	c.SetPath("/organize/:shelfId/:profileBookConnectionId")
	c.SetParamNames("shelfId", "profileBookConnectionId")
	c.SetParamValues(shelfID, connectionID)

	err = h.create(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "shelf-book connection with id "+strconv.Itoa(existing.ID)+" already exists", codeErr.Message)
}

func TestHandlerRetrieve_Missing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newOrganizeHandler(db)

	c, _ := newOrganizeTestContext(t, http.MethodGet, "/organize/42")
	c.SetPath("/organize/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.retrieve(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
	assert.Equal(t, "Shelf-book connection with id 42 not found.", codeErr.Message)
}

func TestHandlerListByShelf_MissingShelf(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newOrganizeHandler(db)

	c, _ := newOrganizeTestContext(t, http.MethodGet, "/organize/shelf/42")
	c.SetPath("/organize/shelf/:shelfId")
	c.SetParamNames("shelfId")
	c.SetParamValues("42")

	err := h.listByShelf(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
	assert.Equal(t, "Failure to GET shelf-book connections because shelf with ShelfId 42 was not found.", codeErr.Message)
}

func TestHandlerListByShelf_EmptyShelf(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newOrganizeHandler(db)
	ctx := context.Background()

	shelf, _ := fixtures(ctx, t, db)
	shelfID := strconv.Itoa(shelf.ID)

	c, _ := newOrganizeTestContext(t, http.MethodGet, "/organize/shelf/"+shelfID)
	c.SetPath("/organize/shelf/:shelfId")
	c.SetParamNames("shelfId")
	c.SetParamValues(shelfID)

	err := h.listByShelf(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
	assert.Equal(t, "Shelf-book connections where ShelfId is "+shelfID+" are not found.", codeErr.Message)
}

func TestHandlerDelete_Missing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newOrganizeHandler(db)

	c, _ := newOrganizeTestContext(t, http.MethodDelete, "/organize/42")
	c.SetPath("/organize/:id")
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.delete(c)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusNotFound, codeErr.HTTPCode)
	assert.Equal(t, "Shelf-book connection with id 42 not found.", codeErr.Message)
	assert.Equal(t, errcodes.WireError, codeErr.Wire)
}

func TestHandlerDelete_Success(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := newOrganizeHandler(db)
	ctx := context.Background()

	shelf, connection := fixtures(ctx, t, db)
	created, err := h.organizeService.Create(ctx, strconv.Itoa(shelf.ID), strconv.Itoa(connection.ID))
	require.NoError(t, err)
	id := strconv.Itoa(created.ID)

	c, rr := newOrganizeTestContext(t, http.MethodDelete, "/organize/"+id)
	c.SetPath("/organize/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)

	err = h.delete(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"Shelf-book connection with id `+id+` was deleted."`)
	assert.Contains(t, rr.Body.String(), `"count_of_deleted_connections":1`)
}
