package organize

import (
	"github.com/labstack/echo/v4"
	"github.com/readshelf/readshelf/pkg/shelves"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all shelf-book connection routes under
// /organize. The shelf-scoped listing checks the parent shelf through the
// shelves service.
func RegisterRoutes(e *echo.Echo, db *bun.DB, shelfService *shelves.Service) *Service {
	organizeService := NewService(db)

	h := &handler{
		organizeService: organizeService,
		shelfService:    shelfService,
	}

	organize := e.Group("/organize")

	organize.GET("", h.list)
	organize.GET("/:id", h.retrieve)
	organize.GET("/shelf/:shelfId", h.listByShelf)
	organize.POST("/:shelfId/:profileBookConnectionId", h.create)
	organize.DELETE("/:id", h.delete)

	return organizeService
}
