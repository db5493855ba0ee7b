package shelves

import (
	"github.com/labstack/echo/v4"
	"github.com/readshelf/readshelf/pkg/profiles"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all shelf routes. The profile-scoped listing
// checks the parent profile through the profiles service.
func RegisterRoutes(e *echo.Echo, db *bun.DB, profileService *profiles.Service) *Service {
	shelfService := NewService(db)

	h := &handler{
		shelfService:   shelfService,
		profileService: profileService,
	}

	shelves := e.Group("/shelves")

	shelves.GET("", h.list)
	shelves.GET("/:id", h.retrieve)
	shelves.GET("/profile/:userId", h.listByProfile)
	shelves.POST("", h.create)
	shelves.PUT("/:id", h.update)
	shelves.DELETE("/:id", h.delete)

	return shelfService
}
