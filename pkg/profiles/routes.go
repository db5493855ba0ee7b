package profiles

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all profile routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) *Service {
	profileService := NewService(db)

	h := &handler{
		profileService: profileService,
	}

	profiles := e.Group("/profiles")

	profiles.GET("", h.list)
	profiles.GET("/:id", h.retrieve)
	profiles.GET("/:id/library", h.library)
	profiles.POST("", h.create)
	profiles.PUT("/:id", h.update)
	profiles.DELETE("/:id", h.delete)

	return profileService
}
