package connections

import (
	"github.com/labstack/echo/v4"
	"github.com/readshelf/readshelf/pkg/profiles"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all profile-book connection routes under
// /connect. The profile-scoped listing checks the parent profile through
// the profiles service.
func RegisterRoutes(e *echo.Echo, db *bun.DB, profileService *profiles.Service) *Service {
	connectionService := NewService(db)

	h := &handler{
		connectionService: connectionService,
		profileService:    profileService,
	}

	connect := e.Group("/connect")

	connect.GET("", h.list)
	connect.GET("/:id", h.retrieve)
	connect.GET("/profile/:id", h.listByProfile)
	connect.POST("", h.create)
	connect.PUT("/:id", h.update)
	connect.DELETE("/:id", h.delete)

	return connectionService
}
