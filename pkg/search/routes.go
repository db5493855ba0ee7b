package search

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the search proxy route.
func RegisterRoutes(e *echo.Echo, searchService *Service) *Service {
	h := &handler{
		searchService: searchService,
	}

	e.GET("/search", h.search)

	return searchService
}
