package books

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all book routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) *Service {
	bookService := NewService(db)

	h := &handler{
		bookService: bookService,
	}

	books := e.Group("/books")

	books.GET("", h.list)
	books.GET("/:id", h.retrieve)
	books.POST("", h.create)
	books.DELETE("/:id", h.delete)

	return bookService
}
