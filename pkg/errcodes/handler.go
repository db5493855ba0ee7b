package errcodes

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/errutils"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle is the Echo error handler. Typed errors are written with their own
// status and body shape; anything else is an internal server error surfaced
// as {"message", "error"} per the API's failure contract.
func (h *Handler) Handle(err error, c echo.Context) {
	if errutils.IsIgnorableErr(err) {
		logger.FromEchoContext(c).Err(err).Warn("broken pipe")
		return
	}

	httpCode, payload := h.generatePayload(err)

	if httpCode == http.StatusInternalServerError {
		logger.FromEchoContext(c).Err(err).Error("server error")
	}

	if err := c.JSON(httpCode, payload); err != nil {
		logger.FromEchoContext(c).Err(errors.WithStack(err)).Error("error handler json error")
	}
}

func (h *Handler) generatePayload(err error) (int, map[string]interface{}) {
	var e *Error
	if ok := errors.As(err, &e); ok {
		payload := map[string]interface{}{e.Wire: e.Message}
		if e.Err != nil {
			payload[WireError] = e.Err.Error()
		}
		return e.HTTPCode, payload
	}

	var he *echo.HTTPError
	if ok := errors.As(err, &he); ok {
		return he.Code, map[string]interface{}{
			WireMessage: fmt.Sprintf("%v", he.Message),
		}
	}

	return http.StatusInternalServerError, map[string]interface{}{
		WireMessage: "Internal Server Error",
		WireError:   err.Error(),
	}
}
