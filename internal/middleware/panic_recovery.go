package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

var errPanic = stderrors.New("handler panicked")

// PanicRecovery turns a handler panic into an error wrapping errPanic, which the
// HTTP error handler renders as SYSTEM_001. http.ErrAbortHandler is re-raised.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				slog.Error("Panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprint(r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				err = fmt.Errorf("%w: %v", errPanic, r)
			}()

			return next(c)
		}
	}
}
