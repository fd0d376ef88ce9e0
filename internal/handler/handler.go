package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/service"
)

// One response envelope everywhere. Success bodies carry the payload under
// "data" (lists add "results"); error bodies carry "message". DELETE
// responds 204 with no body at all.

func respondData(c echo.Context, status int, data any) error {
	return c.JSON(status, echo.Map{
		"status": "success",
		"data":   data,
	})
}

func respondList[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"results": len(items),
		"data":    items,
	})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{
		"status":  "error",
		"message": message,
	})
}

// respondServiceError translates a typed service error into its status and
// body. Anything untyped is a store failure: logged, reported as 500 with
// the operation's generic message.
func respondServiceError(c echo.Context, err error, fallback string) error {
	switch e := err.(type) {
	case *service.NotFoundError:
		return respondError(c, http.StatusNotFound, e.Message)
	case *service.ConflictError:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"status":  "error",
			"message": e.Message,
			"data":    e.Existing,
		})
	case *service.ReferenceError:
		return respondError(c, http.StatusBadRequest, e.Message)
	case *service.InUseError:
		return respondError(c, http.StatusConflict, e.Message)
	default:
		slog.Error(fallback, "path", c.Path(), "err", err)
		return respondError(c, http.StatusInternalServerError, fallback)
	}
}

// Healthcheck reports liveness.
func Healthcheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "taskboard API is up and running",
	})
}
