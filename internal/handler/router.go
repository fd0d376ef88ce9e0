package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskboard/internal/service"
)

// NewRouter wires all routes into a configured Echo instance. Trailing
// slashes are stripped before routing so /todos/ and /todos are the same
// resource.
func NewRouter(todos *service.Todos, users *service.Users, roles *service.Roles) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/healthcheck", Healthcheck)

	NewTodos(todos).Register(e.Group("/todos"))
	NewUsers(users).Register(e.Group("/users"))
	NewRoles(roles).Register(e.Group("/roles"))

	return e
}
