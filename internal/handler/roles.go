package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/domain"
	"taskboard/internal/service"
)

// Roles serves the /roles routes.
type Roles struct {
	svc *service.Roles
}

// NewRoles builds the role handler.
func NewRoles(svc *service.Roles) *Roles {
	return &Roles{svc: svc}
}

// Register mounts the role routes on the group.
func (h *Roles) Register(g *echo.Group) {
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.GET("/name/:name", h.getByName)
}

type createRoleRequest struct {
	Name string `json:"name"`
}

func (h *Roles) list(c echo.Context) error {
	roles, err := h.svc.List(c.Request().Context())
	if err != nil {
		slog.Error("list roles", "err", err)
		roles = nil
	}
	return respondList(c, roles)
}

func (h *Roles) get(c echo.Context) error {
	role, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondServiceError(c, err, "Failed to get role")
	}
	return respondData(c, http.StatusOK, role)
}

func (h *Roles) getByName(c echo.Context) error {
	role, err := h.svc.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return respondServiceError(c, err, "Failed to get role")
	}
	return respondData(c, http.StatusOK, role)
}

func (h *Roles) create(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	role, err := h.svc.Create(c.Request().Context(), domain.Role{Name: req.Name})
	if err != nil {
		return respondServiceError(c, err, "Failed to create role")
	}
	return respondData(c, http.StatusCreated, role)
}

func (h *Roles) update(c echo.Context) error {
	var patch domain.RolePatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	role, err := h.svc.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondServiceError(c, err, "Failed to update role")
	}
	return respondData(c, http.StatusOK, role)
}

func (h *Roles) delete(c echo.Context) error {
	if _, err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondServiceError(c, err, "Failed to delete role")
	}
	return c.NoContent(http.StatusNoContent)
}
