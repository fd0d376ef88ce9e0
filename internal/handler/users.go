package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/domain"
	"taskboard/internal/service"
)

// Users serves the /users routes.
type Users struct {
	svc *service.Users
}

// NewUsers builds the user handler.
func NewUsers(svc *service.Users) *Users {
	return &Users{svc: svc}
}

// Register mounts the user routes on the group.
func (h *Users) Register(g *echo.Group) {
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.GET("/:id/role", h.getRole)
	g.GET("/email/:email", h.getByEmail)
	g.GET("/phone/:phone", h.getByPhone)
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func (h *Users) list(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		slog.Error("list users", "err", err)
		users = nil
	}
	return respondList(c, users)
}

func (h *Users) get(c echo.Context) error {
	user, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondServiceError(c, err, "Failed to get user")
	}
	return respondData(c, http.StatusOK, user)
}

func (h *Users) getByEmail(c echo.Context) error {
	user, err := h.svc.GetByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return respondServiceError(c, err, "Failed to get user")
	}
	return respondData(c, http.StatusOK, user)
}

func (h *Users) getByPhone(c echo.Context) error {
	user, err := h.svc.GetByPhone(c.Request().Context(), c.Param("phone"))
	if err != nil {
		return respondServiceError(c, err, "Failed to get user")
	}
	return respondData(c, http.StatusOK, user)
}

// getRole resolves the referenced role for a user. Users store the role id
// only, so this is the read side of the reference-by-id representation.
func (h *Users) getRole(c echo.Context) error {
	role, err := h.svc.GetRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondServiceError(c, err, "Failed to get role")
	}
	return respondData(c, http.StatusOK, role)
}

func (h *Users) create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	user, err := h.svc.Create(c.Request().Context(), domain.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	})
	if err != nil {
		return respondServiceError(c, err, "Failed to create user")
	}
	return respondData(c, http.StatusCreated, user)
}

func (h *Users) update(c echo.Context) error {
	var patch domain.UserPatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	user, err := h.svc.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondServiceError(c, err, "Failed to update user")
	}
	return respondData(c, http.StatusOK, user)
}

func (h *Users) delete(c echo.Context) error {
	if _, err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondServiceError(c, err, "Failed to delete user")
	}
	return c.NoContent(http.StatusNoContent)
}
