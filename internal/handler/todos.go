package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/domain"
	"taskboard/internal/service"
)

// Todos serves the /todos routes.
type Todos struct {
	svc *service.Todos
}

// NewTodos builds the todo handler.
func NewTodos(svc *service.Todos) *Todos {
	return &Todos{svc: svc}
}

// Register mounts the todo routes on the group.
func (h *Todos) Register(g *echo.Group) {
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
	g.GET("/title/:title", h.getByTitle)
}

type createTodoRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Todos) list(c echo.Context) error {
	todos, err := h.svc.List(c.Request().Context())
	if err != nil {
		// Listing degrades to an empty result rather than failing the page.
		slog.Error("list todos", "err", err)
		todos = nil
	}
	return respondList(c, todos)
}

func (h *Todos) get(c echo.Context) error {
	todo, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondServiceError(c, err, "Failed to get todo")
	}
	return respondData(c, http.StatusOK, todo)
}

func (h *Todos) getByTitle(c echo.Context) error {
	todo, err := h.svc.GetByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return respondServiceError(c, err, "Failed to get todo")
	}
	return respondData(c, http.StatusOK, todo)
}

func (h *Todos) create(c echo.Context) error {
	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	todo, err := h.svc.Create(c.Request().Context(), domain.Todo{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err, "Failed to create todo")
	}
	return respondData(c, http.StatusCreated, todo)
}

func (h *Todos) update(c echo.Context) error {
	var patch domain.TodoPatch
	if err := c.Bind(&patch); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}

	todo, err := h.svc.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return respondServiceError(c, err, "Failed to update todo")
	}
	return respondData(c, http.StatusOK, todo)
}

func (h *Todos) delete(c echo.Context) error {
	if _, err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondServiceError(c, err, "Failed to delete todo")
	}
	return c.NoContent(http.StatusNoContent)
}
