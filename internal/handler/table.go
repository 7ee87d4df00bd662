package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// TableHandler serves the admin table CRUD.  Unlike menus, table
// deletion is destructive.
type TableHandler struct {
	Store *store.Store
}

// NewTableHandler constructs a TableHandler.  The store must be non-nil.
func NewTableHandler(st *store.Store) *TableHandler {
	if st == nil {
		panic("nil store passed to NewTableHandler")
	}
	return &TableHandler{Store: st}
}

// List handles GET /api/tables.
func (h *TableHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListTables())
}

// Create handles POST /api/tables.
func (h *TableHandler) Create(c echo.Context) error {
	var body struct {
		Label string `json:"label"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	table, err := h.Store.CreateTable(body.Label)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, table)
}

// Update handles PATCH /api/tables/:id with a partial patch.
func (h *TableHandler) Update(c echo.Context) error {
	var patch store.TablePatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	table, err := h.Store.UpdateTable(c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, table)
}

// Delete handles DELETE /api/tables/:id (hard delete).
func (h *TableHandler) Delete(c echo.Context) error {
	if err := h.Store.DeleteTable(c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
