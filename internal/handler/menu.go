package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// MenuHandler serves the menu board: customer listing plus the admin
// create/patch/hide operations.  Stock is conspicuously absent from the
// patch surface; only the stock ledger mutates it.
type MenuHandler struct {
	Store *store.Store
}

// NewMenuHandler constructs a MenuHandler.  The store must be non-nil.
func NewMenuHandler(st *store.Store) *MenuHandler {
	if st == nil {
		panic("nil store passed to NewMenuHandler")
	}
	return &MenuHandler{Store: st}
}

// List handles GET /api/menus.  Only visible menus are returned, in
// insertion order, optionally filtered by eventId.
func (h *MenuHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListVisibleMenus(c.QueryParam("eventId")))
}

// Create handles POST /api/menus.
func (h *MenuHandler) Create(c echo.Context) error {
	var in store.MenuInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	menu, err := h.Store.CreateMenu(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, menu)
}

// Update handles PATCH /api/menus/:id with a partial patch.
func (h *MenuHandler) Update(c echo.Context) error {
	var patch store.MenuPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	menu, err := h.Store.UpdateMenu(c.Param("id"), patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, menu)
}

// Delete handles DELETE /api/menus/:id.  Deletion is always realized
// as visible = false so existing order items keep a valid reference.
func (h *MenuHandler) Delete(c echo.Context) error {
	menu, err := h.Store.HideMenu(c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, menu)
}
