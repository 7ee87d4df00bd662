package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// EventHandler serves the admin event (business day) surface.
type EventHandler struct {
	Store *store.Store
}

// NewEventHandler constructs an EventHandler.  The store must be non-nil.
func NewEventHandler(st *store.Store) *EventHandler {
	if st == nil {
		panic("nil store passed to NewEventHandler")
	}
	return &EventHandler{Store: st}
}

// List handles GET /api/events.
func (h *EventHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListEvents())
}

// Create handles POST /api/events.
func (h *EventHandler) Create(c echo.Context) error {
	var body struct {
		Name string `json:"name"`
		Date string `json:"date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	return c.JSON(http.StatusCreated, h.Store.CreateEvent(body.Name, body.Date))
}

// CloneMenus handles POST /api/events/:id/clone-menus, copying the
// menu board of a previous service day into the target event.
func (h *EventHandler) CloneMenus(c echo.Context) error {
	var body struct {
		FromEventID string `json:"fromEventId"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	count, err := h.Store.CloneMenus(c.Param("id"), body.FromEventID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "count": count})
}
