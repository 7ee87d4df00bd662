package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// SettingsHandler serves the alert settings singleton read by the
// kitchen display's alert scanner.
type SettingsHandler struct {
	Store *store.Store
}

// NewSettingsHandler constructs a SettingsHandler.  The store must be non-nil.
func NewSettingsHandler(st *store.Store) *SettingsHandler {
	if st == nil {
		panic("nil store passed to NewSettingsHandler")
	}
	return &SettingsHandler{Store: st}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.Settings())
}

// Update handles PATCH /api/settings with a partial patch.
func (h *SettingsHandler) Update(c echo.Context) error {
	var patch store.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	return c.JSON(http.StatusOK, h.Store.UpdateSettings(patch))
}
