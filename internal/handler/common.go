package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// fail translates the store's sentinel errors into HTTP responses.
// Every engine failure is synchronous and locally recoverable; the
// surfaces show the message and let the user retry.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrTableNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, store.ErrTableDisabled),
		errors.Is(err, store.ErrSessionConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrStockUnavailable),
		errors.Is(err, store.ErrSessionInvalid),
		errors.Is(err, store.ErrCancelNotAllowed),
		errors.Is(err, store.ErrNoItemsToSettle):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
