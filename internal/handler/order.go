package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// OrderHandler serves order submission and the per-item lifecycle used
// by the kitchen display: status advancement and cancellation.
type OrderHandler struct {
	Store *store.Store
}

// NewOrderHandler constructs an OrderHandler.  The store must be non-nil.
func NewOrderHandler(st *store.Store) *OrderHandler {
	if st == nil {
		panic("nil store passed to NewOrderHandler")
	}
	return &OrderHandler{Store: st}
}

// Submit handles POST /api/orders.  The whole batch reserves stock
// atomically; on failure nothing is created.
func (h *OrderHandler) Submit(c echo.Context) error {
	var body struct {
		SessionID   string            `json:"sessionId"`
		Items       []store.OrderLine `json:"items"`
		ServiceType string            `json:"serviceType"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	order, items, err := h.Store.SubmitOrder(body.SessionID, body.Items, body.ServiceType)
	if err != nil {
		return fail(c, err)
	}
	itemIDs := make([]string, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID
	}
	return c.JSON(http.StatusCreated, echo.Map{"orderId": order.ID, "itemIds": itemIDs})
}

// ListItems handles GET /api/order-items, oldest first.
func (h *OrderHandler) ListItems(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListOrderItems(c.QueryParam("sessionId"), c.QueryParam("eventId")))
}

// UpdateItemStatus handles PATCH /api/order-items/:id/status.
func (h *OrderHandler) UpdateItemStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	item, err := h.Store.AdvanceItemStatus(c.Param("id"), body.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// CancelItem handles DELETE /api/order-items/:id.  Only items still in
// the initial status can be cancelled; the unit's stock returns to the
// ledger.
func (h *OrderHandler) CancelItem(c echo.Context) error {
	if err := h.Store.CancelOrderItem(c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
