package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
	"github.com/iliyamo/restaurant-order-hub/internal/queue"
	queue_publisher "github.com/iliyamo/restaurant-order-hub/internal/service"
	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// PaymentHandler serves the register's settlement surface.
type PaymentHandler struct {
	Store *store.Store
}

// NewPaymentHandler constructs a PaymentHandler.  The store must be non-nil.
func NewPaymentHandler(st *store.Store) *PaymentHandler {
	if st == nil {
		panic("nil store passed to NewPaymentHandler")
	}
	return &PaymentHandler{Store: st}
}

// Settle handles POST /api/payments.  Besides the live broadcast, the
// recorded settlement is mirrored to the message broker in the
// background; a broker failure never fails the payment.
func (h *PaymentHandler) Settle(c echo.Context) error {
	var in store.SettleInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	payment, err := h.Store.Settle(in)
	if err != nil {
		return fail(c, err)
	}
	go mirrorPayment(payment)
	return c.JSON(http.StatusCreated, payment)
}

// List handles GET /api/payments, optionally filtered by eventId.
func (h *PaymentHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Store.ListPayments(c.QueryParam("eventId")))
}

// mirrorPayment publishes the settlement to the broker, fire-and-forget.
func mirrorPayment(p model.Payment) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	coupon := ""
	if p.Coupon != nil {
		coupon = *p.Coupon
	}
	_ = queue_publisher.PublishPaymentRecorded(ctx, queue.PaymentRecordedEvent{
		PaymentID:    p.ID,
		SessionID:    p.SessionID,
		EventID:      p.EventID,
		TotalAmount:  p.TotalAmount,
		Method:       p.Method,
		ServiceType:  p.ServiceType,
		SplitType:    p.SplitType,
		Coupon:       coupon,
		OrderItemIDs: p.OrderItemIDs,
		PaidAt:       p.PaidAt.UTC().Format(time.RFC3339),
	})
}
