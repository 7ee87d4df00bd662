package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

// SettleInput carries the register's settlement request.
//
// OrderItemIDs selects a subset for split billing; when empty, the
// whole unpaid tab is settled.  ApplyCouponOnlineStore waives the most
// expensive drink and the most expensive food of the settlement.
type SettleInput struct {
	SessionID              string   `json:"sessionId"`
	Method                 string   `json:"method"`
	OrderItemIDs           []string `json:"orderItemIds"`
	ApplyCouponOnlineStore bool     `json:"applyCouponOnlineStore"`
	ServiceType            string   `json:"serviceType"`
	SplitType              string   `json:"splitType"`
}

// Settle computes and records a payment for some or all of a session's
// unpaid order items.
//
// The settlement set is the session's unpaid items, intersected with
// the explicit subset when one is given (ids outside the unpaid
// universe are silently dropped, not an error).  The total is the sum
// of each item's current menu price, so price changes after ordering
// retroactively affect unsettled items.  Settled items flip paid
// permanently; when nothing unpaid remains afterwards, the session is
// closed in the same critical section.
func (s *Store) Settle(in SettleInput) (model.Payment, error) {
	switch in.Method {
	case model.MethodCash, model.MethodQR:
	default:
		return model.Payment{}, ErrInvalidInput
	}
	if in.ServiceType == "" {
		in.ServiceType = model.ServiceDineIn
	}
	if in.SplitType == "" {
		in.SplitType = model.SplitSame
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[in.SessionID]
	if !ok || sess.Status != model.SessionOpen {
		return model.Payment{}, ErrSessionInvalid
	}

	// unpaid universe in insertion order, which makes the coupon
	// tie-break deterministic
	unpaid := make(map[string]bool)
	var unpaidIDs []string
	for _, id := range s.itemIDs {
		it := s.orderItems[id]
		if it.SessionID == in.SessionID && !it.Paid {
			unpaid[id] = true
			unpaidIDs = append(unpaidIDs, id)
		}
	}

	settleIDs := unpaidIDs
	if len(in.OrderItemIDs) > 0 {
		settleIDs = nil
		for _, id := range in.OrderItemIDs {
			if unpaid[id] {
				settleIDs = append(settleIDs, id)
			}
		}
	}
	if len(settleIDs) == 0 {
		return model.Payment{}, ErrNoItemsToSettle
	}

	total := s.totalAtCurrentPricesLocked(settleIDs, in.ApplyCouponOnlineStore)

	payment := &model.Payment{
		ID:           uuid.NewString(),
		SessionID:    in.SessionID,
		EventID:      sess.EventID,
		TotalAmount:  total,
		Method:       in.Method,
		ServiceType:  in.ServiceType,
		SplitType:    in.SplitType,
		PaidAt:       time.Now(),
		OrderItemIDs: append([]string(nil), settleIDs...),
	}
	if in.ApplyCouponOnlineStore {
		coupon := model.CouponOnlineStore
		payment.Coupon = &coupon
	}
	s.payments[payment.ID] = payment
	s.paymentIDs = append(s.paymentIDs, payment.ID)

	for _, id := range settleIDs {
		it := s.orderItems[id]
		it.Paid = true
		pid := payment.ID
		it.PaymentID = &pid
	}

	// close the session once every item is settled
	remaining := false
	for _, id := range s.itemIDs {
		it := s.orderItems[id]
		if it.SessionID == in.SessionID && !it.Paid {
			remaining = true
			break
		}
	}
	if !remaining {
		sess.Status = model.SessionClosed
		now := time.Now()
		sess.ClosedAt = &now
	}

	cp := clonePayment(payment)
	s.publish(EventPaymentsCreated, cp)
	return cp, nil
}

// totalAtCurrentPricesLocked sums current menu prices over the settled
// ids and applies the online-store coupon when asked: the single
// highest-priced drink and the single highest-priced food are free,
// first encountered winning a tie.  The result is clamped at zero.
func (s *Store) totalAtCurrentPricesLocked(itemIDs []string, applyCoupon bool) int {
	total := 0
	maxDrink, maxFood := 0, 0
	for _, id := range itemIDs {
		it, ok := s.orderItems[id]
		if !ok {
			continue
		}
		m, ok := s.menus[it.MenuID]
		if !ok {
			continue
		}
		total += m.UnitPrice
		switch m.Category {
		case model.CategoryDrink:
			if m.UnitPrice > maxDrink {
				maxDrink = m.UnitPrice
			}
		case model.CategoryFood:
			if m.UnitPrice > maxFood {
				maxFood = m.UnitPrice
			}
		}
	}
	if applyCoupon {
		total -= maxDrink + maxFood
	}
	if total < 0 {
		total = 0
	}
	return total
}

// ListPayments returns payments in creation order, optionally filtered
// by event.
func (s *Store) ListPayments(eventID string) []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Payment, 0, len(s.paymentIDs))
	for _, id := range s.paymentIDs {
		p := s.payments[id]
		if eventID != "" && p.EventID != eventID {
			continue
		}
		out = append(out, clonePayment(p))
	}
	return out
}
