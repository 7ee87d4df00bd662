package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

// OrderLine is one requested line of a submission: a menu, the option
// selections for each unit, and a quantity.  Quantity is expanded to
// unit granularity, so two units of the same line may still carry
// different selections by submitting two lines.
type OrderLine struct {
	MenuID   string            `json:"menuId"`
	Options  map[string]string `json:"options"`
	Quantity int               `json:"quantity"`
}

// orderCreatedPayload is the orders.created broadcast body.
type orderCreatedPayload struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

// SubmitOrder expands the requested lines into unit order items,
// reserves their stock in one atomic step, and only then persists the
// order and its items.  Reservation before persistence means a failed
// submission leaves no partial records behind and nothing to roll back.
func (s *Store) SubmitOrder(sessionID string, lines []OrderLine, serviceType string) (model.Order, []model.OrderItem, error) {
	if serviceType == "" {
		serviceType = model.ServiceDineIn
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok || sess.Status != model.SessionOpen {
		return model.Order{}, nil, ErrSessionInvalid
	}

	// expand to single units and aggregate reservation counts per menu
	type unit struct {
		menuID  string
		options map[string]string
	}
	var flat []unit
	counts := make(map[string]int)
	var reserveOrder []string
	for _, line := range lines {
		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			flat = append(flat, unit{menuID: line.MenuID, options: line.Options})
		}
		if _, seen := counts[line.MenuID]; !seen {
			reserveOrder = append(reserveOrder, line.MenuID)
		}
		counts[line.MenuID] += qty
	}
	if len(flat) == 0 {
		return model.Order{}, nil, ErrInvalidInput
	}

	reserve := make([]StockRequest, 0, len(reserveOrder))
	for _, menuID := range reserveOrder {
		reserve = append(reserve, StockRequest{MenuID: menuID, Count: counts[menuID]})
	}
	if err := s.reserveLocked(reserve); err != nil {
		return model.Order{}, nil, err
	}

	now := time.Now()
	order := &model.Order{ID: uuid.NewString(), SessionID: sessionID, CreatedAt: now}
	s.orders[order.ID] = order

	created := make([]model.OrderItem, 0, len(flat))
	for _, u := range flat {
		opts := make(map[string]string, len(u.options))
		for k, v := range u.options {
			opts[k] = v
		}
		item := &model.OrderItem{
			ID:               uuid.NewString(),
			OrderID:          order.ID,
			SessionID:        sessionID,
			MenuID:           u.menuID,
			OptionSelections: opts,
			Status:           model.StatusOrdered,
			StatusTimestamps: map[string]time.Time{model.StatusOrdered: now},
			ServiceType:      serviceType,
			EventID:          sess.EventID,
		}
		s.orderItems[item.ID] = item
		s.itemIDs = append(s.itemIDs, item.ID)
		created = append(created, cloneItem(item))
	}

	s.publish(EventOrdersCreated, orderCreatedPayload{Order: *order, Items: created})
	return *order, created, nil
}

// ListOrderItems returns order items sorted by their original order
// timestamp ascending (oldest first, the kitchen display order),
// optionally filtered by session and event.  Insertion order breaks
// timestamp ties, so items of one submission keep their batch order.
func (s *Store) ListOrderItems(sessionID, eventID string) []model.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.OrderItem, 0, len(s.itemIDs))
	for _, id := range s.itemIDs {
		it := s.orderItems[id]
		if sessionID != "" && it.SessionID != sessionID {
			continue
		}
		if eventID != "" && it.EventID != eventID {
			continue
		}
		out = append(out, cloneItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StatusTimestamps[model.StatusOrdered].Before(out[j].StatusTimestamps[model.StatusOrdered])
	})
	return out
}
