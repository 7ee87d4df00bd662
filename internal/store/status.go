package store

import (
	"time"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

// normalizeStatus maps an input status label to its canonical stored
// form.  The historical "completed" spelling is folded into "ready";
// anything unrecognized returns false.
func normalizeStatus(status string) (string, bool) {
	switch status {
	case model.StatusOrdered, model.StatusPreparing, model.StatusReady, model.StatusServed:
		return status, true
	case model.StatusCompleted:
		return model.StatusReady, true
	default:
		return "", false
	}
}

// AdvanceItemStatus moves an order item to the requested status and
// records the transition time under that status key.  Keys for earlier
// statuses are retained, never cleared, producing a full audit trail.
// Sequencing is deliberately not enforced: callers advance items in
// order on the kitchen display, and an out-of-order or repeated label
// simply records a fresh timestamp for that status.
func (s *Store) AdvanceItemStatus(id, status string) (model.OrderItem, error) {
	normalized, ok := normalizeStatus(status)
	if !ok {
		return model.OrderItem{}, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item, found := s.orderItems[id]
	if !found {
		return model.OrderItem{}, ErrNotFound
	}
	item.Status = normalized
	item.StatusTimestamps[normalized] = time.Now()
	cp := cloneItem(item)
	s.publish(EventOrderItemsUpdated, cp)
	return cp, nil
}

// CancelOrderItem hard-deletes an order item that has not left the
// initial status, returning its single reserved unit to stock.  Once
// the kitchen has started on an item it can no longer be cancelled.
func (s *Store) CancelOrderItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, found := s.orderItems[id]
	if !found {
		return ErrNotFound
	}
	if item.Status != model.StatusOrdered {
		return ErrCancelNotAllowed
	}
	s.releaseLocked([]StockRequest{{MenuID: item.MenuID, Count: 1}})
	delete(s.orderItems, id)
	for i, itemID := range s.itemIDs {
		if itemID == id {
			s.itemIDs = append(s.itemIDs[:i], s.itemIDs[i+1:]...)
			break
		}
	}
	s.publish(EventOrderItemsDeleted, map[string]string{"id": id})
	return nil
}
