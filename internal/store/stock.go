package store

import "fmt"

// StockRequest names one menu and the number of units to reserve or
// release against it.
type StockRequest struct {
	MenuID string `json:"menuId"`
	Count  int    `json:"count"`
}

// Reserve performs an atomic multi-menu check-then-decrement.  Every
// listed menu must exist, be visible and have at least Count units of
// stock; if any entry fails, no counter is mutated and the error wraps
// ErrStockUnavailable naming the failing menu.  Concurrent reservations
// serialize on the store lock, so the sum of decrements can never
// exceed available stock.
func (s *Store) Reserve(items []StockRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reserveLocked(items)
}

func (s *Store) reserveLocked(items []StockRequest) error {
	// check phase: nothing is mutated until every entry has passed
	for _, it := range items {
		m, ok := s.menus[it.MenuID]
		if !ok || !m.Visible {
			return fmt.Errorf("%w: invalid menu", ErrStockUnavailable)
		}
		if m.StockLimit < it.Count {
			return fmt.Errorf("%w: %s", ErrStockUnavailable, m.Name)
		}
	}
	for _, it := range items {
		s.menus[it.MenuID].StockLimit -= it.Count
	}
	return nil
}

// Release unconditionally returns units to stock.  Unknown menus are
// skipped.  There is no cap and no pairing with a prior reservation:
// releasing twice inflates the counter, which doubles as the manual
// stock-correction escape hatch.
func (s *Store) Release(items []StockRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked(items)
}

func (s *Store) releaseLocked(items []StockRequest) {
	for _, it := range items {
		if m, ok := s.menus[it.MenuID]; ok {
			m.StockLimit += it.Count
		}
	}
}
