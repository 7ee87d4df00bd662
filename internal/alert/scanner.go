// Package alert implements the kitchen display's overdue-item scan: a
// recurring timer task that only reads the store and raises repeating
// broadcasts for items that have waited too long without being served.
// Keeping the scan strictly read-only preserves the store's isolation
// guarantees; all repeat bookkeeping lives in the scanner itself.
package alert

import (
	"context"
	"time"

	"github.com/iliyamo/restaurant-order-hub/internal/hub"
	"github.com/iliyamo/restaurant-order-hub/internal/model"
	"github.com/iliyamo/restaurant-order-hub/internal/store"
)

// EventKitchenAlert is the broadcast type raised for overdue items.
const EventKitchenAlert = "kitchen.alert"

// Alert is the kitchen.alert broadcast payload.
type Alert struct {
	OrderItemID string    `json:"orderItemId"`
	SessionID   string    `json:"sessionId"`
	Status      string    `json:"status"`
	OrderedAt   time.Time `json:"orderedAt"`
	WaitingSec  int       `json:"waitingSec"`
	Repeat      int       `json:"repeat"`
}

// Scanner periodically inspects unserved order items against the alert
// settings singleton.  An item still in ordered or preparing state
// older than the initial delay raises an alert, repeated every repeat
// interval up to the configured maximum.
type Scanner struct {
	store    *store.Store
	hub      *hub.Hub
	interval time.Duration

	// repeats already raised per item id; pruned when items leave the
	// alertable set
	raised map[string]int
}

// NewScanner constructs a Scanner that wakes at the given interval.
func NewScanner(st *store.Store, h *hub.Hub, interval time.Duration) *Scanner {
	if st == nil || h == nil {
		panic("nil dependency passed to NewScanner")
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Scanner{store: st, hub: h, interval: interval, raised: make(map[string]int)}
}

// Run blocks, scanning until the context is cancelled.
func (s *Scanner) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.scan(now)
		}
	}
}

// scan is one pass; exported logic kept separate from the loop so
// tests can drive it with a fixed clock.
func (s *Scanner) scan(now time.Time) {
	settings := s.store.Settings()
	if settings.AlertMaxRepeats <= 0 {
		return
	}
	initial := time.Duration(settings.AlertInitialDelaySec) * time.Second
	repeat := time.Duration(settings.AlertRepeatIntervalSec) * time.Second

	live := make(map[string]bool)
	for _, it := range s.store.ListOrderItems("", "") {
		if it.Status != model.StatusOrdered && it.Status != model.StatusPreparing {
			continue
		}
		orderedAt, ok := it.StatusTimestamps[model.StatusOrdered]
		if !ok {
			continue
		}
		live[it.ID] = true
		waited := now.Sub(orderedAt)
		if waited < initial {
			continue
		}
		// due is 1 for the initial alert, plus one per elapsed repeat
		// interval, capped at the configured maximum
		due := 1
		if repeat > 0 {
			due += int((waited - initial) / repeat)
		}
		if due > settings.AlertMaxRepeats {
			due = settings.AlertMaxRepeats
		}
		if s.raised[it.ID] >= due {
			continue
		}
		s.raised[it.ID] = due
		s.hub.Publish(EventKitchenAlert, Alert{
			OrderItemID: it.ID,
			SessionID:   it.SessionID,
			Status:      it.Status,
			OrderedAt:   orderedAt,
			WaitingSec:  int(waited / time.Second),
			Repeat:      due,
		})
	}

	for id := range s.raised {
		if !live[id] {
			delete(s.raised, id)
		}
	}
}
