package store

import (
	"errors"
	"testing"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

func TestSubmitOrderExpandsQuantities(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	coffee := f.mustMenu(t, "coffee", 400, 10, model.CategoryDrink)

	order, items, err := f.st.SubmitOrder(f.session.ID, []OrderLine{
		{MenuID: beer.ID, Quantity: 3},
		{MenuID: coffee.ID, Options: map[string]string{"temp": "ice"}, Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4 units", len(items))
	}
	for _, it := range items {
		if it.OrderID != order.ID || it.SessionID != f.session.ID {
			t.Errorf("item %s not linked to order/session: %+v", it.ID, it)
		}
		if it.Status != model.StatusOrdered {
			t.Errorf("item %s status = %s, want %s", it.ID, it.Status, model.StatusOrdered)
		}
		if _, ok := it.StatusTimestamps[model.StatusOrdered]; !ok {
			t.Errorf("item %s missing ordered timestamp", it.ID)
		}
		if it.ServiceType != model.ServiceDineIn {
			t.Errorf("item %s serviceType = %s, want default dine_in", it.ID, it.ServiceType)
		}
	}
	if items[3].OptionSelections["temp"] != "ice" {
		t.Errorf("coffee unit lost its option selections: %+v", items[3].OptionSelections)
	}
	if got := f.stockOf(t, beer.ID); got != 7 {
		t.Errorf("beer stock = %d, want 7", got)
	}
	if got := f.stockOf(t, coffee.ID); got != 9 {
		t.Errorf("coffee stock = %d, want 9", got)
	}
}

func TestSubmitOrderSessionGuards(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	closed := model.SessionClosed
	if _, err := f.st.UpdateSession(f.session.ID, SessionPatch{Status: &closed}); err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}

	tests := []struct {
		name      string
		sessionID string
	}{
		{"unknown session", "nope"},
		{"closed session", f.session.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.st.SubmitOrder(tt.sessionID, []OrderLine{{MenuID: beer.ID, Quantity: 1}}, "")
			if !errors.Is(err, ErrSessionInvalid) {
				t.Errorf("SubmitOrder() error = %v, want ErrSessionInvalid", err)
			}
		})
	}
}

func TestSubmitOrderEmptyLines(t *testing.T) {
	f := newFixture(t)
	if _, _, err := f.st.SubmitOrder(f.session.ID, nil, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("SubmitOrder(no lines) error = %v, want ErrInvalidInput", err)
	}
}

func TestSubmitOrderFailureLeavesNothingBehind(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	fries := f.mustMenu(t, "fries", 500, 1, model.CategoryFood)
	f.rec.reset()

	_, _, err := f.st.SubmitOrder(f.session.ID, []OrderLine{
		{MenuID: beer.ID, Quantity: 2},
		{MenuID: fries.ID, Quantity: 2},
	}, "")
	if !errors.Is(err, ErrStockUnavailable) {
		t.Fatalf("SubmitOrder() error = %v, want ErrStockUnavailable", err)
	}
	if got := f.st.ListOrderItems(f.session.ID, ""); len(got) != 0 {
		t.Errorf("failed submission left %d order items behind", len(got))
	}
	if got := f.stockOf(t, beer.ID); got != 10 {
		t.Errorf("beer stock = %d, want 10", got)
	}
	if len(f.rec.types) != 0 {
		t.Errorf("failed submission broadcast %v", f.rec.types)
	}
}

func TestListOrderItemsSortedAndFiltered(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)

	_, first, err := f.st.SubmitOrder(f.session.ID, []OrderLine{{MenuID: beer.ID, Quantity: 1}}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	_, second, err := f.st.SubmitOrder(f.session.ID, []OrderLine{{MenuID: beer.ID, Quantity: 2}}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	got := f.st.ListOrderItems(f.session.ID, "")
	if len(got) != 3 {
		t.Fatalf("got %d items, want 3", len(got))
	}
	if got[0].ID != first[0].ID {
		t.Errorf("oldest item not first: got %s, want %s", got[0].ID, first[0].ID)
	}
	if got[1].ID != second[0].ID || got[2].ID != second[1].ID {
		t.Errorf("second batch out of order: %s, %s", got[1].ID, got[2].ID)
	}

	if got := f.st.ListOrderItems("other-session", ""); len(got) != 0 {
		t.Errorf("session filter leaked %d items", len(got))
	}
	if got := f.st.ListOrderItems("", f.event.ID); len(got) != 3 {
		t.Errorf("event filter returned %d items, want 3", len(got))
	}
}
