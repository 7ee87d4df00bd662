package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

func TestSettleFullTabClosesSession(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	fries := f.mustMenu(t, "fries", 500, 10, model.CategoryFood)
	_, _, err := f.st.SubmitOrder(f.session.ID, []OrderLine{
		{MenuID: beer.ID, Quantity: 2},
		{MenuID: fries.ID, Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	p, err := f.st.Settle(SettleInput{SessionID: f.session.ID, Method: model.MethodCash})
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if p.TotalAmount != 1700 {
		t.Errorf("total = %d, want 1700", p.TotalAmount)
	}
	if len(p.OrderItemIDs) != 3 {
		t.Errorf("payment covers %d items, want 3", len(p.OrderItemIDs))
	}
	if p.SplitType != model.SplitSame || p.ServiceType != model.ServiceDineIn {
		t.Errorf("defaults not applied: %+v", p)
	}

	for _, it := range f.st.ListOrderItems(f.session.ID, "") {
		if !it.Paid || it.PaymentID == nil || *it.PaymentID != p.ID {
			t.Errorf("item %s not marked paid by %s: %+v", it.ID, p.ID, it)
		}
	}
	if _, ok := f.st.FindOpenSession(f.table.ID, f.event.ID); ok {
		t.Errorf("session still open after full settlement")
	}
}

func TestSettleSubsetKeepsSessionOpen(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	_, items, err := f.st.SubmitOrder(f.session.ID, []OrderLine{{MenuID: beer.ID, Quantity: 3}}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	p, err := f.st.Settle(SettleInput{
		SessionID:    f.session.ID,
		Method:       model.MethodQR,
		OrderItemIDs: []string{items[0].ID, "not-an-item"},
		SplitType:    model.SplitSplit,
	})
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	// the unknown id is dropped silently, not an error
	if len(p.OrderItemIDs) != 1 || p.OrderItemIDs[0] != items[0].ID {
		t.Errorf("payment items = %v, want only %s", p.OrderItemIDs, items[0].ID)
	}
	if p.TotalAmount != 600 {
		t.Errorf("total = %d, want 600", p.TotalAmount)
	}

	unpaid := 0
	for _, it := range f.st.ListOrderItems(f.session.ID, "") {
		if !it.Paid {
			unpaid++
		}
	}
	if unpaid != 2 {
		t.Errorf("%d items unpaid after subset settle, want 2", unpaid)
	}
	if _, ok := f.st.FindOpenSession(f.table.ID, f.event.ID); !ok {
		t.Errorf("session closed while items remain unpaid")
	}

	// already-paid ids fall out of the intersection on the next settle
	if _, err := f.st.Settle(SettleInput{
		SessionID:    f.session.ID,
		Method:       model.MethodQR,
		OrderItemIDs: []string{items[0].ID},
	}); !errors.Is(err, ErrNoItemsToSettle) {
		t.Errorf("resettle of paid item error = %v, want ErrNoItemsToSettle", err)
	}
}

func TestSettleGuards(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	if _, _, err := f.st.SubmitOrder(f.session.ID, []OrderLine{{MenuID: beer.ID, Quantity: 1}}, ""); err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	if _, err := f.st.Settle(SettleInput{SessionID: f.session.ID, Method: "barter"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown method error = %v, want ErrInvalidInput", err)
	}
	if _, err := f.st.Settle(SettleInput{SessionID: "nope", Method: model.MethodCash}); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("unknown session error = %v, want ErrSessionInvalid", err)
	}

	closed := model.SessionClosed
	if _, err := f.st.UpdateSession(f.session.ID, SessionPatch{Status: &closed}); err != nil {
		t.Fatalf("UpdateSession: %v", err)
	}
	if _, err := f.st.Settle(SettleInput{SessionID: f.session.ID, Method: model.MethodCash}); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("closed session error = %v, want ErrSessionInvalid", err)
	}
}

func TestSettleNothingUnpaid(t *testing.T) {
	f := newFixture(t)
	if _, err := f.st.Settle(SettleInput{SessionID: f.session.ID, Method: model.MethodCash}); !errors.Is(err, ErrNoItemsToSettle) {
		t.Errorf("empty tab error = %v, want ErrNoItemsToSettle", err)
	}
}

func TestSettleCouponWaivesTopDrinkAndFood(t *testing.T) {
	f := newFixture(t)
	cheapDrink := f.mustMenu(t, "highball", 300, 10, model.CategoryDrink)
	dearDrink := f.mustMenu(t, "beer", 500, 10, model.CategoryDrink)
	cheapFood := f.mustMenu(t, "fries", 700, 10, model.CategoryFood)
	dearFood := f.mustMenu(t, "chicken", 900, 10, model.CategoryFood)
	_, _, err := f.st.SubmitOrder(f.session.ID, []OrderLine{
		{MenuID: cheapDrink.ID, Quantity: 1},
		{MenuID: dearDrink.ID, Quantity: 1},
		{MenuID: cheapFood.ID, Quantity: 1},
		{MenuID: dearFood.ID, Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	p, err := f.st.Settle(SettleInput{
		SessionID:              f.session.ID,
		Method:                 model.MethodCash,
		ApplyCouponOnlineStore: true,
	})
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	// 300+500+700+900 minus the 500 drink and the 900 food
	if p.TotalAmount != 1000 {
		t.Errorf("total = %d, want 1000", p.TotalAmount)
	}
	if p.Coupon == nil || *p.Coupon != model.CouponOnlineStore {
		t.Errorf("coupon descriptor = %v, want %s", p.Coupon, model.CouponOnlineStore)
	}
}

func TestSettleCouponClampsAtZero(t *testing.T) {
	f := newFixture(t)
	drink := f.mustMenu(t, "beer", 500, 10, model.CategoryDrink)
	_, _, err := f.st.SubmitOrder(f.session.ID, []OrderLine{{MenuID: drink.ID, Quantity: 1}}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	p, err := f.st.Settle(SettleInput{
		SessionID:              f.session.ID,
		Method:                 model.MethodCash,
		ApplyCouponOnlineStore: true,
	})
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if p.TotalAmount != 0 {
		t.Errorf("total = %d, want 0", p.TotalAmount)
	}
}

func TestSettleUsesCurrentPrices(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	_, _, err := f.st.SubmitOrder(f.session.ID, []OrderLine{{MenuID: beer.ID, Quantity: 1}}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	raised := 800
	if _, err := f.st.UpdateMenu(beer.ID, MenuPatch{UnitPrice: &raised}); err != nil {
		t.Fatalf("UpdateMenu: %v", err)
	}
	p, err := f.st.Settle(SettleInput{SessionID: f.session.ID, Method: model.MethodCash})
	if err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if p.TotalAmount != 800 {
		t.Errorf("total = %d, want the raised price 800", p.TotalAmount)
	}
}

func TestConcurrentDisjointSettles(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	_, items, err := f.st.SubmitOrder(f.session.ID, []OrderLine{{MenuID: beer.ID, Quantity: 2}}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, id := range []string{items[0].ID, items[1].ID} {
		wg.Add(1)
		go func(itemID string) {
			defer wg.Done()
			_, err := f.st.Settle(SettleInput{
				SessionID:    f.session.ID,
				Method:       model.MethodCash,
				OrderItemIDs: []string{itemID},
			})
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent settle: %v", err)
		}
	}
	if got := len(f.st.ListPayments("")); got != 2 {
		t.Errorf("%d payments recorded, want 2", got)
	}
	// whichever settle ran second saw an empty unpaid set and closed the session
	if _, ok := f.st.FindOpenSession(f.table.ID, f.event.ID); ok {
		t.Errorf("session still open after both halves paid")
	}
}
