package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

func TestReserveAllOrNothing(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	fries := f.mustMenu(t, "fries", 500, 2, model.CategoryFood)

	err := f.st.Reserve([]StockRequest{
		{MenuID: beer.ID, Count: 3},
		{MenuID: fries.ID, Count: 5}, // short by three
	})
	if !errors.Is(err, ErrStockUnavailable) {
		t.Fatalf("Reserve() error = %v, want ErrStockUnavailable", err)
	}
	// nothing was decremented, including the entry that would have passed
	if got := f.stockOf(t, beer.ID); got != 10 {
		t.Errorf("beer stock = %d, want 10", got)
	}
	if got := f.stockOf(t, fries.ID); got != 2 {
		t.Errorf("fries stock = %d, want 2", got)
	}
}

func TestReserveExactStockThenFail(t *testing.T) {
	f := newFixture(t)
	m := f.mustMenu(t, "beer", 600, 5, model.CategoryDrink)

	if err := f.st.Reserve([]StockRequest{{MenuID: m.ID, Count: 5}}); err != nil {
		t.Fatalf("Reserve(5 of 5): %v", err)
	}
	if got := f.stockOf(t, m.ID); got != 0 {
		t.Fatalf("stock after full reservation = %d, want 0", got)
	}
	if err := f.st.Reserve([]StockRequest{{MenuID: m.ID, Count: 1}}); !errors.Is(err, ErrStockUnavailable) {
		t.Fatalf("Reserve on empty stock error = %v, want ErrStockUnavailable", err)
	}
	if got := f.stockOf(t, m.ID); got != 0 {
		t.Errorf("stock after failed reservation = %d, want 0", got)
	}
}

func TestReserveRejectsHiddenAndUnknownMenus(t *testing.T) {
	f := newFixture(t)
	m := f.mustMenu(t, "beer", 600, 5, model.CategoryDrink)
	if _, err := f.st.HideMenu(m.ID); err != nil {
		t.Fatalf("HideMenu: %v", err)
	}

	tests := []struct {
		name   string
		menuID string
	}{
		{"hidden menu", m.ID},
		{"unknown menu", "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.st.Reserve([]StockRequest{{MenuID: tt.menuID, Count: 1}})
			if !errors.Is(err, ErrStockUnavailable) {
				t.Errorf("Reserve() error = %v, want ErrStockUnavailable", err)
			}
		})
	}
}

// Release is deliberately uncapped and unpaired: double releases push
// the counter past its nominal limit, which doubles as the manual
// stock-correction path.
func TestReleaseIsUncapped(t *testing.T) {
	f := newFixture(t)
	m := f.mustMenu(t, "beer", 600, 5, model.CategoryDrink)

	f.st.Release([]StockRequest{{MenuID: m.ID, Count: 3}})
	f.st.Release([]StockRequest{{MenuID: m.ID, Count: 3}})
	if got := f.stockOf(t, m.ID); got != 11 {
		t.Errorf("stock after double release = %d, want 11", got)
	}
	// unknown menus are skipped, not an error
	f.st.Release([]StockRequest{{MenuID: "nope", Count: 1}})
}

func TestConcurrentReservationsNeverOversell(t *testing.T) {
	f := newFixture(t)
	m := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)

	const workers = 20
	var wg sync.WaitGroup
	succeeded := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.st.Reserve([]StockRequest{{MenuID: m.ID, Count: 1}}); err == nil {
				succeeded <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(succeeded)

	wins := 0
	for range succeeded {
		wins++
	}
	if wins != 10 {
		t.Errorf("%d reservations succeeded, want exactly 10", wins)
	}
	if got := f.stockOf(t, m.ID); got != 0 {
		t.Errorf("stock after concurrent reservations = %d, want 0", got)
	}
}
