package store

import (
	"sync"
	"testing"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

// recorder captures broadcasts for assertions.
type recorder struct {
	mu     sync.Mutex
	types  []string
	counts map[string]int
}

func newRecorder() *recorder {
	return &recorder{counts: make(map[string]int)}
}

func (r *recorder) Publish(eventType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, eventType)
	r.counts[eventType]++
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = nil
	r.counts = make(map[string]int)
}

// fixture is a store with one event, one enabled table and one open
// session, ready for ordering.
type fixture struct {
	st      *Store
	rec     *recorder
	event   model.Event
	table   model.Table
	session model.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rec := newRecorder()
	st := New(rec)
	ev := st.CreateEvent("test day", "2026-08-30")
	table, err := st.CreateTable("T1")
	if err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	sess, err := st.OpenSession(table.ID, 2, ev.ID)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	return &fixture{st: st, rec: rec, event: ev, table: table, session: sess}
}

func (f *fixture) mustMenu(t *testing.T, name string, price, stock int, category string) model.Menu {
	t.Helper()
	m, err := f.st.CreateMenu(MenuInput{
		Name: name, UnitPrice: price, StockLimit: stock, Category: category, EventID: f.event.ID,
	})
	if err != nil {
		t.Fatalf("CreateMenu(%s): %v", name, err)
	}
	return m
}

func (f *fixture) stockOf(t *testing.T, menuID string) int {
	t.Helper()
	for _, m := range f.st.ListVisibleMenus("") {
		if m.ID == menuID {
			return m.StockLimit
		}
	}
	t.Fatalf("menu %s not visible", menuID)
	return 0
}

func TestCreateMenuValidation(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		in   MenuInput
	}{
		{"missing name", MenuInput{UnitPrice: 500}},
		{"zero price", MenuInput{Name: "beer", UnitPrice: 0}},
		{"negative price", MenuInput{Name: "beer", UnitPrice: -10}},
		{"negative stock", MenuInput{Name: "beer", UnitPrice: 500, StockLimit: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.st.CreateMenu(tt.in); err != ErrInvalidInput {
				t.Errorf("CreateMenu() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestHideMenuIsSoftDelete(t *testing.T) {
	f := newFixture(t)
	m := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)

	if _, err := f.st.HideMenu(m.ID); err != nil {
		t.Fatalf("HideMenu: %v", err)
	}
	for _, v := range f.st.ListVisibleMenus("") {
		if v.ID == m.ID {
			t.Fatalf("hidden menu still listed")
		}
	}
	// the record survives: a patch can bring it back
	visible := true
	back, err := f.st.UpdateMenu(m.ID, MenuPatch{Visible: &visible})
	if err != nil {
		t.Fatalf("UpdateMenu after hide: %v", err)
	}
	if !back.Visible {
		t.Errorf("menu not visible after patch")
	}
}

func TestCloneMenus(t *testing.T) {
	f := newFixture(t)
	f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	f.mustMenu(t, "fries", 500, 10, model.CategoryFood)
	target := f.st.CreateEvent("next day", "2026-08-31")

	count, err := f.st.CloneMenus(target.ID, f.event.ID)
	if err != nil {
		t.Fatalf("CloneMenus: %v", err)
	}
	if count != 2 {
		t.Errorf("cloned %d menus, want 2", count)
	}
	cloned := f.st.ListVisibleMenus(target.ID)
	if len(cloned) != 2 {
		t.Fatalf("target event has %d visible menus, want 2", len(cloned))
	}
	for _, m := range cloned {
		if m.EventID != target.ID {
			t.Errorf("cloned menu carries eventId %s, want %s", m.EventID, target.ID)
		}
	}

	if _, err := f.st.CloneMenus(target.ID, "missing"); err != ErrNotFound {
		t.Errorf("CloneMenus(unknown source) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateSettingsPartial(t *testing.T) {
	f := newFixture(t)
	delay := 120
	got := f.st.UpdateSettings(SettingsPatch{AlertInitialDelaySec: &delay})
	if got.AlertInitialDelaySec != 120 {
		t.Errorf("AlertInitialDelaySec = %d, want 120", got.AlertInitialDelaySec)
	}
	// untouched fields keep their defaults
	if got.AlertRepeatIntervalSec != 300 || got.AlertMaxRepeats != 3 {
		t.Errorf("unpatched settings changed: %+v", got)
	}
}

func TestBroadcastOrderFollowsMutations(t *testing.T) {
	f := newFixture(t)
	beer := f.mustMenu(t, "beer", 600, 10, model.CategoryDrink)
	f.rec.reset()

	_, items, err := f.st.SubmitOrder(f.session.ID, []OrderLine{{MenuID: beer.ID, Quantity: 1}}, "")
	if err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}
	if _, err := f.st.AdvanceItemStatus(items[0].ID, model.StatusPreparing); err != nil {
		t.Fatalf("AdvanceItemStatus: %v", err)
	}
	if _, err := f.st.Settle(SettleInput{SessionID: f.session.ID, Method: model.MethodCash}); err != nil {
		t.Fatalf("Settle: %v", err)
	}

	want := []string{EventOrdersCreated, EventOrderItemsUpdated, EventPaymentsCreated}
	if len(f.rec.types) != len(want) {
		t.Fatalf("broadcast types = %v, want %v", f.rec.types, want)
	}
	for i := range want {
		if f.rec.types[i] != want[i] {
			t.Fatalf("broadcast types = %v, want %v", f.rec.types, want)
		}
	}
}
