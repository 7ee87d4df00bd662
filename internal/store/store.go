package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-order-hub/internal/model"
)

// Broadcast event types recognized by connected observers.  Every
// meaningful state change publishes exactly one of these; observers
// never need to poll.
const (
	EventOrdersCreated     = "orders.created"
	EventOrderItemsUpdated = "orderItems.updated"
	EventOrderItemsDeleted = "orderItems.deleted"
	EventMenusUpdated      = "menus.updated"
	EventPaymentsCreated   = "payments.created"
	EventEventsUpdated     = "events.updated"
)

// Broadcaster receives typed notifications whenever store state changes
// meaningfully.  Implementations must never block: publishing happens
// inside the store's critical section so that the notification order
// matches the order in which mutations completed.
type Broadcaster interface {
	Publish(eventType string, payload any)
}

// Store is the single owner of all entity records.  All engines are
// methods on it and every mutating method holds mu for its whole
// check-then-mutate sequence.  Read methods also take the lock and
// return value copies, so callers never marshal a record that a
// concurrent mutation is updating.
type Store struct {
	mu sync.Mutex

	events     map[string]*model.Event
	tables     map[string]*model.Table
	menus      map[string]*model.Menu
	sessions   map[string]*model.Session
	orders     map[string]*model.Order
	orderItems map[string]*model.OrderItem
	payments   map[string]*model.Payment

	// insertion-order indexes; map iteration order is not stable and
	// listings promise it
	eventIDs   []string
	menuIDs    []string
	sessionIDs []string
	itemIDs    []string
	paymentIDs []string

	tableUseCounts map[string]int
	settings       model.Settings

	bc Broadcaster
}

// New returns an empty store.  The broadcaster may be nil, in which
// case notifications are silently dropped (useful in tests).  Alert
// settings start at the reference defaults: 10 minutes initial delay,
// 5 minute repeat interval, 3 repeats.
func New(bc Broadcaster) *Store {
	return &Store{
		events:         make(map[string]*model.Event),
		tables:         make(map[string]*model.Table),
		menus:          make(map[string]*model.Menu),
		sessions:       make(map[string]*model.Session),
		orders:         make(map[string]*model.Order),
		orderItems:     make(map[string]*model.OrderItem),
		payments:       make(map[string]*model.Payment),
		tableUseCounts: make(map[string]int),
		settings: model.Settings{
			AlertInitialDelaySec:   600,
			AlertRepeatIntervalSec: 300,
			AlertMaxRepeats:        3,
		},
		bc: bc,
	}
}

// publish forwards a notification to the broadcaster if one is wired.
func (s *Store) publish(eventType string, payload any) {
	if s.bc != nil {
		s.bc.Publish(eventType, payload)
	}
}

// defaultEventIDLocked returns the first created event's id, the
// fallback used when a request does not name an event.
func (s *Store) defaultEventIDLocked() string {
	if len(s.eventIDs) == 0 {
		return ""
	}
	return s.eventIDs[0]
}

// --- events ---

// CreateEvent registers a new business day and broadcasts the updated
// event list.  An empty name or date falls back to a generic name and
// today's date.
func (s *Store) CreateEvent(name, date string) model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(name) == "" {
		name = "service day"
	}
	if strings.TrimSpace(date) == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}
	ev := &model.Event{ID: uuid.NewString(), Name: name, Date: date}
	s.events[ev.ID] = ev
	s.eventIDs = append(s.eventIDs, ev.ID)
	s.publish(EventEventsUpdated, s.listEventsLocked())
	return *ev
}

// ListEvents returns all events in creation order.
func (s *Store) ListEvents() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listEventsLocked()
}

func (s *Store) listEventsLocked() []model.Event {
	out := make([]model.Event, 0, len(s.eventIDs))
	for _, id := range s.eventIDs {
		out = append(out, *s.events[id])
	}
	return out
}

// --- tables ---

// CreateTable registers a table.  The label is required.
func (s *Store) CreateTable(label string) (model.Table, error) {
	if strings.TrimSpace(label) == "" {
		return model.Table{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &model.Table{ID: uuid.NewString(), Label: label, Enabled: true}
	s.tables[t.ID] = t
	return *t, nil
}

// TablePatch carries the updatable table attributes; nil fields are
// left untouched.
type TablePatch struct {
	Label   *string `json:"label"`
	Enabled *bool   `json:"enabled"`
}

// UpdateTable merges a partial patch into a table.
func (s *Store) UpdateTable(id string, patch TablePatch) (model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[id]
	if !ok {
		return model.Table{}, ErrNotFound
	}
	if patch.Label != nil {
		t.Label = *patch.Label
	}
	if patch.Enabled != nil {
		t.Enabled = *patch.Enabled
	}
	return *t, nil
}

// DeleteTable removes a table permanently.  Table deletion is the one
// destructive admin operation; sessions that reference the table keep
// their copied display id and remain valid.
func (s *Store) DeleteTable(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[id]; !ok {
		return ErrNotFound
	}
	delete(s.tables, id)
	return nil
}

// ListTables returns all tables sorted by label for a stable admin view.
func (s *Store) ListTables() []model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Table, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// --- menus ---

// MenuInput carries the fields accepted when creating a menu.
type MenuInput struct {
	Name         string              `json:"name"`
	UnitPrice    int                 `json:"unitPrice"`
	StockLimit   int                 `json:"stockLimit"`
	Visible      *bool               `json:"visible"`
	Category     string              `json:"category"`
	OptionGroups []model.OptionGroup `json:"optionGroups"`
	EventID      string              `json:"eventId"`
}

// CreateMenu validates and stores a new menu, then broadcasts the
// visible menu list of its event.
func (s *Store) CreateMenu(in MenuInput) (model.Menu, error) {
	if strings.TrimSpace(in.Name) == "" || in.UnitPrice <= 0 || in.StockLimit < 0 {
		return model.Menu{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	eventID := in.EventID
	if eventID == "" {
		eventID = s.defaultEventIDLocked()
	}
	visible := true
	if in.Visible != nil {
		visible = *in.Visible
	}
	m := &model.Menu{
		ID:           uuid.NewString(),
		Name:         in.Name,
		UnitPrice:    in.UnitPrice,
		StockLimit:   in.StockLimit,
		Category:     in.Category,
		Visible:      visible,
		OptionGroups: cloneOptionGroups(in.OptionGroups),
		EventID:      eventID,
	}
	s.menus[m.ID] = m
	s.menuIDs = append(s.menuIDs, m.ID)
	s.publish(EventMenusUpdated, s.listVisibleMenusLocked(eventID))
	return cloneMenu(m), nil
}

// MenuPatch carries the updatable menu attributes; nil fields are left
// untouched.  StockLimit is intentionally absent: stock is mutated only
// by the stock ledger.
type MenuPatch struct {
	Name         *string              `json:"name"`
	UnitPrice    *int                 `json:"unitPrice"`
	Category     *string              `json:"category"`
	Visible      *bool                `json:"visible"`
	OptionGroups *[]model.OptionGroup `json:"optionGroups"`
}

// UpdateMenu merges a partial patch into a menu and broadcasts the
// updated visible list.  Price changes retroactively affect any items
// not yet settled; the payment engine always totals at current prices.
func (s *Store) UpdateMenu(id string, patch MenuPatch) (model.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.menus[id]
	if !ok {
		return model.Menu{}, ErrNotFound
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return model.Menu{}, ErrInvalidInput
		}
		m.Name = *patch.Name
	}
	if patch.UnitPrice != nil {
		if *patch.UnitPrice <= 0 {
			return model.Menu{}, ErrInvalidInput
		}
		m.UnitPrice = *patch.UnitPrice
	}
	if patch.Category != nil {
		m.Category = *patch.Category
	}
	if patch.Visible != nil {
		m.Visible = *patch.Visible
	}
	if patch.OptionGroups != nil {
		m.OptionGroups = cloneOptionGroups(*patch.OptionGroups)
	}
	s.publish(EventMenusUpdated, s.listVisibleMenusLocked(m.EventID))
	return cloneMenu(m), nil
}

// HideMenu realizes admin-surface deletion as visible = false so that
// existing order items keep a valid menu reference.
func (s *Store) HideMenu(id string) (model.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.menus[id]
	if !ok {
		return model.Menu{}, ErrNotFound
	}
	m.Visible = false
	s.publish(EventMenusUpdated, s.listVisibleMenusLocked(m.EventID))
	return cloneMenu(m), nil
}

// ListVisibleMenus returns visible menus in insertion order, optionally
// filtered by event.
func (s *Store) ListVisibleMenus(eventID string) []model.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listVisibleMenusLocked(eventID)
}

func (s *Store) listVisibleMenusLocked(eventID string) []model.Menu {
	out := make([]model.Menu, 0, len(s.menuIDs))
	for _, id := range s.menuIDs {
		m := s.menus[id]
		if !m.Visible {
			continue
		}
		if eventID != "" && m.EventID != eventID {
			continue
		}
		out = append(out, cloneMenu(m))
	}
	return out
}

// CloneMenus copies every menu of the source event into the target
// event, preserving prices, stock limits and option groups.  It returns
// the number of menus copied.
func (s *Store) CloneMenus(targetEventID, fromEventID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[targetEventID]; !ok {
		return 0, ErrNotFound
	}
	if _, ok := s.events[fromEventID]; !ok {
		return 0, ErrNotFound
	}
	count := 0
	for _, id := range append([]string(nil), s.menuIDs...) {
		src := s.menus[id]
		if src.EventID != fromEventID {
			continue
		}
		cp := cloneMenu(src)
		cp.ID = uuid.NewString()
		cp.EventID = targetEventID
		s.menus[cp.ID] = &cp
		s.menuIDs = append(s.menuIDs, cp.ID)
		count++
	}
	s.publish(EventMenusUpdated, s.listVisibleMenusLocked(targetEventID))
	return count, nil
}

// --- settings ---

// Settings returns the alert settings singleton.
func (s *Store) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SettingsPatch carries the updatable alert settings; nil fields are
// left untouched.
type SettingsPatch struct {
	AlertInitialDelaySec   *int `json:"alertInitialDelaySec"`
	AlertRepeatIntervalSec *int `json:"alertRepeatIntervalSec"`
	AlertMaxRepeats        *int `json:"alertMaxRepeats"`
}

// UpdateSettings merges a partial patch into the settings singleton.
func (s *Store) UpdateSettings(patch SettingsPatch) model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.AlertInitialDelaySec != nil {
		s.settings.AlertInitialDelaySec = *patch.AlertInitialDelaySec
	}
	if patch.AlertRepeatIntervalSec != nil {
		s.settings.AlertRepeatIntervalSec = *patch.AlertRepeatIntervalSec
	}
	if patch.AlertMaxRepeats != nil {
		s.settings.AlertMaxRepeats = *patch.AlertMaxRepeats
	}
	return s.settings
}

// --- copies ---

func cloneMenu(m *model.Menu) model.Menu {
	cp := *m
	cp.OptionGroups = cloneOptionGroups(m.OptionGroups)
	return cp
}

func cloneOptionGroups(groups []model.OptionGroup) []model.OptionGroup {
	if groups == nil {
		return []model.OptionGroup{}
	}
	out := make([]model.OptionGroup, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].Options = append([]model.Option(nil), g.Options...)
	}
	return out
}

func cloneItem(it *model.OrderItem) model.OrderItem {
	cp := *it
	cp.OptionSelections = make(map[string]string, len(it.OptionSelections))
	for k, v := range it.OptionSelections {
		cp.OptionSelections[k] = v
	}
	cp.StatusTimestamps = make(map[string]time.Time, len(it.StatusTimestamps))
	for k, v := range it.StatusTimestamps {
		cp.StatusTimestamps[k] = v
	}
	if it.PaymentID != nil {
		pid := *it.PaymentID
		cp.PaymentID = &pid
	}
	return cp
}

func cloneSession(sess *model.Session) model.Session {
	cp := *sess
	if sess.ClosedAt != nil {
		t := *sess.ClosedAt
		cp.ClosedAt = &t
	}
	return cp
}

func clonePayment(p *model.Payment) model.Payment {
	cp := *p
	cp.OrderItemIDs = append([]string(nil), p.OrderItemIDs...)
	if p.Coupon != nil {
		c := *p.Coupon
		cp.Coupon = &c
	}
	return cp
}
