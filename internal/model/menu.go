package model

// Menu categories.  The coupon rule in the payment engine discounts the
// most expensive drink and the most expensive food of a settlement, so
// the category of a menu is load-bearing, not just cosmetic.
const (
	CategoryDrink = "drink"
	CategoryFood  = "food"
	CategoryOther = "other"
)

// Option is one selectable choice inside an option group, e.g. "iced"
// or "hot" for a coffee.  Extra is an additional charge in the minor
// currency unit (unused by the reference menus but carried on the wire).
type Option struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Extra int    `json:"extra"`
}

// OptionGroup is an ordered group of options attached to a menu.
//
// Fields:
//  ID        – group identifier, unique within the menu.
//  Name      – display name, e.g. "temperature".
//  Required  – whether a selection must be made when ordering.
//  MaxSelect – maximum number of options selectable from this group.
//  Options   – the selectable choices, in display order.
type OptionGroup struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Required  bool     `json:"required"`
	MaxSelect int      `json:"maxSelect"`
	Options   []Option `json:"options"`
}

// Menu is a sellable item scoped to an event.  StockLimit is the live
// stock counter: it is decremented by the stock ledger on reservation
// and incremented on release, and is never mutated anywhere else.
// "Deleting" a menu from the admin surface is always realized as
// Visible = false so that existing order items keep a valid reference.
//
// Fields:
//  ID           – opaque unique identifier.
//  Name         – display name.
//  UnitPrice    – price per unit in the minor currency unit (positive).
//  StockLimit   – remaining reservable stock (non-negative).
//  Category     – one of CategoryDrink, CategoryFood, CategoryOther.
//  Visible      – whether the menu is shown and orderable.
//  OptionGroups – per-unit option groups, in display order.
//  EventID      – owning event.
type Menu struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	UnitPrice    int           `json:"unitPrice"`
	StockLimit   int           `json:"stockLimit"`
	Category     string        `json:"category"`
	Visible      bool          `json:"visible"`
	OptionGroups []OptionGroup `json:"optionGroups"`
	EventID      string        `json:"eventId"`
}
