package store

import "github.com/iliyamo/restaurant-order-hub/internal/model"

// SeedDemo loads the demo service day used in development: a default
// event, a small menu board (including the optioned coffee) and two
// enabled tables.  Stock limits are effectively unlimited so manual
// testing never trips the ledger.
func (s *Store) SeedDemo() {
	ev := s.CreateEvent("Demo Event", "")
	menus := []MenuInput{
		{Name: "Draft Beer", UnitPrice: 600, StockLimit: 999999, Category: model.CategoryDrink, EventID: ev.ID},
		{Name: "Highball", UnitPrice: 500, StockLimit: 999999, Category: model.CategoryDrink, EventID: ev.ID},
		{Name: "Fried Chicken", UnitPrice: 700, StockLimit: 999999, Category: model.CategoryFood, EventID: ev.ID},
		{Name: "French Fries", UnitPrice: 500, StockLimit: 999999, Category: model.CategoryFood, EventID: ev.ID},
		{
			Name: "Coffee", UnitPrice: 400, StockLimit: 999999, Category: model.CategoryDrink, EventID: ev.ID,
			OptionGroups: []model.OptionGroup{{
				ID: "temp", Name: "temperature", Required: true, MaxSelect: 1,
				Options: []model.Option{
					{ID: "ice", Name: "iced"},
					{ID: "hot", Name: "hot"},
				},
			}},
		},
	}
	for _, in := range menus {
		_, _ = s.CreateMenu(in)
	}
	_, _ = s.CreateTable("Table 1")
	_, _ = s.CreateTable("Table 2")
}
