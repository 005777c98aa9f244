package services

import (
	"testing"

	"github.com/dennxbot/food-ordering-system-sub000/pkg/cache"
	"github.com/dennxbot/food-ordering-system-sub000/repository"

	"gorm.io/gorm"
)

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		cache.New(0),
	), db
}

func TestAddLineConsolidatesSameIdentity(t *testing.T) {
	svc, db := newCartService(t)
	rest, pizza, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	add := &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 2}
	if err := svc.AddLine(cust.ID, add); err != nil {
		t.Fatalf("first add: %v", err)
	}
	add.Qty = 3
	if err := svc.AddLine(cust.ID, add); err != nil {
		t.Fatalf("second add: %v", err)
	}

	view, err := svc.Get(cust.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(view.Cart.Items) != 1 {
		t.Fatalf("expected 1 consolidated line, got %d", len(view.Cart.Items))
	}
	line := view.Cart.Items[0]
	if line.Qty != 5 {
		t.Errorf("expected summed qty 5, got %d", line.Qty)
	}
	if line.Total != 5*1000 {
		t.Errorf("expected total 5000, got %d", line.Total)
	}
	if view.Subtotal != 5000 || view.Count != 5 {
		t.Errorf("aggregates: subtotal=%d count=%d", view.Subtotal, view.Count)
	}
}

func TestAddLineDistinctSizesStayDistinct(t *testing.T) {
	svc, db := newCartService(t)
	rest, pizza, large, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	// item A (1000) x2, then item A with size +300 x1: two lines, 3300 total
	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 2}); err != nil {
		t.Fatalf("add base: %v", err)
	}
	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, SizeID: large.ID, Qty: 1}); err != nil {
		t.Fatalf("add sized: %v", err)
	}

	view, err := svc.Get(cust.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(view.Cart.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Cart.Items))
	}
	if view.Subtotal != 1000*2+1300 {
		t.Errorf("expected subtotal 3300, got %d", view.Subtotal)
	}
	if view.Count != 3 {
		t.Errorf("expected count 3, got %d", view.Count)
	}
}

func TestAddLineKeepsAddTimePrice(t *testing.T) {
	svc, db := newCartService(t)
	rest, pizza, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// catalog price changes after the line exists
	if err := db.Model(&pizza).Update("price", 9999).Error; err != nil {
		t.Fatalf("reprice: %v", err)
	}
	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 1}); err != nil {
		t.Fatalf("add after reprice: %v", err)
	}

	view, err := svc.Get(cust.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	line := view.Cart.Items[0]
	if line.UnitPrice != 1000 || line.Total != 2000 {
		t.Errorf("line keeps the add-time price: unit=%d total=%d", line.UnitPrice, line.Total)
	}
}

func TestAddLineNoteReplacesOnlyWhenProvided(t *testing.T) {
	svc, db := newCartService(t)
	rest, pizza, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 1, Note: "no onions"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 1}); err != nil {
		t.Fatalf("add without note: %v", err)
	}
	view, _ := svc.Get(cust.ID)
	if view.Cart.Items[0].Note != "no onions" {
		t.Errorf("empty note should keep the old one, got %q", view.Cart.Items[0].Note)
	}

	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 1, Note: "extra cheese"}); err != nil {
		t.Fatalf("add with note: %v", err)
	}
	view, _ = svc.Get(cust.ID)
	if view.Cart.Items[0].Note != "extra cheese" {
		t.Errorf("provided note should replace, got %q", view.Cart.Items[0].Note)
	}
}

func TestUpdateQtyZeroRemovesLine(t *testing.T) {
	svc, db := newCartService(t)
	rest, pizza, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, _ := svc.Get(cust.ID)
	itemID := view.Cart.Items[0].ID

	if err := svc.UpdateQty(cust.ID, itemID, 0); err != nil {
		t.Fatalf("update qty to 0: %v", err)
	}

	view, err := svc.Get(cust.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(view.Cart.Items) != 0 {
		t.Fatalf("expected line removed, got %d lines", len(view.Cart.Items))
	}
	if view.Subtotal != 0 || view.Count != 0 {
		t.Errorf("aggregates after removal: subtotal=%d count=%d", view.Subtotal, view.Count)
	}
}

func TestUpdateQtyRecomputesTotals(t *testing.T) {
	svc, db := newCartService(t)
	rest, _, _, tea := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: tea.ID, Qty: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	view, _ := svc.Get(cust.ID)
	itemID := view.Cart.Items[0].ID

	if err := svc.UpdateQty(cust.ID, itemID, 4); err != nil {
		t.Fatalf("update qty: %v", err)
	}
	view, _ = svc.Get(cust.ID)
	if view.Cart.Items[0].Total != 4*250 {
		t.Errorf("expected line total 1000, got %d", view.Cart.Items[0].Total)
	}
	if view.Subtotal != 1000 || view.Count != 4 {
		t.Errorf("aggregates: subtotal=%d count=%d", view.Subtotal, view.Count)
	}
}

func TestClearResetsTotals(t *testing.T) {
	svc, db := newCartService(t)
	rest, pizza, large, tea := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	svcAdds := []*AddLineIn{
		{RestaurantID: rest.ID, FoodItemID: pizza.ID, SizeID: large.ID, Qty: 2},
		{RestaurantID: rest.ID, FoodItemID: tea.ID, Qty: 1},
	}
	for _, in := range svcAdds {
		if err := svc.AddLine(cust.ID, in); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	if err := svc.Clear(cust.ID); err != nil {
		t.Fatalf("clear: %v", err)
	}

	view, err := svc.Get(cust.ID)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if view.Subtotal != 0 || view.Count != 0 || len(view.Cart.Items) != 0 {
		t.Errorf("expected empty cart, got subtotal=%d count=%d lines=%d",
			view.Subtotal, view.Count, len(view.Cart.Items))
	}
	// an emptied cart unlocks and can take another restaurant
	if view.Cart.RestaurantID != 0 {
		t.Errorf("expected restaurant lock reset, got %d", view.Cart.RestaurantID)
	}
}

func TestAddLineRejectsSecondRestaurant(t *testing.T) {
	svc, db := newCartService(t)
	rest, pizza, _, _ := seedCatalog(t, db)
	cust := seedCustomer(t, db)

	if err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID, FoodItemID: pizza.ID, Qty: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := svc.AddLine(cust.ID, &AddLineIn{RestaurantID: rest.ID + 99, FoodItemID: pizza.ID, Qty: 1})
	if err == nil {
		t.Fatal("expected cross-restaurant add to fail")
	}
}
