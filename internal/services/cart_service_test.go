package services

import (
	"errors"
	"testing"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
)

func newCartFixture(t *testing.T) (CartService, CatalogService) {
	t.Helper()
	catalogRepo := repositories.NewCatalogRepository()
	return NewCartService(repositories.NewCartRepository(), catalogRepo),
		NewCatalogService(catalogRepo)
}

func seedItem(t *testing.T, catalog CatalogService, unit models.BusinessUnit, item models.MenuItem) models.MenuItem {
	t.Helper()
	saved, err := catalog.UpsertItem(unit, item)
	if err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}
	return *saved
}

func TestAddLineMergesSameKey(t *testing.T) {
	carts, catalog := newCartFixture(t)
	item := seedItem(t, catalog, models.UnitRestaurant, models.MenuItem{
		Name: "Butter Chicken", Price: 320, IsAvailable: true,
	})

	if _, err := carts.AddLine(models.UnitRestaurant, "T1", AddLineRequest{ItemID: item.ID, Quantity: 2}); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	cart, err := carts.AddLine(models.UnitRestaurant, "T1", AddLineRequest{ItemID: item.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("lines: got %d, want 1 merged line", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 5 {
		t.Errorf("quantity: got %d, want 5", cart.Lines[0].Quantity)
	}
	if cart.Total() != 1600 {
		t.Errorf("total: got %v, want 1600", cart.Total())
	}
}

func TestAddLineVariantsAreDistinctLines(t *testing.T) {
	carts, catalog := newCartFixture(t)
	item := seedItem(t, catalog, models.UnitBar, models.MenuItem{
		Name: "Old Monk", Price: 100, IsAvailable: true,
	})

	small := models.PourSmall
	double := models.PourDouble
	if _, err := carts.AddLine(models.UnitBar, "C1", AddLineRequest{ItemID: item.ID, Variant: &small}); err != nil {
		t.Fatalf("AddLine small: %v", err)
	}
	cart, err := carts.AddLine(models.UnitBar, "C1", AddLineRequest{ItemID: item.ID, Variant: &double})
	if err != nil {
		t.Fatalf("AddLine double: %v", err)
	}

	if len(cart.Lines) != 2 {
		t.Fatalf("lines: got %d, want 2 distinct variant lines", len(cart.Lines))
	}
	if cart.Lines[0].UnitPrice != 100 || cart.Lines[1].UnitPrice != 200 {
		t.Errorf("variant prices: got %v and %v, want 100 and 200",
			cart.Lines[0].UnitPrice, cart.Lines[1].UnitPrice)
	}
}

func TestAddLineSnapshotsPriceAtAddTime(t *testing.T) {
	carts, catalog := newCartFixture(t)
	item := seedItem(t, catalog, models.UnitRestaurant, models.MenuItem{
		Name: "Masala Papad", Price: 60, IsAvailable: true,
	})

	if _, err := carts.AddLine(models.UnitRestaurant, "T2", AddLineRequest{ItemID: item.ID}); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	item.Price = 90
	if _, err := catalog.UpsertItem(models.UnitRestaurant, item); err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}

	cart, err := carts.GetCart(models.UnitRestaurant, "T2")
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if cart.Lines[0].UnitPrice != 60 {
		t.Errorf("snapshot price: got %v, want 60", cart.Lines[0].UnitPrice)
	}
}

func TestAddLineRejectsUnavailableItem(t *testing.T) {
	carts, catalog := newCartFixture(t)
	item := seedItem(t, catalog, models.UnitRestaurant, models.MenuItem{
		Name: "Seasonal Special", Price: 250, IsAvailable: false,
	})

	if _, err := carts.AddLine(models.UnitRestaurant, "T1", AddLineRequest{ItemID: item.ID}); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("got %v, want ErrItemNotFound", err)
	}
}

func TestRemoveLinePolicies(t *testing.T) {
	carts, catalog := newCartFixture(t)
	item := seedItem(t, catalog, models.UnitRestaurant, models.MenuItem{
		Name: "Jeera Rice", Price: 140, IsAvailable: true,
	})

	if _, err := carts.AddLine(models.UnitRestaurant, "T3", AddLineRequest{ItemID: item.ID, Quantity: 3}); err != nil {
		t.Fatalf("AddLine: %v", err)
	}

	cart, err := carts.RemoveLine(models.UnitRestaurant, "T3", item.ID, models.RemoveDecrement)
	if err != nil {
		t.Fatalf("RemoveLine decrement: %v", err)
	}
	if cart.Lines[0].Quantity != 2 {
		t.Errorf("after decrement: got %d, want 2", cart.Lines[0].Quantity)
	}

	cart, err = carts.RemoveLine(models.UnitRestaurant, "T3", item.ID, models.RemoveDelete)
	if err != nil {
		t.Fatalf("RemoveLine delete: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Errorf("after delete: got %d lines, want 0", len(cart.Lines))
	}
}

func TestRemoveLineDecrementAtOneDeletes(t *testing.T) {
	carts, catalog := newCartFixture(t)
	item := seedItem(t, catalog, models.UnitRestaurant, models.MenuItem{
		Name: "Lassi", Price: 80, IsAvailable: true,
	})

	if _, err := carts.AddLine(models.UnitRestaurant, "T4", AddLineRequest{ItemID: item.ID, Quantity: 1}); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	cart, err := carts.RemoveLine(models.UnitRestaurant, "T4", item.ID, models.RemoveDecrement)
	if err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Errorf("decrement at qty 1: got %d lines, want 0", len(cart.Lines))
	}
}

func TestRemoveLineUnknownKey(t *testing.T) {
	carts, _ := newCartFixture(t)
	if _, err := carts.RemoveLine(models.UnitRestaurant, "T5", "nope", models.RemoveDelete); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("got %v, want ErrItemNotFound", err)
	}
}
