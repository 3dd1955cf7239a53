package services

import (
	"errors"
	"testing"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
)

func TestResolveVariantPrice(t *testing.T) {
	item := models.MenuItem{Name: "Old Monk", Price: 100}

	tests := []struct {
		name    string
		variant models.PourSize
		want    float64
	}{
		{"small is base price", models.PourSmall, 100},
		{"double is 2x", models.PourDouble, 200},
		{"triple is 3x", models.PourTriple, 300},
		{"bottle is 12x", models.PourBottle, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveVariantPrice(item, tt.variant)
			if err != nil {
				t.Fatalf("ResolveVariantPrice: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveVariantPriceOverrideWins(t *testing.T) {
	item := models.MenuItem{
		Name:          "Blenders Pride",
		Price:         120,
		VariantPrices: map[models.PourSize]float64{models.PourBottle: 1300},
	}

	got, err := ResolveVariantPrice(item, models.PourBottle)
	if err != nil {
		t.Fatalf("ResolveVariantPrice: %v", err)
	}
	if got != 1300 {
		t.Errorf("override: got %v, want 1300", got)
	}

	// Sizes without an override still derive from the base price.
	got, err = ResolveVariantPrice(item, models.PourDouble)
	if err != nil {
		t.Fatalf("ResolveVariantPrice: %v", err)
	}
	if got != 240 {
		t.Errorf("derived: got %v, want 240", got)
	}
}

func TestResolveVariantPriceUnknownSize(t *testing.T) {
	_, err := ResolveVariantPrice(models.MenuItem{Price: 100}, models.PourSize("120ml"))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestUpsertItemAssignsIDAndUnit(t *testing.T) {
	svc := NewCatalogService(repositories.NewCatalogRepository())

	saved, err := svc.UpsertItem(models.UnitRestaurant, models.MenuItem{
		Name:  "Dal Tadka",
		Price: 180,
		Unit:  models.UnitBar, // client-sent unit is ignored
	})
	if err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected an assigned id")
	}
	if saved.Unit != models.UnitRestaurant {
		t.Errorf("unit forced to path unit: got %q", saved.Unit)
	}
}

func TestSetAvailabilityRetiresWithoutDelete(t *testing.T) {
	repo := repositories.NewCatalogRepository()
	svc := NewCatalogService(repo)

	saved, err := svc.UpsertItem(models.UnitRestaurant, models.MenuItem{
		Name: "Paneer Tikka", Price: 220, IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("UpsertItem: %v", err)
	}

	retired, err := svc.SetAvailability(models.UnitRestaurant, saved.ID, false)
	if err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if retired.IsAvailable {
		t.Error("item should be marked unavailable")
	}

	// The item stays on the menu; there is no delete path.
	menu, err := svc.GetMenu(models.UnitRestaurant)
	if err != nil {
		t.Fatalf("GetMenu: %v", err)
	}
	if len(menu) != 1 {
		t.Fatalf("menu length: got %d, want 1", len(menu))
	}
}

func TestGetMenuRejectsAdminUnit(t *testing.T) {
	svc := NewCatalogService(repositories.NewCatalogRepository())
	if _, err := svc.GetMenu(models.UnitAdmin); !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}
