package services

import (
	"errors"
	"testing"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

func newInventoryFixture(t *testing.T) InventoryService {
	t.Helper()
	return NewInventoryService(repositories.NewInventoryRepository())
}

func mustCreate(t *testing.T, svc InventoryService, tier models.InventoryTier, name string, qty, min float64) *models.InventoryItem {
	t.Helper()
	item, err := svc.Create(tier, CreateInventoryItemRequest{
		Name:         name,
		Quantity:     decimal.NewFromFloat(qty),
		UnitLabel:    "kg",
		MinThreshold: decimal.NewFromFloat(min),
	})
	if err != nil {
		t.Fatalf("Create %s: %v", name, err)
	}
	return item
}

func TestCreateWritesAuditEntry(t *testing.T) {
	svc := newInventoryFixture(t)
	item := mustCreate(t, svc, models.TierRaw, "Basmati Rice", 45, 10)

	history, err := svc.History(models.TierRaw, item.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length: got %d, want 1", len(history))
	}
	if history[0].Action != models.ActionCreate {
		t.Errorf("action: got %s, want CREATE", history[0].Action)
	}
}

func TestTopUp(t *testing.T) {
	svc := newInventoryFixture(t)
	item := mustCreate(t, svc, models.TierRaw, "Paneer", 5, 2)

	updated, err := svc.TopUp(models.TierRaw, item.ID, decimal.NewFromFloat(2.5))
	if err != nil {
		t.Fatalf("TopUp: %v", err)
	}
	if !updated.Quantity.Equal(decimal.NewFromFloat(7.5)) {
		t.Errorf("quantity: got %s, want 7.5", updated.Quantity)
	}
	if updated.History[0].Action != models.ActionTopUp {
		t.Errorf("newest entry: got %s, want TOPUP", updated.History[0].Action)
	}

	if _, err := svc.TopUp(models.TierRaw, item.ID, decimal.Zero); !errors.Is(err, ErrValidation) {
		t.Errorf("zero top-up: got %v, want ErrValidation", err)
	}
}

func TestTransferMovesBetweenTiers(t *testing.T) {
	svc := newInventoryFixture(t)
	item := mustCreate(t, svc, models.TierRaw, "Chicken", 20, 5)

	if err := svc.Transfer(models.TierRaw, item.ID, decimal.NewFromInt(8)); err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	raw, _ := svc.ListTier(models.TierRaw)
	if !raw[0].Quantity.Equal(decimal.NewFromInt(12)) {
		t.Errorf("raw after transfer: got %s, want 12", raw[0].Quantity)
	}
	kitchen, _ := svc.ListTier(models.TierKitchen)
	if len(kitchen) != 1 {
		t.Fatalf("kitchen tier: got %d items, want 1", len(kitchen))
	}
	if !kitchen[0].Quantity.Equal(decimal.NewFromInt(8)) {
		t.Errorf("kitchen after transfer: got %s, want 8", kitchen[0].Quantity)
	}
	if kitchen[0].History[0].Action != models.ActionTransferIn {
		t.Errorf("kitchen entry: got %s, want TRANSFER_IN", kitchen[0].History[0].Action)
	}
	if raw[0].History[0].Action != models.ActionTransferOut {
		t.Errorf("raw entry: got %s, want TRANSFER_OUT", raw[0].History[0].Action)
	}
}

func TestTransferCreditsExistingTargetByName(t *testing.T) {
	svc := newInventoryFixture(t)
	item := mustCreate(t, svc, models.TierRaw, "Makhani Gravy", 10, 2)
	mustCreate(t, svc, models.TierKitchen, "makhani gravy", 3, 1) // case differs

	if err := svc.Transfer(models.TierRaw, item.ID, decimal.NewFromInt(4)); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	kitchen, _ := svc.ListTier(models.TierKitchen)
	if len(kitchen) != 1 {
		t.Fatalf("kitchen tier: got %d items, want 1 (matched by name)", len(kitchen))
	}
	if !kitchen[0].Quantity.Equal(decimal.NewFromInt(7)) {
		t.Errorf("kitchen quantity: got %s, want 7", kitchen[0].Quantity)
	}
}

func TestTransferInsufficientLeavesBothTiersUntouched(t *testing.T) {
	svc := newInventoryFixture(t)
	item := mustCreate(t, svc, models.TierRaw, "Ghee", 2, 1)

	err := svc.Transfer(models.TierRaw, item.ID, decimal.NewFromInt(5))
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("got %v, want ErrInsufficientStock", err)
	}

	raw, _ := svc.ListTier(models.TierRaw)
	if !raw[0].Quantity.Equal(decimal.NewFromInt(2)) {
		t.Errorf("raw after rejected transfer: got %s, want 2", raw[0].Quantity)
	}
	if len(raw[0].History) != 1 {
		t.Errorf("raw history: got %d entries, want 1 (no debit logged)", len(raw[0].History))
	}
	kitchen, _ := svc.ListTier(models.TierKitchen)
	if len(kitchen) != 0 {
		t.Errorf("kitchen after rejected transfer: got %d items, want 0", len(kitchen))
	}
}

func TestDeductFloorsAtZero(t *testing.T) {
	svc := newInventoryFixture(t)
	item := mustCreate(t, svc, models.TierKitchen, "Dal Fry", 2, 1)

	updated, err := svc.Deduct(models.TierKitchen, item.ID, decimal.NewFromInt(5), "Order test")
	if err != nil {
		t.Fatalf("Deduct: %v", err)
	}
	if !updated.Quantity.IsZero() {
		t.Errorf("quantity: got %s, want 0", updated.Quantity)
	}
	if updated.History[0].Action != models.ActionUsed {
		t.Errorf("newest entry: got %s, want USED", updated.History[0].Action)
	}
}

func TestDeductByNameMissingIsNoOp(t *testing.T) {
	svc := newInventoryFixture(t)
	// Must not panic or create anything.
	svc.DeductByName(models.TierKitchen, "Unknown Dish", decimal.NewFromInt(1), "Order test")
	kitchen, _ := svc.ListTier(models.TierKitchen)
	if len(kitchen) != 0 {
		t.Errorf("kitchen: got %d items, want 0", len(kitchen))
	}
}

func TestLowStock(t *testing.T) {
	svc := newInventoryFixture(t)
	mustCreate(t, svc, models.TierRaw, "Basmati Rice", 45, 10)
	mustCreate(t, svc, models.TierRaw, "Saffron", 1, 2)       // below threshold
	mustCreate(t, svc, models.TierKitchen, "Tamarind", 3, 3) // at threshold counts

	low := svc.LowStock()
	if len(low) != 2 {
		t.Fatalf("low stock: got %d items, want 2", len(low))
	}
}
