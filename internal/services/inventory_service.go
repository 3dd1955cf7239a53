package services

import (
	"errors"
	"fmt"
	"time"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
	"haveli_pos_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest inserts a new raw-store item.
type CreateInventoryItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Quantity     decimal.Decimal `json:"qty"`
	UnitLabel    string          `json:"unit" binding:"required"`
	MinThreshold decimal.Decimal `json:"min"`
}

// InventoryService tracks the restaurant's consumable stock across the two
// tiers and keeps the audit ledger: every mutation appends exactly one log
// entry with its delta and reason.
type InventoryService interface {
	ListTier(tier models.InventoryTier) ([]models.InventoryItem, error)
	Create(tier models.InventoryTier, req CreateInventoryItemRequest) (*models.InventoryItem, error)
	TopUp(tier models.InventoryTier, itemID string, amount decimal.Decimal) (*models.InventoryItem, error)
	Transfer(sourceTier models.InventoryTier, itemID string, amount decimal.Decimal) error
	Deduct(tier models.InventoryTier, itemID string, amount decimal.Decimal, details string) (*models.InventoryItem, error)
	// DeductByName is the order-fulfilment hook: it floors at zero, never
	// fails, and is a no-op when no item matches the name.
	DeductByName(tier models.InventoryTier, name string, amount decimal.Decimal, details string)
	History(tier models.InventoryTier, itemID string) ([]models.InventoryLog, error)
	LowStock() []models.InventoryItem
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(ir repositories.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: ir}
}

func (s *inventoryService) ListTier(tier models.InventoryTier) ([]models.InventoryItem, error) {
	if !models.ValidInventoryTier(tier) {
		return nil, fmt.Errorf("%w: unknown inventory tier %q", ErrValidation, tier)
	}
	return s.inventoryRepo.ListTier(tier), nil
}

func (s *inventoryService) Create(tier models.InventoryTier, req CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if !models.ValidInventoryTier(tier) {
		return nil, fmt.Errorf("%w: unknown inventory tier %q", ErrValidation, tier)
	}
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: inventory item name must not be empty", ErrValidation)
	}
	if req.Quantity.IsNegative() {
		return nil, fmt.Errorf("%w: initial quantity must be >= 0", ErrValidation)
	}
	item := models.InventoryItem{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Quantity:     req.Quantity.Round(2),
		UnitLabel:    req.UnitLabel,
		MinThreshold: req.MinThreshold,
		History: []models.InventoryLog{{
			At:      time.Now(),
			Action:  models.ActionCreate,
			Amount:  req.Quantity,
			Details: "Initial stock",
		}},
	}
	s.inventoryRepo.Insert(tier, item)
	return &item, nil
}

func (s *inventoryService) TopUp(tier models.InventoryTier, itemID string, amount decimal.Decimal) (*models.InventoryItem, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: top-up amount must be > 0", ErrValidation)
	}
	item, err := s.inventoryRepo.GetItem(tier, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: inventory item %s", ErrItemNotFound, itemID)
	}
	item.Quantity = item.Quantity.Add(amount).Round(2)
	item.History = prependLog(item.History, models.InventoryLog{
		At:      time.Now(),
		Action:  models.ActionTopUp,
		Amount:  amount,
		Details: "Manual top-up",
	})
	if err := s.inventoryRepo.Update(tier, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Transfer debits the source tier and credits the item with the same name
// in the other tier, creating it there if absent. Validation happens before
// any write, so a rejected transfer leaves both tiers untouched.
func (s *inventoryService) Transfer(sourceTier models.InventoryTier, itemID string, amount decimal.Decimal) error {
	if !models.ValidInventoryTier(sourceTier) {
		return fmt.Errorf("%w: unknown inventory tier %q", ErrValidation, sourceTier)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: transfer amount must be > 0", ErrValidation)
	}
	source, err := s.inventoryRepo.GetItem(sourceTier, itemID)
	if err != nil {
		return fmt.Errorf("%w: inventory item %s", ErrItemNotFound, itemID)
	}
	if amount.GreaterThan(source.Quantity) {
		return fmt.Errorf("%w: %s has %s %s, requested %s", ErrInsufficientStock,
			source.Name, source.Quantity.String(), source.UnitLabel, amount.String())
	}

	targetTier := sourceTier.Other()
	now := time.Now()

	source.Quantity = source.Quantity.Sub(amount).Round(2)
	source.History = prependLog(source.History, models.InventoryLog{
		At:      now,
		Action:  models.ActionTransferOut,
		Amount:  amount,
		Details: fmt.Sprintf("Moved to %s", targetTier),
	})

	target, found := s.inventoryRepo.FindByName(targetTier, source.Name)
	if found {
		target.Quantity = target.Quantity.Add(amount).Round(2)
	} else {
		target = models.InventoryItem{
			ID:           uuid.NewString(),
			Name:         source.Name,
			Quantity:     amount.Round(2),
			UnitLabel:    source.UnitLabel,
			MinThreshold: source.MinThreshold,
		}
	}
	target.History = prependLog(target.History, models.InventoryLog{
		At:      now,
		Action:  models.ActionTransferIn,
		Amount:  amount,
		Details: fmt.Sprintf("Received from %s", sourceTier),
	})

	return s.inventoryRepo.CommitTransfer(sourceTier, source, targetTier, target, !found)
}

func (s *inventoryService) Deduct(tier models.InventoryTier, itemID string, amount decimal.Decimal, details string) (*models.InventoryItem, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: deduction amount must be > 0", ErrValidation)
	}
	item, err := s.inventoryRepo.GetItem(tier, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: inventory item %s", ErrItemNotFound, itemID)
	}
	next := item.Quantity.Sub(amount).Round(2)
	if next.IsNegative() {
		next = decimal.Zero
	}
	item.Quantity = next
	item.History = prependLog(item.History, models.InventoryLog{
		At:      time.Now(),
		Action:  models.ActionUsed,
		Amount:  amount,
		Details: details,
	})
	if err := s.inventoryRepo.Update(tier, item); err != nil {
		return nil, err
	}
	if item.LowStock() {
		utils.LogInfo("Inventory low", map[string]interface{}{
			"tier": tier, "item": item.Name, "qty": item.Quantity.String(),
		})
	}
	return &item, nil
}

func (s *inventoryService) DeductByName(tier models.InventoryTier, name string, amount decimal.Decimal, details string) {
	item, found := s.inventoryRepo.FindByName(tier, name)
	if !found {
		return
	}
	if _, err := s.Deduct(tier, item.ID, amount, details); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		utils.LogError(err, "Inventory deduction on fulfilment failed")
	}
}

func (s *inventoryService) History(tier models.InventoryTier, itemID string) ([]models.InventoryLog, error) {
	item, err := s.inventoryRepo.GetItem(tier, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: inventory item %s", ErrItemNotFound, itemID)
	}
	return item.History, nil
}

func (s *inventoryService) LowStock() []models.InventoryItem {
	var low []models.InventoryItem
	for _, tier := range []models.InventoryTier{models.TierRaw, models.TierKitchen} {
		for _, it := range s.inventoryRepo.ListTier(tier) {
			if it.LowStock() {
				low = append(low, it)
			}
		}
	}
	return low
}

func prependLog(history []models.InventoryLog, entry models.InventoryLog) []models.InventoryLog {
	return append([]models.InventoryLog{entry}, history...)
}
