package repositories

import (
	"strings"
	"sync"

	"haveli_pos_backend/internal/models"
)

// InventoryRepository stores the restaurant's two inventory tiers under a
// single lock so a transfer's debit and credit commit together. Reads
// return deep copies including the ledger.
type InventoryRepository interface {
	ListTier(tier models.InventoryTier) []models.InventoryItem
	GetItem(tier models.InventoryTier, itemID string) (models.InventoryItem, error)
	// FindByName matches case-insensitively within a tier.
	FindByName(tier models.InventoryTier, name string) (models.InventoryItem, bool)
	Insert(tier models.InventoryTier, item models.InventoryItem)
	Update(tier models.InventoryTier, item models.InventoryItem) error
	// CommitTransfer writes the debited source and the credited target in
	// one critical section. insertTarget creates the target item instead of
	// updating it.
	CommitTransfer(sourceTier models.InventoryTier, source models.InventoryItem,
		targetTier models.InventoryTier, target models.InventoryItem, insertTarget bool) error
}

type inventoryRepository struct {
	mu    sync.RWMutex
	tiers map[models.InventoryTier][]models.InventoryItem
}

// NewInventoryRepository creates an empty two-tier inventory store.
func NewInventoryRepository() InventoryRepository {
	return &inventoryRepository{
		tiers: map[models.InventoryTier][]models.InventoryItem{
			models.TierRaw:     {},
			models.TierKitchen: {},
		},
	}
}

func (r *inventoryRepository) ListTier(tier models.InventoryTier) []models.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.tiers[tier]
	out := make([]models.InventoryItem, len(stored))
	for i, it := range stored {
		out[i] = models.CloneInventoryItem(it)
	}
	return out
}

func (r *inventoryRepository) GetItem(tier models.InventoryTier, itemID string) (models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.tiers[tier] {
		if it.ID == itemID {
			return models.CloneInventoryItem(it), nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

func (r *inventoryRepository) FindByName(tier models.InventoryTier, name string) (models.InventoryItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.tiers[tier] {
		if strings.EqualFold(it.Name, name) {
			return models.CloneInventoryItem(it), true
		}
	}
	return models.InventoryItem{}, false
}

func (r *inventoryRepository) Insert(tier models.InventoryTier, item models.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first, matching how the store room screen lists fresh items.
	r.tiers[tier] = append([]models.InventoryItem{models.CloneInventoryItem(item)}, r.tiers[tier]...)
}

func (r *inventoryRepository) Update(tier models.InventoryTier, item models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateLocked(tier, item)
}

func (r *inventoryRepository) updateLocked(tier models.InventoryTier, item models.InventoryItem) error {
	for i, it := range r.tiers[tier] {
		if it.ID == item.ID {
			r.tiers[tier][i] = models.CloneInventoryItem(item)
			return nil
		}
	}
	return ErrNotFound
}

func (r *inventoryRepository) CommitTransfer(sourceTier models.InventoryTier, source models.InventoryItem,
	targetTier models.InventoryTier, target models.InventoryItem, insertTarget bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.updateLocked(sourceTier, source); err != nil {
		return err
	}
	if insertTarget {
		r.tiers[targetTier] = append([]models.InventoryItem{models.CloneInventoryItem(target)}, r.tiers[targetTier]...)
		return nil
	}
	return r.updateLocked(targetTier, target)
}
