package repositories

import (
	"sync"

	"haveli_pos_backend/internal/models"

	"github.com/shopspring/decimal"
)

// CatalogRepository stores each business unit's menu. The external write
// contract is replace-wholesale: callers hand in a full item set (or a full
// item) and never patch stored state in place. Reads return deep copies.
type CatalogRepository interface {
	GetItems(unit models.BusinessUnit) []models.MenuItem
	GetItem(unit models.BusinessUnit, itemID string) (models.MenuItem, error)
	ReplaceItems(unit models.BusinessUnit, items []models.MenuItem)
	UpsertItem(unit models.BusinessUnit, item models.MenuItem)
	// AdjustStock applies a delta to an item's bottle stock, flooring at
	// zero and rounding to two decimals. Items without tracked stock are
	// left untouched.
	AdjustStock(unit models.BusinessUnit, itemID string, delta decimal.Decimal) error
}

type catalogRepository struct {
	mu    sync.RWMutex
	menus map[models.BusinessUnit][]models.MenuItem
}

// NewCatalogRepository creates an empty in-memory catalog store.
func NewCatalogRepository() CatalogRepository {
	return &catalogRepository{
		menus: make(map[models.BusinessUnit][]models.MenuItem),
	}
}

func (r *catalogRepository) GetItems(unit models.BusinessUnit) []models.MenuItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return models.CloneMenuItems(r.menus[unit])
}

func (r *catalogRepository) GetItem(unit models.BusinessUnit, itemID string) (models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.menus[unit] {
		if it.ID == itemID {
			return models.CloneMenuItem(it), nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

func (r *catalogRepository) ReplaceItems(unit models.BusinessUnit, items []models.MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menus[unit] = models.CloneMenuItems(items)
}

func (r *catalogRepository) UpsertItem(unit models.BusinessUnit, item models.MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	menu := r.menus[unit]
	for i, it := range menu {
		if it.ID == item.ID {
			menu[i] = models.CloneMenuItem(item)
			return
		}
	}
	r.menus[unit] = append(menu, models.CloneMenuItem(item))
}

func (r *catalogRepository) AdjustStock(unit models.BusinessUnit, itemID string, delta decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	menu := r.menus[unit]
	for i, it := range menu {
		if it.ID != itemID {
			continue
		}
		if it.Stock == nil {
			return nil
		}
		next := it.Stock.Add(delta).Round(2)
		if next.IsNegative() {
			next = decimal.Zero
		}
		menu[i].Stock = &next
		return nil
	}
	return ErrNotFound
}
