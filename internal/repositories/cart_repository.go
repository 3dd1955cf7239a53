package repositories

import (
	"sync"

	"haveli_pos_backend/internal/models"
)

// CartRepository keeps the in-progress carts, one per (unit, source). A
// source is a table, room or bar tab identifier. Reads return deep copies;
// writers save a full cart back.
type CartRepository interface {
	Get(unit models.BusinessUnit, sourceID string) models.Cart
	Save(cart models.Cart)
	Delete(unit models.BusinessUnit, sourceID string)
}

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

// NewCartRepository creates an empty in-memory cart store.
func NewCartRepository() CartRepository {
	return &cartRepository{carts: make(map[string]models.Cart)}
}

func cartKey(unit models.BusinessUnit, sourceID string) string {
	return string(unit) + "|" + sourceID
}

func (r *cartRepository) Get(unit models.BusinessUnit, sourceID string) models.Cart {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.carts[cartKey(unit, sourceID)]; ok {
		return models.CloneCart(c)
	}
	return models.Cart{Unit: unit, SourceID: sourceID}
}

func (r *cartRepository) Save(cart models.Cart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cartKey(cart.Unit, cart.SourceID)] = models.CloneCart(cart)
}

func (r *cartRepository) Delete(unit models.BusinessUnit, sourceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartKey(unit, sourceID))
}
