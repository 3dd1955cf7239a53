package repositories

import (
	"sync"

	"haveli_pos_backend/internal/models"
)

// OrderRepository holds the current operating session's orders, per unit.
// Orders are append-only except for their status field; ClearUnit removes a
// session's orders when the shift closes and returns what was archived.
type OrderRepository interface {
	Append(order models.Order)
	List(unit models.BusinessUnit) []models.Order
	GetByID(orderID string) (models.Order, error)
	SetStatus(orderID string, status models.OrderStatus) error
	ClearUnit(unit models.BusinessUnit) []models.Order
}

type orderRepository struct {
	mu     sync.RWMutex
	orders map[models.BusinessUnit][]models.Order
}

// NewOrderRepository creates an empty in-memory session order store.
func NewOrderRepository() OrderRepository {
	return &orderRepository{orders: make(map[models.BusinessUnit][]models.Order)}
}

func (r *orderRepository) Append(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.Unit] = append(r.orders[order.Unit], models.CloneOrder(order))
}

func (r *orderRepository) List(unit models.BusinessUnit) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.orders[unit]
	out := make([]models.Order, len(stored))
	for i, o := range stored {
		out[i] = models.CloneOrder(o)
	}
	return out
}

func (r *orderRepository) GetByID(orderID string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, unitOrders := range r.orders {
		for _, o := range unitOrders {
			if o.ID == orderID {
				return models.CloneOrder(o), nil
			}
		}
	}
	return models.Order{}, ErrNotFound
}

func (r *orderRepository) SetStatus(orderID string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for unit, unitOrders := range r.orders {
		for i, o := range unitOrders {
			if o.ID == orderID {
				r.orders[unit][i].Status = status
				return nil
			}
		}
	}
	return ErrNotFound
}

func (r *orderRepository) ClearUnit(unit models.BusinessUnit) []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	cleared := r.orders[unit]
	out := make([]models.Order, len(cleared))
	for i, o := range cleared {
		out[i] = models.CloneOrder(o)
	}
	delete(r.orders, unit)
	return out
}
