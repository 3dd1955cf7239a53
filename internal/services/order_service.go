package services

import (
	"fmt"
	"time"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
	"haveli_pos_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultLateAfter is the kitchen display urgency threshold. An open order
// older than this is flagged late on every read; nothing is stored.
const defaultLateAfter = 15 * time.Minute

// lateThresholds overrides the urgency threshold for units whose service
// rhythm differs from the kitchen's. Room service tolerates a longer wait.
var lateThresholds = map[models.BusinessUnit]time.Duration{
	models.UnitLodging: 25 * time.Minute,
}

func lateAfterFor(unit models.BusinessUnit) time.Duration {
	if d, ok := lateThresholds[unit]; ok {
		return d
	}
	return defaultLateAfter
}

// legalTransitions is the order status state machine. INCOMING walks
// forward one step at a time to PICKED_UP, or sideways to CANCELLED.
// PICKED_UP and CANCELLED are terminal.
var legalTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusIncoming:  {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusReady},
	models.StatusReady:     {models.StatusPickedUp},
}

// TransitionAllowed reports whether the state machine permits from → to.
func TransitionAllowed(from, to models.OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PlaceOrderRequest submits a source's cart as an order.
type PlaceOrderRequest struct {
	SourceID      string               `json:"source_id" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"payment_method" binding:"required"`
}

// OrderService converts finalized carts into immutable orders and drives
// their status through the lifecycle state machine. PlaceOrder and
// AdvanceStatus are the only two order mutators in the system.
type OrderService interface {
	PlaceOrder(unit models.BusinessUnit, req PlaceOrderRequest) (*models.Order, error)
	AdvanceStatus(orderID string, status models.OrderStatus) (*models.Order, error)
	GetOrders(unit models.BusinessUnit) ([]models.OrderView, error)
	GetOrderByID(orderID string) (*models.OrderView, error)
	// KitchenFeed lists the unit's open kitchen-routed orders, oldest
	// first, with elapsed time recomputed per read.
	KitchenFeed(unit models.BusinessUnit) ([]models.OrderView, error)
}

type orderService struct {
	orderRepo    repositories.OrderRepository
	cartRepo     repositories.CartRepository
	catalogRepo  repositories.CatalogRepository
	inventorySvc InventoryService
	now          func() time.Time
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(
	or repositories.OrderRepository,
	cr repositories.CartRepository,
	mr repositories.CatalogRepository,
	is InventoryService,
) OrderService {
	return &orderService{
		orderRepo:    or,
		cartRepo:     cr,
		catalogRepo:  mr,
		inventorySvc: is,
		now:          time.Now,
	}
}

// PlaceOrder snapshots the cart into an order, computes the total once,
// assigns id and timestamp, sets the opening status per the unit's
// fulfillment policy, clears the cart and triggers stock deduction for
// every consumable line.
func (s *orderService) PlaceOrder(unit models.BusinessUnit, req PlaceOrderRequest) (*models.Order, error) {
	if !unit.IsSellingUnit() {
		return nil, fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}
	cart := s.cartRepo.Get(unit, req.SourceID)
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	status := models.StatusIncoming
	if models.PolicyFor(unit) == models.FulfillmentDirect {
		// Bar counter orders never reach the kitchen display; they are
		// recorded as already served.
		status = models.StatusReady
	}

	order := models.Order{
		ID:          uuid.NewString(),
		SourceID:    req.SourceID,
		Unit:        unit,
		Lines:       cart.Lines,
		Status:      status,
		Payment:     req.PaymentMethod,
		TotalAmount: cart.Total(),
		CreatedAt:   s.now(),
	}

	s.orderRepo.Append(order)
	s.cartRepo.Delete(unit, req.SourceID)
	s.deductForOrder(&order)

	utils.LogInfo("Order placed", map[string]interface{}{
		"order_id": order.ID, "bu": unit, "source": req.SourceID,
		"total": order.TotalAmount, "status": order.Status,
	})
	return &order, nil
}

// deductForOrder fans consumption out to the stock ledgers. Pour-variant
// lines consume bar bottle stock in bottle-equivalents; plain lines consume
// matching prepared kitchen stock. Deduction never fails an order: it
// floors at zero and low stock surfaces as a separate signal.
func (s *orderService) deductForOrder(order *models.Order) {
	for _, line := range order.Lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		if line.Variant != nil {
			equiv, ok := models.PourBottleEquivalents[*line.Variant]
			if !ok {
				continue
			}
			if err := s.catalogRepo.AdjustStock(order.Unit, line.ItemID, equiv.Mul(qty).Neg()); err != nil {
				utils.LogError(err, "Bottle stock deduction failed")
			}
			continue
		}
		if models.PolicyFor(order.Unit) == models.FulfillmentKitchen {
			s.inventorySvc.DeductByName(models.TierKitchen, line.Name, qty,
				fmt.Sprintf("Order %s", order.ID))
		}
	}
}

// AdvanceStatus validates the requested transition against the state
// machine and mutates only the status field. An illegal transition leaves
// the order unchanged.
func (s *orderService) AdvanceStatus(orderID string, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if !TransitionAllowed(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, status)
	}
	if err := s.orderRepo.SetStatus(orderID, status); err != nil {
		return nil, ErrOrderNotFound
	}
	order.Status = status
	utils.LogInfo("Order status advanced", map[string]interface{}{
		"order_id": orderID, "status": status,
	})
	return &order, nil
}

func (s *orderService) GetOrders(unit models.BusinessUnit) ([]models.OrderView, error) {
	if !unit.IsSellingUnit() {
		return nil, fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	orders := s.orderRepo.List(unit)
	views := make([]models.OrderView, len(orders))
	for i, o := range orders {
		views[i] = s.view(o)
	}
	return views, nil
}

func (s *orderService) GetOrderByID(orderID string) (*models.OrderView, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	v := s.view(order)
	return &v, nil
}

func (s *orderService) KitchenFeed(unit models.BusinessUnit) ([]models.OrderView, error) {
	all, err := s.GetOrders(unit)
	if err != nil {
		return nil, err
	}
	var open []models.OrderView
	for _, v := range all {
		if v.Status == models.StatusIncoming || v.Status == models.StatusPreparing {
			open = append(open, v)
		}
	}
	return open, nil
}

func (s *orderService) view(o models.Order) models.OrderView {
	elapsed := s.now().Sub(o.CreatedAt)
	return models.OrderView{
		Order:          o,
		ElapsedSeconds: int64(elapsed.Seconds()),
		IsLate:         !o.Status.Terminal() && elapsed > lateAfterFor(o.Unit),
	}
}
