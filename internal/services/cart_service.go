package services

import (
	"fmt"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
)

// AddLineRequest adds an item to a source's cart. Quantity defaults to 1.
type AddLineRequest struct {
	ItemID   string           `json:"item_id" binding:"required"`
	Variant  *models.PourSize `json:"variant,omitempty"`
	Quantity int              `json:"quantity"`
}

// CartService accumulates selections for one in-progress order per
// (unit, source). Lines snapshot the resolved price at add time; catalog
// changes after that never touch a cart line already taken.
type CartService interface {
	GetCart(unit models.BusinessUnit, sourceID string) (*models.Cart, error)
	AddLine(unit models.BusinessUnit, sourceID string, req AddLineRequest) (*models.Cart, error)
	RemoveLine(unit models.BusinessUnit, sourceID, lineKey string, policy models.RemovePolicy) (*models.Cart, error)
	ClearCart(unit models.BusinessUnit, sourceID string)
}

type cartService struct {
	cartRepo    repositories.CartRepository
	catalogRepo repositories.CatalogRepository
}

// NewCartService creates a new instance of CartService.
func NewCartService(cr repositories.CartRepository, mr repositories.CatalogRepository) CartService {
	return &cartService{cartRepo: cr, catalogRepo: mr}
}

func (s *cartService) GetCart(unit models.BusinessUnit, sourceID string) (*models.Cart, error) {
	if !unit.IsSellingUnit() {
		return nil, fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	cart := s.cartRepo.Get(unit, sourceID)
	return &cart, nil
}

func (s *cartService) AddLine(unit models.BusinessUnit, sourceID string, req AddLineRequest) (*models.Cart, error) {
	if !unit.IsSellingUnit() {
		return nil, fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
	}
	if req.Variant != nil && !models.ValidPourSize(*req.Variant) {
		return nil, fmt.Errorf("%w: unknown pour size %q", ErrValidation, *req.Variant)
	}

	item, err := s.catalogRepo.GetItem(unit, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("%w: menu item %s", ErrItemNotFound, req.ItemID)
	}
	if !item.IsAvailable {
		return nil, fmt.Errorf("%w: menu item %s is marked unavailable", ErrItemNotFound, req.ItemID)
	}

	price := item.Price
	if req.Variant != nil {
		price, err = ResolveVariantPrice(item, *req.Variant)
		if err != nil {
			return nil, err
		}
	}

	line := models.CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		LocalName: item.LocalName,
		Variant:   req.Variant,
		Quantity:  qty,
		UnitPrice: price,
	}

	cart := s.cartRepo.Get(unit, sourceID)
	merged := false
	for i, l := range cart.Lines {
		if l.Key() == line.Key() {
			cart.Lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, line)
	}
	s.cartRepo.Save(cart)
	return &cart, nil
}

func (s *cartService) RemoveLine(unit models.BusinessUnit, sourceID, lineKey string, policy models.RemovePolicy) (*models.Cart, error) {
	if policy != models.RemoveDelete && policy != models.RemoveDecrement {
		return nil, fmt.Errorf("%w: remove policy must be DELETE or DECREMENT", ErrValidation)
	}
	cart := s.cartRepo.Get(unit, sourceID)
	for i, l := range cart.Lines {
		if l.Key() != lineKey {
			continue
		}
		if policy == models.RemoveDecrement && l.Quantity > 1 {
			cart.Lines[i].Quantity--
		} else {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
		}
		s.cartRepo.Save(cart)
		return &cart, nil
	}
	return nil, fmt.Errorf("%w: cart line %s", ErrItemNotFound, lineKey)
}

func (s *cartService) ClearCart(unit models.BusinessUnit, sourceID string) {
	s.cartRepo.Delete(unit, sourceID)
}
