package services

import (
	"fmt"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
	"haveli_pos_backend/pkg/utils"

	"github.com/google/uuid"
)

// CatalogService owns the per-unit menus. Writes follow the replace-
// wholesale contract: a full item (or item set) goes in, nothing is patched
// in place. There is no delete; items referenced by order history are
// retired with is_available=false instead.
type CatalogService interface {
	GetMenu(unit models.BusinessUnit) ([]models.MenuItem, error)
	ReplaceMenu(unit models.BusinessUnit, items []models.MenuItem) error
	UpsertItem(unit models.BusinessUnit, item models.MenuItem) (*models.MenuItem, error)
	SetAvailability(unit models.BusinessUnit, itemID string, available bool) (*models.MenuItem, error)
	GetItem(unit models.BusinessUnit, itemID string) (*models.MenuItem, error)
}

// ResolveVariantPrice returns the price of an item for a pour size. An
// explicit override in the item's variant table wins; otherwise the price
// derives from the base via the fixed multiplier table (1x/2x/3x/12x).
func ResolveVariantPrice(item models.MenuItem, variant models.PourSize) (float64, error) {
	mult, ok := models.PourMultipliers[variant]
	if !ok {
		return 0, fmt.Errorf("%w: unknown pour size %q", ErrValidation, variant)
	}
	if override, ok := item.VariantPrices[variant]; ok {
		return override, nil
	}
	return item.Price * mult, nil
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(cr repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: cr}
}

func (s *catalogService) GetMenu(unit models.BusinessUnit) ([]models.MenuItem, error) {
	if !unit.IsSellingUnit() {
		return nil, fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	return s.catalogRepo.GetItems(unit), nil
}

func (s *catalogService) ReplaceMenu(unit models.BusinessUnit, items []models.MenuItem) error {
	if !unit.IsSellingUnit() {
		return fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	for i := range items {
		if err := validateMenuItem(&items[i], unit); err != nil {
			return err
		}
	}
	s.catalogRepo.ReplaceItems(unit, items)
	utils.LogInfo("Menu replaced", map[string]interface{}{"bu": unit, "items": len(items)})
	return nil
}

func (s *catalogService) UpsertItem(unit models.BusinessUnit, item models.MenuItem) (*models.MenuItem, error) {
	if !unit.IsSellingUnit() {
		return nil, fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	if err := validateMenuItem(&item, unit); err != nil {
		return nil, err
	}
	s.catalogRepo.UpsertItem(unit, item)
	return &item, nil
}

func (s *catalogService) SetAvailability(unit models.BusinessUnit, itemID string, available bool) (*models.MenuItem, error) {
	item, err := s.catalogRepo.GetItem(unit, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: menu item %s", ErrItemNotFound, itemID)
	}
	item.IsAvailable = available
	s.catalogRepo.UpsertItem(unit, item)
	return &item, nil
}

func (s *catalogService) GetItem(unit models.BusinessUnit, itemID string) (*models.MenuItem, error) {
	item, err := s.catalogRepo.GetItem(unit, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: menu item %s", ErrItemNotFound, itemID)
	}
	return &item, nil
}

func validateMenuItem(item *models.MenuItem, unit models.BusinessUnit) error {
	if utils.IsEmpty(item.Name) {
		return fmt.Errorf("%w: menu item name must not be empty", ErrValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price for %q must be >= 0", ErrValidation, item.Name)
	}
	if item.Stock != nil && item.Stock.IsNegative() {
		return fmt.Errorf("%w: stock for %q must be >= 0", ErrValidation, item.Name)
	}
	for size := range item.VariantPrices {
		if !models.ValidPourSize(size) {
			return fmt.Errorf("%w: unknown pour size %q on %q", ErrValidation, size, item.Name)
		}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.Unit = unit
	return nil
}
