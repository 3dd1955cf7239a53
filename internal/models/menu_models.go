package models

import (
	"github.com/shopspring/decimal"
)

// BusinessUnit identifies one of the venue's operating sub-businesses.
// Each unit owns its own catalog, carts, orders and settlement session.
type BusinessUnit string

const (
	UnitRestaurant BusinessUnit = "RESTAURANT"
	UnitBar        BusinessUnit = "BAR"
	UnitLodging    BusinessUnit = "LODGING"
	UnitBilliards  BusinessUnit = "BILLIARDS"
	UnitAdmin      BusinessUnit = "ADMIN"
)

// IsSellingUnit reports whether the unit carries its own catalog and order
// session. ADMIN is a read-only aggregation view over the others.
func (u BusinessUnit) IsSellingUnit() bool {
	switch u {
	case UnitRestaurant, UnitBar, UnitLodging, UnitBilliards:
		return true
	default:
		return false
	}
}

// PourSize is the size/pour variant on a bar item affecting price and the
// bottle-stock deduction on fulfilment.
type PourSize string

const (
	PourSmall  PourSize = "30ml"
	PourDouble PourSize = "60ml"
	PourTriple PourSize = "90ml"
	PourBottle PourSize = "Btl"
)

// PourMultipliers derives a variant price from the base price when no
// explicit override exists. Domain constant, do not change.
var PourMultipliers = map[PourSize]float64{
	PourSmall:  1,
	PourDouble: 2,
	PourTriple: 3,
	PourBottle: 12,
}

// PourBottleEquivalents maps a pour size to the fraction of a bottle it
// consumes when an order is placed. Domain constant matching the price
// multiplier table.
var PourBottleEquivalents = map[PourSize]decimal.Decimal{
	PourSmall:  decimal.NewFromFloat(0.04),
	PourDouble: decimal.NewFromFloat(0.08),
	PourTriple: decimal.NewFromFloat(0.12),
	PourBottle: decimal.NewFromInt(1),
}

// ValidPourSize reports whether s names one of the four pour variants.
func ValidPourSize(s PourSize) bool {
	_, ok := PourMultipliers[s]
	return ok
}

// MenuItem is a sellable catalog entry: food, a drink by pour size, a room
// night or a table slot, depending on the business unit.
type MenuItem struct {
	ID            string               `json:"id"`
	Name          string               `json:"name" binding:"required"`
	LocalName     string               `json:"local_name"`
	Price         float64              `json:"price" binding:"gte=0"`
	Unit          BusinessUnit         `json:"bu" binding:"required"`
	SubCategory   *string              `json:"sub_category,omitempty"`
	IsAvailable   bool                 `json:"is_available"`
	IsVeg         *bool                `json:"is_veg,omitempty"`
	IsRecommended bool                 `json:"is_recommended"`
	VariantPrices map[PourSize]float64 `json:"variant_prices,omitempty"`
	// Stock is bottle stock for bar items, nil for items that do not track
	// stock. Fractional: repeated pour deductions land on two decimals.
	Stock *decimal.Decimal `json:"stock,omitempty"`
}

// CloneMenuItems deep-copies a catalog slice so callers can never mutate the
// stored state through a read snapshot.
func CloneMenuItems(items []MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	for i, it := range items {
		out[i] = CloneMenuItem(it)
	}
	return out
}

// CloneMenuItem deep-copies a single item including its variant table and
// stock pointer.
func CloneMenuItem(it MenuItem) MenuItem {
	c := it
	if it.VariantPrices != nil {
		c.VariantPrices = make(map[PourSize]float64, len(it.VariantPrices))
		for k, v := range it.VariantPrices {
			c.VariantPrices[k] = v
		}
	}
	if it.Stock != nil {
		s := *it.Stock
		c.Stock = &s
	}
	if it.SubCategory != nil {
		sc := *it.SubCategory
		c.SubCategory = &sc
	}
	if it.IsVeg != nil {
		v := *it.IsVeg
		c.IsVeg = &v
	}
	return c
}
