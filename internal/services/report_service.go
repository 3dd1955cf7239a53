package services

import (
	"sort"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
)

// UnitRevenue is one unit's slice of the admin overview.
type UnitRevenue struct {
	Unit       models.BusinessUnit       `json:"bu"`
	TotalSales float64                   `json:"total_sales"`
	OrderCount int                       `json:"order_count"`
	ByMethod   map[models.PaymentMethod]float64 `json:"by_method"`
}

// TopItem is a sales leader within a unit's current session.
type TopItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// AdminOverview is the cross-unit read-only aggregation. It only ever
// reads unit state; the admin view mutates nothing.
type AdminOverview struct {
	Units      []UnitRevenue          `json:"units"`
	GrandTotal float64                `json:"grand_total"`
	LowStock   []models.InventoryItem `json:"low_stock"`
}

// ReportService aggregates the live session for the admin dashboard and
// the per-unit reports tab.
type ReportService interface {
	Overview() AdminOverview
	TopItems(unit models.BusinessUnit, limit int) ([]TopItem, error)
}

type reportService struct {
	orderRepo    repositories.OrderRepository
	inventorySvc InventoryService
}

// NewReportService creates a new instance of ReportService.
func NewReportService(or repositories.OrderRepository, is InventoryService) ReportService {
	return &reportService{orderRepo: or, inventorySvc: is}
}

func (s *reportService) Overview() AdminOverview {
	overview := AdminOverview{LowStock: s.inventorySvc.LowStock()}
	for _, unit := range []models.BusinessUnit{
		models.UnitRestaurant, models.UnitBar, models.UnitLodging, models.UnitBilliards,
	} {
		rev := UnitRevenue{Unit: unit, ByMethod: make(map[models.PaymentMethod]float64)}
		for _, o := range s.orderRepo.List(unit) {
			if o.Status == models.StatusCancelled {
				continue
			}
			rev.TotalSales += o.TotalAmount
			rev.OrderCount++
			rev.ByMethod[o.Payment] += o.TotalAmount
		}
		overview.Units = append(overview.Units, rev)
		overview.GrandTotal += rev.TotalSales
	}
	return overview
}

func (s *reportService) TopItems(unit models.BusinessUnit, limit int) ([]TopItem, error) {
	if !unit.IsSellingUnit() {
		return nil, ErrValidation
	}
	if limit <= 0 {
		limit = 5
	}
	byName := make(map[string]*TopItem)
	for _, o := range s.orderRepo.List(unit) {
		if o.Status == models.StatusCancelled {
			continue
		}
		for _, l := range o.Lines {
			t, ok := byName[l.Name]
			if !ok {
				t = &TopItem{Name: l.Name}
				byName[l.Name] = t
			}
			t.Quantity += l.Quantity
			t.Revenue += l.LineTotal()
		}
	}
	items := make([]TopItem, 0, len(byName))
	for _, t := range byName {
		items = append(items, *t)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Revenue != items[j].Revenue {
			return items[i].Revenue > items[j].Revenue
		}
		return items[i].Name < items[j].Name
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
