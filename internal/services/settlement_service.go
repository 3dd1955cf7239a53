package services

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"
	"haveli_pos_backend/pkg/utils"

	"github.com/google/uuid"
)

// autoVerifiedNote marks a zero-variance closure that needed no manager
// sign-off.
const autoVerifiedNote = "Auto-verified: counted cash matched expected"

// CloseShiftRequest closes a unit's operating session. ManagerPIN and
// Reason are only consulted when the counted cash diverges from expected.
type CloseShiftRequest struct {
	CountedCash float64 `json:"counted_cash"`
	ManagerPIN  string  `json:"manager_pin"`
	Reason      string  `json:"reason"`
}

// SettlementService reconciles an operating session's cash and closes the
// shift. A non-zero variance is gated behind manager authorization: the
// configured PIN plus a non-empty reason. Closing archives the session's
// orders and resets the unit to zero.
type SettlementService interface {
	ComputeExpected(unit models.BusinessUnit) (*models.ExpectedTotals, error)
	Evaluate(countedCash, cashExpected float64) float64
	CloseShift(unit models.BusinessUnit, req CloseShiftRequest) (*models.ShiftSettlement, error)
	ListSettlements(unit models.BusinessUnit) ([]models.ShiftSettlement, error)
}

type settlementService struct {
	orderRepo   repositories.OrderRepository
	archiveRepo repositories.SettlementArchiveRepository
	db          *sql.DB // nil when no archive database is configured
	managerPIN  string
	now         func() time.Time

	mu     sync.RWMutex
	closed map[models.BusinessUnit][]models.ShiftSettlement
}

// NewSettlementService creates a new instance of SettlementService. db and
// ar may be nil; settlements then live in memory only, matching the
// in-memory session semantics of the rest of the system.
func NewSettlementService(
	or repositories.OrderRepository,
	ar repositories.SettlementArchiveRepository,
	db *sql.DB,
	managerPIN string,
) SettlementService {
	return &settlementService{
		orderRepo:   or,
		archiveRepo: ar,
		db:          db,
		managerPIN:  managerPIN,
		now:         time.Now,
		closed:      make(map[models.BusinessUnit][]models.ShiftSettlement),
	}
}

// ComputeExpected groups the session's settled orders by payment method.
// PENDING orders are open tabs and carry no expectation yet; CANCELLED
// orders never count.
func (s *settlementService) ComputeExpected(unit models.BusinessUnit) (*models.ExpectedTotals, error) {
	if !unit.IsSellingUnit() {
		return nil, fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	totals := models.ExpectedTotals{ByMethod: make(map[models.PaymentMethod]float64)}
	for _, o := range s.orderRepo.List(unit) {
		if o.Status == models.StatusCancelled || o.Payment == models.PaymentPending {
			continue
		}
		totals.ByMethod[o.Payment] += o.TotalAmount
		totals.TotalSales += o.TotalAmount
		totals.OrderCount++
		if o.Payment == models.PaymentCash {
			totals.CashExpected += o.TotalAmount
		} else {
			totals.OtherExpected += o.TotalAmount
		}
	}
	return &totals, nil
}

// Evaluate is the variance: counted minus expected.
func (s *settlementService) Evaluate(countedCash, cashExpected float64) float64 {
	return countedCash - cashExpected
}

func (s *settlementService) CloseShift(unit models.BusinessUnit, req CloseShiftRequest) (*models.ShiftSettlement, error) {
	expected, err := s.ComputeExpected(unit)
	if err != nil {
		return nil, err
	}
	variance := s.Evaluate(req.CountedCash, expected.CashExpected)

	note := req.Reason
	if variance != 0 {
		if req.ManagerPIN != s.managerPIN {
			return nil, fmt.Errorf("%w: incorrect PIN", ErrAuthorizationDenied)
		}
		if utils.IsEmpty(note) {
			return nil, fmt.Errorf("%w: a reason is required for a cash variance", ErrAuthorizationDenied)
		}
	} else if utils.IsEmpty(note) {
		note = autoVerifiedNote
	}

	closedAt := s.now()
	settlement := models.ShiftSettlement{
		ID:            uuid.NewString(),
		Unit:          unit,
		Date:          closedAt.Format("2006-01-02"),
		TotalSales:    expected.TotalSales,
		CashExpected:  expected.CashExpected,
		OtherExpected: expected.OtherExpected,
		CountedCash:   req.CountedCash,
		Variance:      variance,
		Note:          note,
		ClosedAt:      closedAt,
	}

	// The settlement record exists before the session is wiped, so a
	// failed archive write cannot lose the shift.
	s.mu.Lock()
	s.closed[unit] = append([]models.ShiftSettlement{settlement}, s.closed[unit]...)
	s.mu.Unlock()

	archived := s.orderRepo.ClearUnit(unit)
	s.archive(&settlement, archived)

	utils.LogInfo("Shift closed", map[string]interface{}{
		"bu": unit, "total_sales": settlement.TotalSales,
		"variance": settlement.Variance, "orders": len(archived),
	})
	return &settlement, nil
}

func (s *settlementService) archive(settlement *models.ShiftSettlement, orders []models.Order) {
	if s.db == nil || s.archiveRepo == nil {
		return
	}
	tx, err := s.db.Begin()
	if err != nil {
		utils.LogError(err, "Settlement archive: failed to start transaction")
		return
	}
	defer tx.Rollback()

	if err := s.archiveRepo.InsertSettlement(tx, settlement); err != nil {
		utils.LogError(err, "Settlement archive: failed to insert settlement")
		return
	}
	for i := range orders {
		if err := s.archiveRepo.InsertArchivedOrder(tx, settlement.ID, &orders[i]); err != nil {
			utils.LogError(err, "Settlement archive: failed to insert order")
			return
		}
	}
	if err := tx.Commit(); err != nil {
		utils.LogError(err, "Settlement archive: failed to commit")
	}
}

func (s *settlementService) ListSettlements(unit models.BusinessUnit) ([]models.ShiftSettlement, error) {
	if !unit.IsSellingUnit() {
		return nil, fmt.Errorf("%w: %q is not a selling unit", ErrValidation, unit)
	}
	s.mu.RLock()
	inMemory := append([]models.ShiftSettlement{}, s.closed[unit]...)
	s.mu.RUnlock()
	if len(inMemory) > 0 || s.db == nil || s.archiveRepo == nil {
		return inMemory, nil
	}
	// Fresh process with an archive configured: fall back to persisted history.
	return s.archiveRepo.GetSettlements(unit, 50)
}
