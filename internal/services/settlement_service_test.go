package services

import (
	"errors"
	"testing"
	"time"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/internal/repositories"

	"github.com/google/uuid"
)

const testPIN = "4321"

func newSettlementFixture(t *testing.T) (SettlementService, repositories.OrderRepository) {
	t.Helper()
	orderRepo := repositories.NewOrderRepository()
	return NewSettlementService(orderRepo, nil, nil, testPIN), orderRepo
}

func appendOrder(repo repositories.OrderRepository, unit models.BusinessUnit, payment models.PaymentMethod, status models.OrderStatus, total float64) {
	repo.Append(models.Order{
		ID:          uuid.NewString(),
		SourceID:    "T1",
		Unit:        unit,
		Status:      status,
		Payment:     payment,
		TotalAmount: total,
		CreatedAt:   time.Now(),
	})
}

func TestComputeExpectedGroupsByMethod(t *testing.T) {
	svc, repo := newSettlementFixture(t)
	appendOrder(repo, models.UnitRestaurant, models.PaymentCash, models.StatusPickedUp, 500)
	appendOrder(repo, models.UnitRestaurant, models.PaymentCash, models.StatusReady, 300)
	appendOrder(repo, models.UnitRestaurant, models.PaymentUPI, models.StatusPickedUp, 450)
	appendOrder(repo, models.UnitRestaurant, models.PaymentCash, models.StatusCancelled, 999) // never counts
	appendOrder(repo, models.UnitRestaurant, models.PaymentPending, models.StatusReady, 1000) // open tab

	totals, err := svc.ComputeExpected(models.UnitRestaurant)
	if err != nil {
		t.Fatalf("ComputeExpected: %v", err)
	}
	if totals.CashExpected != 800 {
		t.Errorf("cash expected: got %v, want 800", totals.CashExpected)
	}
	if totals.OtherExpected != 450 {
		t.Errorf("other expected: got %v, want 450", totals.OtherExpected)
	}
	if totals.TotalSales != 1250 {
		t.Errorf("total sales: got %v, want 1250", totals.TotalSales)
	}
	if totals.OrderCount != 3 {
		t.Errorf("order count: got %d, want 3", totals.OrderCount)
	}
}

func TestCloseShiftZeroVarianceAutoVerifies(t *testing.T) {
	svc, repo := newSettlementFixture(t)
	appendOrder(repo, models.UnitRestaurant, models.PaymentCash, models.StatusPickedUp, 800)

	settlement, err := svc.CloseShift(models.UnitRestaurant, CloseShiftRequest{CountedCash: 800})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	if settlement.Variance != 0 {
		t.Errorf("variance: got %v, want 0", settlement.Variance)
	}
	if settlement.Note != autoVerifiedNote {
		t.Errorf("note: got %q, want the auto-verified note", settlement.Note)
	}

	// Closing resets the unit's session to zero.
	if got := len(repo.List(models.UnitRestaurant)); got != 0 {
		t.Errorf("orders after close: got %d, want 0", got)
	}
}

func TestCloseShiftVarianceRequiresPINAndReason(t *testing.T) {
	tests := []struct {
		name string
		req  CloseShiftRequest
	}{
		{"no PIN", CloseShiftRequest{CountedCash: 700, Reason: "Till shortfall"}},
		{"wrong PIN", CloseShiftRequest{CountedCash: 700, ManagerPIN: "0000", Reason: "Till shortfall"}},
		{"no reason", CloseShiftRequest{CountedCash: 700, ManagerPIN: testPIN}},
		{"blank reason", CloseShiftRequest{CountedCash: 700, ManagerPIN: testPIN, Reason: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newSettlementFixture(t)
			appendOrder(repo, models.UnitBar, models.PaymentCash, models.StatusPickedUp, 800)

			if _, err := svc.CloseShift(models.UnitBar, tt.req); !errors.Is(err, ErrAuthorizationDenied) {
				t.Errorf("got %v, want ErrAuthorizationDenied", err)
			}
			// A denied close leaves the session open.
			if got := len(repo.List(models.UnitBar)); got != 1 {
				t.Errorf("orders after denied close: got %d, want 1", got)
			}
		})
	}
}

func TestCloseShiftVarianceApproved(t *testing.T) {
	svc, repo := newSettlementFixture(t)
	appendOrder(repo, models.UnitBar, models.PaymentCash, models.StatusPickedUp, 800)

	settlement, err := svc.CloseShift(models.UnitBar, CloseShiftRequest{
		CountedCash: 750,
		ManagerPIN:  testPIN,
		Reason:      "Complimentary round written off",
	})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	if settlement.Variance != -50 {
		t.Errorf("variance: got %v, want -50", settlement.Variance)
	}
	if settlement.Note != "Complimentary round written off" {
		t.Errorf("note: got %q", settlement.Note)
	}
}

func TestListSettlementsNewestFirst(t *testing.T) {
	svc, repo := newSettlementFixture(t)

	appendOrder(repo, models.UnitRestaurant, models.PaymentCash, models.StatusPickedUp, 100)
	first, err := svc.CloseShift(models.UnitRestaurant, CloseShiftRequest{CountedCash: 100})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	appendOrder(repo, models.UnitRestaurant, models.PaymentCash, models.StatusPickedUp, 200)
	second, err := svc.CloseShift(models.UnitRestaurant, CloseShiftRequest{CountedCash: 200})
	if err != nil {
		t.Fatalf("CloseShift: %v", err)
	}

	settlements, err := svc.ListSettlements(models.UnitRestaurant)
	if err != nil {
		t.Fatalf("ListSettlements: %v", err)
	}
	if len(settlements) != 2 {
		t.Fatalf("settlements: got %d, want 2", len(settlements))
	}
	if settlements[0].ID != second.ID || settlements[1].ID != first.ID {
		t.Error("settlements should be newest first")
	}
}

func TestCloseShiftEachUnitIndependent(t *testing.T) {
	svc, repo := newSettlementFixture(t)
	appendOrder(repo, models.UnitRestaurant, models.PaymentCash, models.StatusPickedUp, 100)
	appendOrder(repo, models.UnitBilliards, models.PaymentCash, models.StatusPickedUp, 400)

	if _, err := svc.CloseShift(models.UnitRestaurant, CloseShiftRequest{CountedCash: 100}); err != nil {
		t.Fatalf("CloseShift: %v", err)
	}
	if got := len(repo.List(models.UnitBilliards)); got != 1 {
		t.Errorf("billiards orders after restaurant close: got %d, want 1", got)
	}
}
