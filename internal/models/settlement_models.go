package models

import "time"

// ExpectedTotals is the cash reconciliation baseline computed from a
// session's settled orders, grouped by payment method.
type ExpectedTotals struct {
	TotalSales    float64                   `json:"total_sales"`
	CashExpected  float64                   `json:"cash_expected"`
	OtherExpected float64                   `json:"other_expected"`
	ByMethod      map[PaymentMethod]float64 `json:"by_method"`
	OrderCount    int                       `json:"order_count"`
}

// ShiftSettlement is the record emitted when an operating session closes.
// A non-zero variance must carry a non-empty note before the record exists.
type ShiftSettlement struct {
	ID            string       `json:"id"`
	Unit          BusinessUnit `json:"bu"`
	Date          string       `json:"date"`
	TotalSales    float64      `json:"total_sales"`
	CashExpected  float64      `json:"cash_expected"`
	OtherExpected float64      `json:"other_expected"`
	CountedCash   float64      `json:"counted_cash"`
	Variance      float64      `json:"variance"`
	Note          string       `json:"note"`
	ClosedAt      time.Time    `json:"closed_at"`
}
