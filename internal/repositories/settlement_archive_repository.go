package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"haveli_pos_backend/internal/models"
)

// SettlementArchiveRepository persists closed shift settlements and the
// orders they covered to Postgres. The live session stays in memory; this
// archive is the only state expected to survive a restart.
type SettlementArchiveRepository interface {
	InsertSettlement(exec SQLExecutor, s *models.ShiftSettlement) error
	InsertArchivedOrder(exec SQLExecutor, settlementID string, o *models.Order) error
	GetSettlements(unit models.BusinessUnit, limit int) ([]models.ShiftSettlement, error)
}

type settlementArchiveRepository struct {
	db *sql.DB
}

// NewSettlementArchiveRepository creates a Postgres-backed archive store.
func NewSettlementArchiveRepository(db *sql.DB) SettlementArchiveRepository {
	return &settlementArchiveRepository{db: db}
}

func (r *settlementArchiveRepository) InsertSettlement(exec SQLExecutor, s *models.ShiftSettlement) error {
	query := `INSERT INTO shift_settlements
	          (id, bu, settlement_date, total_sales, cash_expected, other_expected, counted_cash, variance, note, closed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := exec.Exec(query, s.ID, string(s.Unit), s.Date, s.TotalSales, s.CashExpected,
		s.OtherExpected, s.CountedCash, s.Variance, s.Note, s.ClosedAt)
	if err != nil {
		return fmt.Errorf("%w: inserting shift settlement: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *settlementArchiveRepository) InsertArchivedOrder(exec SQLExecutor, settlementID string, o *models.Order) error {
	linesJSON, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("failed to encode order lines for archive: %w", err)
	}
	query := `INSERT INTO archived_orders
	          (id, settlement_id, bu, source_id, status, payment_method, total_amount, lines, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = exec.Exec(query, o.ID, settlementID, string(o.Unit), o.SourceID, string(o.Status),
		string(o.Payment), o.TotalAmount, linesJSON, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: inserting archived order %s: %v", ErrDatabaseError, o.ID, err)
	}
	return nil
}

func (r *settlementArchiveRepository) GetSettlements(unit models.BusinessUnit, limit int) ([]models.ShiftSettlement, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, bu, settlement_date, total_sales, cash_expected, other_expected, counted_cash, variance, note, closed_at
	          FROM shift_settlements WHERE bu = $1 ORDER BY closed_at DESC LIMIT $2`
	rows, err := r.db.Query(query, string(unit), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying shift settlements: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	settlements := []models.ShiftSettlement{}
	for rows.Next() {
		var s models.ShiftSettlement
		var bu string
		if err := rows.Scan(&s.ID, &bu, &s.Date, &s.TotalSales, &s.CashExpected,
			&s.OtherExpected, &s.CountedCash, &s.Variance, &s.Note, &s.ClosedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning shift settlement: %v", ErrDatabaseError, err)
		}
		s.Unit = models.BusinessUnit(bu)
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}
