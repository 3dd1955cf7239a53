package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryTier is one of the restaurant's two storage stages: raw
// materials in the store room versus prepared stock in the kitchen. Bar
// bottle stock lives on MenuItem.Stock instead.
type InventoryTier string

const (
	TierRaw     InventoryTier = "RAW"
	TierKitchen InventoryTier = "KITCHEN"
)

// ValidInventoryTier reports whether t names a known tier.
func ValidInventoryTier(t InventoryTier) bool {
	return t == TierRaw || t == TierKitchen
}

// Other returns the opposite tier, the target of a transfer.
func (t InventoryTier) Other() InventoryTier {
	if t == TierRaw {
		return TierKitchen
	}
	return TierRaw
}

// InventoryAction is the kind of a ledger entry.
type InventoryAction string

const (
	ActionCreate      InventoryAction = "CREATE"
	ActionTopUp       InventoryAction = "TOPUP"
	ActionTransferOut InventoryAction = "TRANSFER_OUT"
	ActionTransferIn  InventoryAction = "TRANSFER_IN"
	ActionUsed        InventoryAction = "USED"
)

// InventoryLog is one audited mutation of an inventory item. Every change
// to a quantity appends exactly one entry.
type InventoryLog struct {
	At      time.Time       `json:"at"`
	Action  InventoryAction `json:"action"`
	Amount  decimal.Decimal `json:"amount"`
	Details string          `json:"details"`
}

// InventoryItem is a tracked consumable within one tier. Quantity never
// goes negative: deductions floor at zero and transfers are rejected when
// they would overdraw the source.
type InventoryItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"qty"`
	UnitLabel    string          `json:"unit"`
	MinThreshold decimal.Decimal `json:"min"`
	// History is most-recent-first.
	History []InventoryLog `json:"history"`
}

// LowStock reports whether the item has fallen to or under its threshold.
func (i InventoryItem) LowStock() bool {
	return i.Quantity.LessThanOrEqual(i.MinThreshold)
}

// CloneInventoryItem deep-copies an item including its ledger.
func CloneInventoryItem(it InventoryItem) InventoryItem {
	c := it
	c.History = make([]InventoryLog, len(it.History))
	copy(c.History, it.History)
	return c
}
