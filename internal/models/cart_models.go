package models

// RemovePolicy selects how Cart.RemoveLine treats an existing line. The
// bar flow deletes the whole line, the restaurant flow steps the quantity
// down by one. The caller picks the policy explicitly per call site.
type RemovePolicy string

const (
	RemoveDelete    RemovePolicy = "DELETE"
	RemoveDecrement RemovePolicy = "DECREMENT"
)

// CartLine is a menu item snapshot inside a cart. Identity within the cart
// is (ItemID, Variant): adding the same pair again merges quantities.
type CartLine struct {
	ItemID    string    `json:"item_id"`
	Name      string    `json:"name"`
	LocalName string    `json:"local_name,omitempty"`
	Variant   *PourSize `json:"variant,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// LineTotal is the line's contribution to the cart total.
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Key returns the merge identity of the line.
func (l CartLine) Key() string {
	if l.Variant == nil {
		return l.ItemID
	}
	return l.ItemID + "|" + string(*l.Variant)
}

// Cart is the transient, uncommitted selection for one pending order,
// scoped to a single table/room/tab within one business unit.
type Cart struct {
	Unit     BusinessUnit `json:"bu"`
	SourceID string       `json:"source_id"`
	Lines    []CartLine   `json:"lines"`
}

// Total sums line prices. Pure; no rounding or tax is applied here.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.LineTotal()
	}
	return total
}

// CloneCart deep-copies a cart so repository reads cannot alias stored lines.
func CloneCart(c Cart) Cart {
	out := c
	out.Lines = make([]CartLine, len(c.Lines))
	for i, l := range c.Lines {
		out.Lines[i] = l
		if l.Variant != nil {
			v := *l.Variant
			out.Lines[i].Variant = &v
		}
	}
	return out
}
