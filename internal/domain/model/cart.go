package model

import "github.com/shopspring/decimal"

// ある時点のカート。合計は明細から毎回計算する。
type CartSnapshot struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func NewCartSnapshot(items []CartItem) CartSnapshot {
	snap := CartSnapshot{
		Items:      items,
		TotalPrice: decimal.Zero,
	}
	for _, it := range items {
		snap.TotalItems += it.Quantity
		snap.TotalPrice = snap.TotalPrice.Add(it.Subtotal())
	}
	return snap
}

func (s CartSnapshot) IsEmpty() bool {
	return len(s.Items) == 0
}
