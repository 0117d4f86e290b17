package model

import "github.com/shopspring/decimal"

// カートの明細
// 同じ商品IDの明細は1つだけ。数量は常に1以上。
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// 単価 × 数量
func (i CartItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
