package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 決済が通ったときの控え。サーバーには保存しない。
type Receipt struct {
	OrderID   string          `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	ChargedAt time.Time       `json:"charged_at"`
}
