package payment

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// カード会社に断られた
var ErrDeclined = errors.New("payment declined")

type ChargeRequest struct {
	SessionID string
	Attempt   int
	Amount    decimal.Decimal
	Form      model.CheckoutForm
}

// 決済の窓口。ctxがキャンセルされたら ctx.Err() を返すこと。
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (model.Receipt, error)
}

// 一定時間待ってから成功を返すだけの決済
type SimulatedGateway struct {
	delay   time.Duration
	now     func() time.Time
	decline func(req ChargeRequest) error
}

type Option func(*SimulatedGateway)

// テスト用に断る条件を差し込む
func WithDecline(f func(req ChargeRequest) error) Option {
	return func(g *SimulatedGateway) { g.decline = f }
}

func WithNow(now func() time.Time) Option {
	return func(g *SimulatedGateway) { g.now = now }
}

func NewSimulatedGateway(delay time.Duration, opts ...Option) *SimulatedGateway {
	g := &SimulatedGateway{delay: delay, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (model.Receipt, error) {
	if g.delay > 0 {
		t := time.NewTimer(g.delay)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return model.Receipt{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return model.Receipt{}, err
	}

	if g.decline != nil {
		if err := g.decline(req); err != nil {
			return model.Receipt{}, err
		}
	}

	return model.Receipt{
		OrderID:   uuid.NewString(),
		Amount:    req.Amount,
		ChargedAt: g.now(),
	}, nil
}
