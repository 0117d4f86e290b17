package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/notify"
	"storefront/internal/payment"
	"storefront/internal/usecase"
	"storefront/internal/validator"
)

// =====================
// fake clock
// =====================

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Time
	f       func()
	stopped bool
	fired   bool
	clock   *fakeClock
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) usecase.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now.Add(d), f: f, clock: c}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

// 期限が来たタイマーを呼ぶ（ロックの外で）
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.f()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// =====================
// fake gateway（結果を手で返す）
// =====================

type chargeResult struct {
	receipt model.Receipt
	err     error
}

type manualGateway struct {
	calls   chan payment.ChargeRequest
	results chan chargeResult
	done    chan error
}

func newManualGateway() *manualGateway {
	return &manualGateway{
		calls:   make(chan payment.ChargeRequest, 8),
		results: make(chan chargeResult, 8),
		done:    make(chan error, 8),
	}
}

func (g *manualGateway) Charge(ctx context.Context, req payment.ChargeRequest) (model.Receipt, error) {
	g.calls <- req
	select {
	case <-ctx.Done():
		g.done <- ctx.Err()
		return model.Receipt{}, ctx.Err()
	case r := <-g.results:
		g.done <- r.err
		if r.err == nil {
			r.receipt.Amount = req.Amount
		}
		return r.receipt, r.err
	}
}

// =====================
// flow fixture
// =====================

type flowFixture struct {
	cart    *usecase.CartStore
	inbox   *notify.Inbox
	clock   *fakeClock
	gateway *manualGateway
	flow    *usecase.CheckoutFlow

	mu          sync.Mutex
	transitions [][2]model.CheckoutStatus
}

func newFlowFixture() *flowFixture {
	fx := &flowFixture{
		cart:    usecase.NewCartStore(),
		inbox:   notify.NewInbox(10),
		clock:   newFakeClock(),
		gateway: newManualGateway(),
	}
	fx.flow = usecase.NewCheckoutFlow(usecase.CheckoutFlowConfig{
		SessionID:    "sess-1",
		Cart:         fx.cart,
		Validator:    validator.NewCheckoutValidator(),
		Gateway:      fx.gateway,
		Sink:         fx.inbox,
		Translator:   i18n.NewTranslator(i18n.EN),
		Clock:        fx.clock,
		SuccessDelay: 2 * time.Second,
		OnTransition: func(from, to model.CheckoutStatus) {
			fx.mu.Lock()
			fx.transitions = append(fx.transitions, [2]model.CheckoutStatus{from, to})
			fx.mu.Unlock()
		},
	})
	return fx
}

func (fx *flowFixture) status() model.CheckoutStatus {
	return fx.flow.Snapshot().Status
}

func (fx *flowFixture) transitionsSeen() [][2]model.CheckoutStatus {
	fx.mu.Lock()
	defer fx.mu.Unlock()
	out := make([][2]model.CheckoutStatus, len(fx.transitions))
	copy(out, fx.transitions)
	return out
}

type validatorFailAlways struct{}

func (validatorFailAlways) ValidateCheckout(form model.CheckoutForm) error {
	return validator.ErrRequiredField
}
