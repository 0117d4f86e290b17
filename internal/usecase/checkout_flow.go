package usecase

import (
	"context"
	"net/http"
	"sync"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/notify"
	"storefront/internal/payment"

	"go.uber.org/zap"
)

// フォームの検証（validatorパッケージで実装）
type CheckoutValidator interface {
	ValidateCheckout(form model.CheckoutForm) error
}

type CheckoutFlowConfig struct {
	SessionID    string
	Cart         *CartStore
	Validator    CheckoutValidator
	Gateway      payment.Gateway
	Sink         notify.Sink
	Translator   *i18n.Translator
	Locale       func() i18n.Locale // 通知を出す時点の言語
	Clock        Clock
	SuccessDelay time.Duration // 成功表示からリセットまで
	Log          *zap.Logger

	// 状態が変わったとき（metrics用）
	OnTransition func(from, to model.CheckoutStatus)
}

// HTTPに返す形
type CheckoutSnapshot struct {
	Status      model.CheckoutStatus `json:"status"`
	Open        bool                 `json:"open"`
	Form        model.CheckoutForm   `json:"form"`
	Attempt     int                  `json:"attempt"`
	ErrorKey    string               `json:"error_key,omitempty"`
	Error       string               `json:"error,omitempty"`
	Receipt     *model.Receipt       `json:"receipt,omitempty"`
	LastReceipt *model.Receipt       `json:"last_receipt,omitempty"`
}

// CheckoutFlow はTransitionで決まった副作用を実行する。
// イベントは1つずつ順に処理する。
type CheckoutFlow struct {
	cfg CheckoutFlowConfig

	mu         sync.Mutex
	state      CheckoutState
	cancelPay  context.CancelFunc
	resetTimer Timer
	closed     bool

	baseCtx    context.Context
	baseCancel context.CancelFunc
}

// DI
func NewCheckoutFlow(cfg CheckoutFlowConfig) *CheckoutFlow {
	if cfg.Clock == nil {
		cfg.Clock = RealClock{}
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}
	if cfg.Translator == nil {
		cfg.Translator = i18n.NewTranslator(i18n.EN)
	}
	if cfg.Locale == nil {
		def := cfg.Translator.Default()
		cfg.Locale = func() i18n.Locale { return def }
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &CheckoutFlow{
		cfg:        cfg,
		state:      NewCheckoutState(),
		baseCtx:    ctx,
		baseCancel: cancel,
	}
}

// 購入画面を開く。カートが空なら開かない。
func (f *CheckoutFlow) Open() (CheckoutSnapshot, error) {
	f.mu.Lock()
	alreadyOpen := f.state.Open
	f.mu.Unlock()

	if !alreadyOpen && f.cfg.Cart.Snapshot().IsEmpty() {
		return CheckoutSnapshot{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	return f.snapshotOf(f.Dispatch(EventOpen{})), nil
}

func (f *CheckoutFlow) ChangeField(field string, value string) (CheckoutSnapshot, error) {
	ff, ok := model.ParseFormField(field)
	if !ok {
		return CheckoutSnapshot{}, NewHTTPError(http.StatusBadRequest, "invalid field")
	}
	if err := f.requireEditable(); err != nil {
		return CheckoutSnapshot{}, err
	}
	return f.snapshotOf(f.Dispatch(EventChangeField{Field: ff, Value: value})), nil
}

// 入力エラーはエラーにせず、状態(error_key)と通知で返す
func (f *CheckoutFlow) Submit() (CheckoutSnapshot, error) {
	if err := f.requireEditable(); err != nil {
		return CheckoutSnapshot{}, err
	}
	return f.snapshotOf(f.Dispatch(EventSubmit{})), nil
}

// 閉じる。決済中なら決済を取り消す。
func (f *CheckoutFlow) Dismiss() CheckoutSnapshot {
	return f.snapshotOf(f.Dispatch(EventDismiss{}))
}

func (f *CheckoutFlow) Snapshot() CheckoutSnapshot {
	f.mu.Lock()
	s := f.state
	f.mu.Unlock()
	return f.snapshotOf(s)
}

// セッション破棄時。以降のイベントは無視する。
func (f *CheckoutFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	f.stopPaymentLocked()
	f.stopResetLocked()
	f.baseCancel()
}

// Dispatch はイベントを1つ適用し、続けて発生したイベントも処理し切る。
func (f *CheckoutFlow) Dispatch(ev CheckoutEvent) CheckoutState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return f.state
	}

	queue := []CheckoutEvent{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		from := f.state.Status
		state, effects := Transition(f.state, next)
		f.state = state

		if from != state.Status {
			f.cfg.Log.Info("checkout transition",
				zap.String("session_id", f.cfg.SessionID),
				zap.String("from", string(from)),
				zap.String("to", string(state.Status)),
				zap.Int("attempt", state.Attempt),
			)
			if f.cfg.OnTransition != nil {
				f.cfg.OnTransition(from, state.Status)
			}
		}

		for _, eff := range effects {
			queue = append(queue, f.runLocked(eff)...)
		}
	}
	return f.state
}

func (f *CheckoutFlow) runLocked(eff CheckoutEffect) []CheckoutEvent {
	switch e := eff.(type) {
	case EffectValidate:
		if err := f.cfg.Validator.ValidateCheckout(e.Form); err != nil {
			f.cfg.Log.Debug("checkout validation failed",
				zap.String("session_id", f.cfg.SessionID),
				zap.Error(err),
			)
			return []CheckoutEvent{EventValidationFailed{Attempt: e.Attempt, Err: err}}
		}
		return []CheckoutEvent{EventValidationPassed{Attempt: e.Attempt}}

	case EffectStartPayment:
		f.startPaymentLocked(e)

	case EffectCancelPayment:
		f.stopPaymentLocked()

	case EffectScheduleReset:
		f.stopResetLocked()
		attempt := e.Attempt
		f.resetTimer = f.cfg.Clock.AfterFunc(f.cfg.SuccessDelay, func() {
			f.Dispatch(EventResetElapsed{Attempt: attempt})
		})

	case EffectCancelReset:
		f.stopResetLocked()

	case EffectClearCart:
		f.cfg.Cart.ClearCart()

	case EffectNotify:
		if f.cfg.Sink == nil {
			return nil
		}
		l := f.cfg.Locale()
		f.cfg.Sink.Notify(f.baseCtx, model.Notification{
			SessionID:   f.cfg.SessionID,
			Title:       f.cfg.Translator.T(l, e.Title),
			Description: f.cfg.Translator.T(l, e.Description),
			Variant:     e.Variant,
			CreatedAt:   f.cfg.Clock.Now(),
		})
	}
	return nil
}

func (f *CheckoutFlow) startPaymentLocked(e EffectStartPayment) {
	f.stopPaymentLocked()

	ctx, cancel := context.WithCancel(f.baseCtx)
	f.cancelPay = cancel

	req := payment.ChargeRequest{
		SessionID: f.cfg.SessionID,
		Attempt:   e.Attempt,
		Amount:    f.cfg.Cart.TotalPrice(),
		Form:      e.Form,
	}

	go func() {
		receipt, err := f.cfg.Gateway.Charge(ctx, req)
		// 取り消された決済の結果は捨てる
		cancelled := ctx.Err() != nil
		cancel()
		if cancelled {
			f.cfg.Log.Info("payment cancelled",
				zap.String("session_id", req.SessionID),
				zap.Int("attempt", req.Attempt),
			)
			return
		}

		if err != nil {
			f.cfg.Log.Warn("payment failed",
				zap.String("session_id", req.SessionID),
				zap.Int("attempt", req.Attempt),
				zap.Error(err),
			)
			f.Dispatch(EventPaymentFailed{Attempt: req.Attempt, Err: err})
			return
		}
		f.Dispatch(EventPaymentSucceeded{Attempt: req.Attempt, Receipt: receipt})
	}()
}

func (f *CheckoutFlow) stopPaymentLocked() {
	if f.cancelPay != nil {
		f.cancelPay()
		f.cancelPay = nil
	}
}

func (f *CheckoutFlow) stopResetLocked() {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

func (f *CheckoutFlow) requireEditable() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.state.Open {
		return NewHTTPError(http.StatusConflict, "checkout not open")
	}
	if !f.state.Status.Editable() {
		return NewHTTPError(http.StatusConflict, "checkout in progress")
	}
	return nil
}

func (f *CheckoutFlow) snapshotOf(s CheckoutState) CheckoutSnapshot {
	snap := CheckoutSnapshot{
		Status:      s.Status,
		Open:        s.Open,
		Form:        s.Form,
		Attempt:     s.Attempt,
		ErrorKey:    s.ErrKey,
		Receipt:     s.Receipt,
		LastReceipt: s.LastReceipt,
	}
	if s.ErrKey != "" {
		snap.Error = f.cfg.Translator.T(f.cfg.Locale(), s.ErrKey)
	}
	return snap
}
