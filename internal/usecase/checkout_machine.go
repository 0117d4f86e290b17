package usecase

import (
	"storefront/internal/domain/model"
)

// 通知に使う文言キー
const (
	MsgCheckoutError    = "checkout.error"
	MsgFillRequired     = "checkout.fillRequired"
	MsgPaymentFailed    = "checkout.paymentFailed"
	MsgOrderPlaced      = "checkout.orderPlaced"
	MsgConfirmationSent = "checkout.confirmationSent"
)

// 購入手続きの状態。閉じているときは必ずidle。
type CheckoutState struct {
	Status  model.CheckoutStatus
	Open    bool
	Form    model.CheckoutForm
	Attempt int    // Submitごとに+1。古い結果の判定に使う
	ErrKey  string // 直近のエラー文言キー

	Receipt     *model.Receipt // success中の控え
	LastReceipt *model.Receipt // 次にOpenするまで残す
}

func NewCheckoutState() CheckoutState {
	return CheckoutState{Status: model.CheckoutStatusIdle}
}

// イベント
type CheckoutEvent interface{ checkoutEvent() }

type EventOpen struct{}

type EventChangeField struct {
	Field model.FormField
	Value string
}

type EventSubmit struct{}

type EventValidationPassed struct{ Attempt int }

type EventValidationFailed struct {
	Attempt int
	Err     error
}

type EventPaymentSucceeded struct {
	Attempt int
	Receipt model.Receipt
}

type EventPaymentFailed struct {
	Attempt int
	Err     error
}

type EventResetElapsed struct{ Attempt int }

type EventDismiss struct{}

func (EventOpen) checkoutEvent()             {}
func (EventChangeField) checkoutEvent()      {}
func (EventSubmit) checkoutEvent()           {}
func (EventValidationPassed) checkoutEvent() {}
func (EventValidationFailed) checkoutEvent() {}
func (EventPaymentSucceeded) checkoutEvent() {}
func (EventPaymentFailed) checkoutEvent()    {}
func (EventResetElapsed) checkoutEvent()     {}
func (EventDismiss) checkoutEvent()          {}

// 副作用。実行はCheckoutFlowが行う。
type CheckoutEffect interface{ checkoutEffect() }

type EffectValidate struct {
	Attempt int
	Form    model.CheckoutForm
}

type EffectStartPayment struct {
	Attempt int
	Form    model.CheckoutForm
}

type EffectCancelPayment struct{}

type EffectScheduleReset struct{ Attempt int }

type EffectCancelReset struct{}

type EffectClearCart struct{}

type EffectNotify struct {
	Title       string // 文言キー
	Description string // 文言キー
	Variant     model.NotificationVariant
}

func (EffectValidate) checkoutEffect()      {}
func (EffectStartPayment) checkoutEffect()  {}
func (EffectCancelPayment) checkoutEffect() {}
func (EffectScheduleReset) checkoutEffect() {}
func (EffectCancelReset) checkoutEffect()   {}
func (EffectClearCart) checkoutEffect()     {}
func (EffectNotify) checkoutEffect()        {}

// Transition は状態とイベントから次の状態と副作用を決める。
// 受け付けないイベントは状態をそのまま返す。
func Transition(s CheckoutState, ev CheckoutEvent) (CheckoutState, []CheckoutEffect) {
	switch e := ev.(type) {
	case EventOpen:
		if s.Open {
			return s, nil
		}
		return CheckoutState{
			Status:  model.CheckoutStatusIdle,
			Open:    true,
			Attempt: s.Attempt,
		}, nil

	case EventChangeField:
		if !s.Open || !s.Status.Editable() {
			return s, nil
		}
		s.Form = s.Form.With(e.Field, e.Value)
		return s, nil

	case EventSubmit:
		if !s.Open || !s.Status.Editable() {
			return s, nil
		}
		s.Attempt++
		s.Status = model.CheckoutStatusValidating
		s.ErrKey = ""
		return s, []CheckoutEffect{EffectValidate{Attempt: s.Attempt, Form: s.Form}}

	case EventValidationPassed:
		if s.Status != model.CheckoutStatusValidating || e.Attempt != s.Attempt {
			return s, nil
		}
		s.Status = model.CheckoutStatusProcessing
		return s, []CheckoutEffect{EffectStartPayment{Attempt: s.Attempt, Form: s.Form}}

	case EventValidationFailed:
		if s.Status != model.CheckoutStatusValidating || e.Attempt != s.Attempt {
			return s, nil
		}
		s.Status = model.CheckoutStatusIdle
		s.ErrKey = MsgFillRequired
		return s, []CheckoutEffect{destructive(MsgFillRequired)}

	case EventPaymentSucceeded:
		if s.Status != model.CheckoutStatusProcessing || e.Attempt != s.Attempt {
			return s, nil
		}
		r := e.Receipt
		s.Status = model.CheckoutStatusSuccess
		s.Receipt = &r
		s.LastReceipt = &r
		return s, []CheckoutEffect{EffectScheduleReset{Attempt: s.Attempt}}

	case EventPaymentFailed:
		if s.Status != model.CheckoutStatusProcessing || e.Attempt != s.Attempt {
			return s, nil
		}
		s.Status = model.CheckoutStatusFailed
		s.ErrKey = MsgPaymentFailed
		return s, []CheckoutEffect{destructive(MsgPaymentFailed)}

	case EventResetElapsed:
		if s.Status != model.CheckoutStatusSuccess || e.Attempt != s.Attempt {
			return s, nil
		}
		return closed(s), completeOrder()

	case EventDismiss:
		if !s.Open {
			return s, nil
		}
		var effects []CheckoutEffect
		switch s.Status {
		case model.CheckoutStatusProcessing:
			effects = []CheckoutEffect{EffectCancelPayment{}}
		case model.CheckoutStatusSuccess:
			// 支払い済みなので完了処理を前倒しする
			effects = append([]CheckoutEffect{EffectCancelReset{}}, completeOrder()...)
		}
		return closed(s), effects
	}

	return s, nil
}

func closed(s CheckoutState) CheckoutState {
	return CheckoutState{
		Status:      model.CheckoutStatusIdle,
		Attempt:     s.Attempt,
		LastReceipt: s.LastReceipt,
	}
}

func completeOrder() []CheckoutEffect {
	return []CheckoutEffect{
		EffectClearCart{},
		EffectNotify{Title: MsgOrderPlaced, Description: MsgConfirmationSent, Variant: model.NotificationDefault},
	}
}

func destructive(desc string) EffectNotify {
	return EffectNotify{Title: MsgCheckoutError, Description: desc, Variant: model.NotificationDestructive}
}
