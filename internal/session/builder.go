package session

import (
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/i18n"
	"storefront/internal/notify"
	"storefront/internal/payment"
	"storefront/internal/usecase"

	"go.uber.org/zap"
)

// セッションを組み立てるための部品
type Deps struct {
	Validator    usecase.CheckoutValidator
	Gateway      payment.Gateway
	Translator   *i18n.Translator
	Clock        usecase.Clock
	SuccessDelay time.Duration
	InboxSize    int
	Log          *zap.Logger

	// Inbox以外に通知を流す先（ログ、Kafka）
	ExtraSinks []notify.Sink

	OnCartChange func(op usecase.CartOp, snap model.CartSnapshot)
	OnTransition func(from, to model.CheckoutStatus)
}

func NewBuilder(d Deps) Builder {
	return func(id string) *Session {
		s := &Session{
			ID:         id,
			Cart:       usecase.NewCartStore(),
			Inbox:      notify.NewInbox(d.InboxSize),
			lastLocale: d.Translator.Default(),
		}
		if d.OnCartChange != nil {
			s.Cart.Subscribe(d.OnCartChange)
		}

		sinks := append([]notify.Sink{s.Inbox}, d.ExtraSinks...)
		s.Checkout = usecase.NewCheckoutFlow(usecase.CheckoutFlowConfig{
			SessionID:    id,
			Cart:         s.Cart,
			Validator:    d.Validator,
			Gateway:      d.Gateway,
			Sink:         notify.Multi(sinks...),
			Translator:   d.Translator,
			Locale:       s.CurrentLocale,
			Clock:        d.Clock,
			SuccessDelay: d.SuccessDelay,
			Log:          d.Log,
			OnTransition: d.OnTransition,
		})
		return s
	}
}
