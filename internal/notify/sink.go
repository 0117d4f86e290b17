package notify

import (
	"context"

	"storefront/internal/domain/model"
)

// 通知の送り先。失敗しても呼び出し側には返さない。
type Sink interface {
	Notify(ctx context.Context, n model.Notification)
}

type multi []Sink

// 複数のSinkへ順に配る
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (m multi) Notify(ctx context.Context, n model.Notification) {
	for _, s := range m {
		s.Notify(ctx, n)
	}
}

// Sinkとして使える関数
type SinkFunc func(ctx context.Context, n model.Notification)

func (f SinkFunc) Notify(ctx context.Context, n model.Notification) {
	f(ctx, n)
}
