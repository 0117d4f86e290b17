package notify

import (
	"context"

	"storefront/internal/domain/model"

	"go.uber.org/zap"
)

type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(ctx context.Context, n model.Notification) {
	s.log.Info("notification",
		zap.String("session_id", n.SessionID),
		zap.String("variant", string(n.Variant)),
		zap.String("title", n.Title),
		zap.String("description", n.Description),
	)
}
