package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"storefront/internal/domain/model"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// kafka.Writer のうち使う部分だけ
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafkaへ通知をJSONで流す。送信は非同期で、失敗はログだけ。
type KafkaSink struct {
	writer  messageWriter
	log     *zap.Logger
	timeout time.Duration

	wg sync.WaitGroup
}

type kafkaPayload struct {
	SessionID   string    `json:"session_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// DI
func NewKafkaSink(w messageWriter, log *zap.Logger) *KafkaSink {
	return &KafkaSink{writer: w, log: log, timeout: 5 * time.Second}
}

func (s *KafkaSink) Notify(ctx context.Context, n model.Notification) {
	data, err := json.Marshal(kafkaPayload{
		SessionID:   n.SessionID,
		Title:       n.Title,
		Description: n.Description,
		Variant:     string(n.Variant),
		CreatedAt:   n.CreatedAt.UTC(),
	})
	if err != nil {
		s.log.Warn("kafka notification marshal failed", zap.Error(err))
		return
	}

	msg := kafka.Message{Key: []byte(n.SessionID), Value: data, Time: n.CreatedAt.UTC()}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// 呼び出し元のリクエストが終わっても送り切る
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		if err := s.writer.WriteMessages(wctx, msg); err != nil {
			s.log.Warn("kafka notification publish failed",
				zap.String("session_id", n.SessionID),
				zap.Error(err),
			)
		}
	}()
}

// 送信中のものを待ってからWriterを閉じる
func (s *KafkaSink) Close() error {
	s.wg.Wait()
	return s.writer.Close()
}
