package publisher

import (
	"context"
	"log/slog"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaSubscriber struct {
	ctx    context.Context
	config KafkaConfig
	logger *slog.Logger
}

// NewDefaultKafkaSubscriber returns a subscriber whose readers stop when ctx
// is canceled.
func NewDefaultKafkaSubscriber(ctx context.Context, config KafkaConfig, logger *slog.Logger) *DefaultKafkaSubscriber {
	return &DefaultKafkaSubscriber{ctx: ctx, config: config, logger: logger}
}

func (k *DefaultKafkaSubscriber) Subscribe(topic, groupID string) (<-chan domain.Message, error) {
	dialer, err := k.config.dialer()
	if err != nil {
		return nil, err
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.config.Brokers,
		Topic:   topic,
		GroupID: groupID,
		Dialer:  dialer,
	})
	out := make(chan domain.Message)
	go func() {
		defer reader.Close()
		defer close(out)
		for {
			m, err := reader.ReadMessage(k.ctx)
			if err != nil {
				if k.ctx.Err() == nil {
					k.logger.Error("kafka read failed", "topic", topic, "error", err)
				}
				return
			}
			select {
			case out <- domain.Message{Key: m.Key, Value: m.Value}:
			case <-k.ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
