package publisher

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(config KafkaConfig) (*DefaultKafkaPublisher, error) {
	transport, err := config.transport()
	if err != nil {
		return nil, err
	}
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:      kafka.TCP(config.Brokers...),
			Balancer:  &kafka.LeastBytes{},
			Transport: transport,
		},
	}, nil
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, km...)
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
