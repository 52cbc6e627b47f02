package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/usecase"
)

type BackgroundTasks struct {
	StoreEventUsecase usecase.StoreEventUsecase
	Subscriber        domain.SubscriberPort
	Topic             string
	GroupID           string
	Logger            *slog.Logger
	RetryDelay        time.Duration
}

func NewBackgroundTasks(storeEventUC usecase.StoreEventUsecase, sub domain.SubscriberPort, topic, groupID string, logger *slog.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		StoreEventUsecase: storeEventUC,
		Subscriber:        sub,
		Topic:             topic,
		GroupID:           groupID,
		Logger:            logger,
		RetryDelay:        time.Second,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) error {
	events, err := bt.Subscriber.Subscribe(bt.Topic, bt.GroupID)
	if err != nil {
		return err
	}
	go bt.consumeStoreEvents(ctx, events)
	return nil
}

// consumeStoreEvents retries a message until it is applied or ctx ends, so a
// broker or database outage doesn't drop store state changes.
func (bt *BackgroundTasks) consumeStoreEvents(ctx context.Context, events <-chan domain.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-events:
			if !ok {
				bt.Logger.Info("store event stream closed", "topic", bt.Topic)
				return
			}
			for {
				err := bt.StoreEventUsecase.HandleStoreEvent(ctx, msg)
				if err == nil {
					break
				}
				bt.Logger.Error("store event handling failed", "key", string(msg.Key), "error", err)
				select {
				case <-ctx.Done():
					return
				case <-time.After(bt.RetryDelay):
				}
			}
		}
	}
}
