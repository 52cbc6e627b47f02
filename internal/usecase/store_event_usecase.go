package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
	"github.com/LavaJover/shvark-merchant-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

const indexActionReindex = "reindex"

type StoreEventUsecase interface {
	HandleStoreEvent(ctx context.Context, msg domain.Message) error
}

type DefaultStoreEventUsecase struct {
	StoreRepo  domain.StoreAvailabilityRepository
	Publisher  domain.PublisherPort
	IndexTopic string
	Metrics    *metrics.DiscoveryMetrics
	Logger     *slog.Logger
}

func NewDefaultStoreEventUsecase(
	storeRepo domain.StoreAvailabilityRepository,
	publisher domain.PublisherPort,
	indexTopic string,
	discoveryMetrics *metrics.DiscoveryMetrics,
	log *slog.Logger,
) *DefaultStoreEventUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &DefaultStoreEventUsecase{
		StoreRepo:  storeRepo,
		Publisher:  publisher,
		IndexTopic: indexTopic,
		Metrics:    discoveryMetrics,
		Logger:     log,
	}
}

// HandleStoreEvent applies one store event and asks the indexer to re-sync
// the store. Malformed events and unknown stores are skipped and reported as
// nil so the consumer moves on; only infrastructure failures are returned.
func (uc *DefaultStoreEventUsecase) HandleStoreEvent(ctx context.Context, msg domain.Message) error {
	event, err := decodeStoreEvent(msg.Value)
	if err != nil {
		uc.Logger.Warn("skipping malformed store event", "key", string(msg.Key), "error", err)
		uc.recordEvent("unknown", "malformed")
		return nil
	}

	switch event.Type {
	case domain.StoreEventOpened:
		err = uc.StoreRepo.SetStoreOpen(ctx, event.StoreID, true)
	case domain.StoreEventClosed:
		err = uc.StoreRepo.SetStoreOpen(ctx, event.StoreID, false)
	case domain.StoreEventStatusChanged:
		err = uc.StoreRepo.SetStoreStatus(ctx, event.StoreID, event.Status)
	}
	if errors.Is(err, domain.ErrStoreNotFound) {
		uc.Logger.Warn("skipping event for unknown store", "store_id", event.StoreID, "type", event.Type)
		uc.recordEvent(string(event.Type), "unknown_store")
		return nil
	}
	if err != nil {
		uc.recordEvent(string(event.Type), "error")
		return fmt.Errorf("failed to apply %s: %w", event.Type, err)
	}

	value, err := json.Marshal(domain.StoreIndexEvent{StoreID: event.StoreID, Action: indexActionReindex})
	if err != nil {
		return err
	}
	if err := uc.Publisher.Publish(uc.IndexTopic, domain.Message{Key: []byte(event.StoreID), Value: value}); err != nil {
		uc.recordEvent(string(event.Type), "error")
		return fmt.Errorf("failed to publish index event: %w", err)
	}

	uc.recordEvent(string(event.Type), "ok")
	uc.Logger.Info("store event applied", "store_id", event.StoreID, "type", event.Type)
	return nil
}

func decodeStoreEvent(value []byte) (*domain.StoreEvent, error) {
	var event domain.StoreEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidStoreEvent, err)
	}
	if _, err := uuid.Parse(event.StoreID); err != nil {
		return nil, fmt.Errorf("%w: store_id %q is not a uuid", domain.ErrInvalidStoreEvent, event.StoreID)
	}

	switch event.Type {
	case domain.StoreEventOpened, domain.StoreEventClosed:
	case domain.StoreEventStatusChanged:
		switch event.Status {
		case domain.StoreStatusActive, domain.StoreStatusInactive, domain.StoreStatusSuspended:
		default:
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStoreEvent, event.Status)
		}
	default:
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidStoreEvent, event.Type)
	}

	return &event, nil
}

func (uc *DefaultStoreEventUsecase) recordEvent(eventType, result string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordStoreEvent(eventType, result)
}
