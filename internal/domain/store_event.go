package domain

import "context"

type StoreEventType string

const (
	StoreEventOpened        StoreEventType = "store.opened"
	StoreEventClosed        StoreEventType = "store.closed"
	StoreEventStatusChanged StoreEventType = "store.status_changed"
)

type StoreEvent struct {
	StoreID     string         `json:"store_id"`
	Type        StoreEventType `json:"type"`
	IsStoreOpen *bool          `json:"is_store_open,omitempty"`
	Status      StoreStatus    `json:"status,omitempty"`
}

type StoreIndexEvent struct {
	StoreID string `json:"store_id"`
	Action  string `json:"action"`
}

type StoreAvailabilityRepository interface {
	SetStoreOpen(ctx context.Context, storeID string, isOpen bool) error
	SetStoreStatus(ctx context.Context, storeID string, status StoreStatus) error
}
