package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DiscoverySearchEvent is one discovery request kept for search analytics.
type DiscoverySearchEvent struct {
	ID             uint `gorm:"primaryKey"`
	RequestID      string
	Search         string
	Latitude       *float64
	Longitude      *float64
	AppliedFilters string
	ResultCount    int64
	Failed         bool
	Reason         string
	Timestamp      time.Time
}

func (DiscoverySearchEvent) TableName() string {
	return "discovery_search_events"
}

type DiscoveryEventLogger interface {
	LogDiscovery(ctx context.Context, event DiscoverySearchEvent) error
}

type PGDiscoveryEventLogger struct {
	db *gorm.DB
}

func NewPGDiscoveryEventLogger(db *gorm.DB) *PGDiscoveryEventLogger {
	return &PGDiscoveryEventLogger{db: db}
}

func (l *PGDiscoveryEventLogger) LogDiscovery(ctx context.Context, event DiscoverySearchEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
