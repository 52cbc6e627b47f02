package background

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-merchant-service/internal/domain"
)

type chanSubscriber struct {
	ch  chan domain.Message
	err error
}

func (s *chanSubscriber) Subscribe(topic, groupID string) (<-chan domain.Message, error) {
	return s.ch, s.err
}

type recordingUsecase struct {
	mu       sync.Mutex
	handled  []string
	failures int
}

func (r *recordingUsecase) HandleStoreEvent(_ context.Context, msg domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failures > 0 {
		r.failures--
		return errors.New("db down")
	}
	r.handled = append(r.handled, string(msg.Key))
	return nil
}

func (r *recordingUsecase) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.handled...)
}

func TestConsumeStoreEvents_RetriesUntilApplied(t *testing.T) {
	sub := &chanSubscriber{ch: make(chan domain.Message)}
	uc := &recordingUsecase{failures: 2}
	bt := NewBackgroundTasks(uc, sub, "store-events", "merchant-service", slog.New(slog.NewTextHandler(io.Discard, nil)))
	bt.RetryDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, bt.StartAll(ctx))

	sub.ch <- domain.Message{Key: []byte("s1")}
	sub.ch <- domain.Message{Key: []byte("s2")}
	close(sub.ch)

	assert.Eventually(t, func() bool { return len(uc.keys()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"s1", "s2"}, uc.keys())
}

func TestStartAll_SubscribeError(t *testing.T) {
	bt := NewBackgroundTasks(&recordingUsecase{}, &chanSubscriber{err: errors.New("no broker")}, "t", "g", slog.Default())
	assert.Error(t, bt.StartAll(context.Background()))
}
