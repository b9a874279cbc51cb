package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pulkitchauhan42/TGP/pkg/logger"
)

// LocalBus delivers events in-process. It stands in for NATS when no
// server is configured. Each delivery runs on its own goroutine; within a
// queue group only the first handler receives a message. Close waits for
// in-flight deliveries.
type LocalBus struct {
	wg     sync.WaitGroup
	mu     sync.RWMutex
	subs   map[string][]func(*Message)
	queues map[string]map[string]func(*Message)
	closed bool
}

var _ EventBus = (*LocalBus)(nil)

func NewLocalBus() *LocalBus {
	return &LocalBus{
		subs:   make(map[string][]func(*Message)),
		queues: make(map[string]map[string]func(*Message)),
	}
}

func (b *LocalBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return fmt.Errorf("publish %s: bus closed", subject)
	}
	handlers := append([]func(*Message){}, b.subs[subject]...)
	for _, h := range b.queues[subject] {
		handlers = append(handlers, h)
	}
	b.wg.Add(len(handlers))
	b.mu.RUnlock()

	logger.DebugContext(ctx, "publishing event", "subject", subject, "subscribers", len(handlers))

	for _, h := range handlers {
		msg := &Message{Subject: subject, Data: payload, Timestamp: time.Now(), ID: uuid.NewString()}
		go func(h func(*Message)) {
			defer b.wg.Done()
			h(msg)
		}(h)
	}
	return nil
}

func (b *LocalBus) Subscribe(subject string, handler func(msg *Message)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[subject] = append(b.subs[subject], handler)
	return nil
}

func (b *LocalBus) QueueSubscribe(subject, queue string, handler func(msg *Message)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	groups, ok := b.queues[subject]
	if !ok {
		groups = make(map[string]func(*Message))
		b.queues[subject] = groups
	}
	if _, taken := groups[queue]; !taken {
		groups[queue] = handler
	}
	return nil
}

func (b *LocalBus) Close() error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.wg.Wait()
	return nil
}
