package events

import (
	"finledger/internal/ledger"
	"sync"

	"go.uber.org/zap"
)

type Handler func(event ledger.Event)

// Bus dispatches ledger events to in-process subscribers. Dispatch is
// synchronous: a mutation's event handlers have run by the time the mutation
// returns, so a follow-up read never sees a stale cache entry.
type Bus struct {
	logs *zap.SugaredLogger

	mu     sync.RWMutex
	nextID uint64
	subs   map[ledger.EventKind]map[uint64]Handler
}

func NewBus(logger *zap.SugaredLogger) *Bus {
	return &Bus{
		logs: logger,
		subs: make(map[ledger.EventKind]map[uint64]Handler),
	}
}

// Subscribe registers a handler for one event kind and returns its
// subscription handle. Every subscribe must be paired with one Close.
func (b *Bus) Subscribe(kind ledger.EventKind, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID

	if b.subs[kind] == nil {
		b.subs[kind] = make(map[uint64]Handler)
	}
	b.subs[kind][id] = handler

	return &Subscription{bus: b, kind: kind, id: id}
}

// Publish delivers the event to every subscriber of its kind. Handlers must
// be idempotent; redelivery of the same event is permitted.
func (b *Bus) Publish(event ledger.Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[event.Kind]))
	for _, handler := range b.subs[event.Kind] {
		handlers = append(handlers, handler)
	}
	b.mu.RUnlock()

	b.logs.Debugw("publishing event", "kind", event.Kind, "subscribers", len(handlers))

	for _, handler := range handlers {
		handler(event)
	}
}

// Subscription is the disposable handle returned by Subscribe.
type Subscription struct {
	bus  *Bus
	kind ledger.EventKind
	id   uint64
	once sync.Once
}

// Close removes the subscription. Closing twice is a no-op.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()
		delete(s.bus.subs[s.kind], s.id)
	})
}
