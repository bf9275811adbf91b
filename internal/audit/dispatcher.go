// Package audit records who did what. Events are queued and written by a
// single worker so that a slow store never holds up a request.
package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/catalog-api/internal/logger"
)

const (
	ActionProductCreated = "product_created"
	ActionUserCreated    = "user_created"
	ActionUserDeleted    = "user_deleted"
	ActionLoginSucceeded = "login_succeeded"
	ActionLoginFailed    = "login_failed"

	EntityProduct = "product"
	EntityUser    = "user"
	EntityClient  = "client"
)

const DefaultQueueSize = 100

type Event struct {
	ClientID *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder is what use cases depend on.
type Recorder interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(l *Logger, size int) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(ctx, ev); err != nil {
			log := logger.Get()
			log.Error().
				Err(err).
				Str("action", ev.Action).
				Msg("audit write failed")
		}
		cancel()
	}
}

// Dispatch never blocks. A full queue or a closed dispatcher drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log := logger.Get()
		log.Warn().
			Str("action", ev.Action).
			Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until the queue is drained or ctx
// is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Noop discards every event.
type Noop struct{}

func (Noop) Dispatch(Event) {}

var (
	_ Recorder = (*Dispatcher)(nil)
	_ Recorder = Noop{}
)
