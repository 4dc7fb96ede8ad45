package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-agenda/internal/logging"
)

type Event struct {
	OwnerID  uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

// Sink is where dispatched events end up.
type Sink interface {
	Record(ctx context.Context, ev Event) error
}

const queueSize = 100

// Dispatcher writes audit events off the request path. A full queue drops
// the event; auditing never fails a request.
type Dispatcher struct {
	sink   Sink
	logger logging.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink, logger logging.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Record(context.Background(), ev); err != nil {
			d.logger.Error(context.Background(), "audit write failed",
				"action", ev.Action,
				"entity", ev.Entity,
				"err", err,
			)
		}
	}
}

// Dispatch is safe on a nil or closed dispatcher, which discards the event.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn(ctx, "audit dispatcher closed, dropping event", "action", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn(ctx, "audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for the queue to drain. Later
// Dispatch calls drop their event.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
